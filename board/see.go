package board

// attackersTo returns every piece of either color that attacks sq given the
// supplied occupancy (not necessarily the board's current occupancy — the
// caller mutates it as pieces are removed from the exchange).
func (b *Board) attackersTo(sq int, occ uint64) uint64 {
	var attackers uint64

	attackers |= pawnAttacks[Black][sq] & b.pawns[White] & occ
	attackers |= pawnAttacks[White][sq] & b.pawns[Black] & occ
	attackers |= knightMoves[sq] & (b.knights[0] | b.knights[1]) & occ
	attackers |= kingMoves[sq] & (b.kings[0] | b.kings[1]) & occ

	diag := bishopAttacks(sq, occ)
	attackers |= diag & (b.bishops[0] | b.bishops[1] | b.queens[0] | b.queens[1]) & occ

	ortho := rookAttacks(sq, occ)
	attackers |= ortho & (b.rooks[0] | b.rooks[1] | b.queens[0] | b.queens[1]) & occ

	return attackers
}

// leastValuableAttacker picks, among the bits of attackers belonging to
// side, the one with the smallest StaticMaterialValue. It returns the
// single-bit bitboard of that attacker and its piece type, or (0, NoPiece)
// if side has no attacker in the set.
func (b *Board) leastValuableAttacker(attackers uint64, side Color) (uint64, PieceType) {
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		var bb uint64
		switch pt {
		case PieceTypePawn:
			bb = b.pawns[int(side)]
		case PieceTypeKnight:
			bb = b.knights[int(side)]
		case PieceTypeBishop:
			bb = b.bishops[int(side)]
		case PieceTypeRook:
			bb = b.rooks[int(side)]
		case PieceTypeQueen:
			bb = b.queens[int(side)]
		case PieceTypeKing:
			bb = b.kings[int(side)]
		}
		if subset := attackers & bb; subset != 0 {
			lsb := subset & -subset
			return lsb, pt
		}
	}
	return 0, PieceTypeNone
}

// SEE computes the static exchange evaluation of a move: the net material
// swing on the destination square assuming both sides play their best
// available capture in sequence. The result is from the moving side's
// perspective in centipawns. For a quiet move this is the net result of
// the opponent's best reply capturing the piece just moved to 'to', run
// through the same swap-off loop as an actual capture.
func (b *Board) SEE(m Move) int {
	to := int(m.To())
	occ := b.AllOccupancy()

	var target PieceType
	if m.Flags() == FlagEnPassant {
		target = PieceTypePawn
	} else {
		target = m.CapturedPiece().Type()
	}

	var gain [32]int
	depth := 0
	gain[0] = StaticMaterialValue[target]

	attacker := m.MovedPiece().Type()
	side := 1 - b.sideToMove // side to move after this capture is played

	// Remove the moving piece and the captured square from the working
	// occupancy; en passant removes the victim pawn one rank behind 'to'.
	occ &^= uint64(1) << uint(m.From())
	if m.Flags() == FlagEnPassant {
		var capSq int
		if b.sideToMove == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		occ &^= uint64(1) << uint(capSq)
	}

	attackers := b.attackersTo(to, occ)

	for {
		depth++
		gain[depth] = StaticMaterialValue[attacker] - gain[depth-1]
		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		bb, nextType := b.leastValuableAttacker(attackers, side)
		if bb == 0 {
			break
		}
		occ &^= bb
		attackers &^= bb
		// Removing a slider may reveal a new attacker along its ray.
		attackers |= b.attackersTo(to, occ) & occ

		attacker = nextType
		side = 1 - side
	}

	// gain[depth] is speculative (a capture that was never played), so the
	// negamax unwind starts one level below it.
	for depth--; depth > 0; depth-- {
		gain[depth-1] = -max(-gain[depth-1], gain[depth])
	}
	return gain[0]
}
