package board

import "math/bits"

// StaticMaterialValue gives the centipawn value of a piece type for delta
// pruning and SEE, indexed by PieceType (index 0 is unused/NoPiece).
var StaticMaterialValue = [7]int{
	PieceTypeNone:   0,
	PieceTypePawn:   100,
	PieceTypeKnight: 300,
	PieceTypeBishop: 300,
	PieceTypeRook:   500,
	PieceTypeQueen:  900,
	PieceTypeKing:   20000,
}

// Checkers returns a bitboard of every piece currently giving check to the
// side to move's king.
func (b *Board) Checkers() uint64 {
	us := b.sideToMove
	them := 1 - us
	kingBB := b.kings[int(us)]
	if kingBB == 0 {
		return 0
	}
	ksq := bits.TrailingZeros64(kingBB)
	occ := b.AllOccupancy()

	var checkers uint64
	if us == White {
		checkers |= pawnAttacks[White][ksq] & b.pawns[int(them)]
	} else {
		checkers |= pawnAttacks[Black][ksq] & b.pawns[int(them)]
	}
	checkers |= knightMoves[ksq] & b.knights[int(them)]
	checkers |= bishopAttacks(ksq, occ) & (b.bishops[int(them)] | b.queens[int(them)])
	checkers |= rookAttacks(ksq, occ) & (b.rooks[int(them)] | b.queens[int(them)])
	return checkers
}

// HasNonPawnMaterial reports whether the side to move has any piece other
// than pawns and its king, used to gate null-move pruning against zugzwang.
func (b *Board) HasNonPawnMaterial() bool {
	idx := int(b.sideToMove)
	return b.knights[idx]|b.bishops[idx]|b.rooks[idx]|b.queens[idx] != 0
}

// IsInsufficientMaterial reports a dead draw by insufficient material: king
// vs king, or king+single minor vs bare king. Positions with a minor piece
// on each side are not reported as drawn.
func (b *Board) IsInsufficientMaterial() bool {
	if b.pawns[0] != 0 || b.pawns[1] != 0 {
		return false
	}
	if b.rooks[0] != 0 || b.rooks[1] != 0 || b.queens[0] != 0 || b.queens[1] != 0 {
		return false
	}
	whiteMinors := bits.OnesCount64(b.knights[0]) + bits.OnesCount64(b.bishops[0])
	blackMinors := bits.OnesCount64(b.knights[1]) + bits.OnesCount64(b.bishops[1])
	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}
	if whiteMinors == 1 && blackMinors == 0 && bits.OnesCount64(b.bishops[0]) <= 1 {
		return true
	}
	if blackMinors == 1 && whiteMinors == 0 && bits.OnesCount64(b.bishops[1]) <= 1 {
		return true
	}
	return false
}

// IsMaterialDraw reports a draw by insufficient material only; the 50-move
// rule and repetition are checked separately (IsDrawBy50,
// IsDrawByRepetition).
func (b *Board) IsMaterialDraw() bool {
	return b.IsInsufficientMaterial()
}
