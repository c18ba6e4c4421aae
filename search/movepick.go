package search

import "github.com/corvid-engine/corvid/board"

// MoveList pairs a legal-move slice with parallel ordering scores, the
// shape spec §6's generate_moves/generate_quiesce_moves collaborator
// contract describes.
type MoveList struct {
	Moves  []board.Move
	Scores []int
}

// scoreMoves builds the ordering score for every move in moves from the
// tiers spec §4.2/§6 names. By score: the TT move (Hash), good captures
// (GoodCapture plus SEE), the counter-move (Counter), the killers
// (Killer1, Killer2), then quiet moves by history minus butterfly, capped
// below Killer2. Losing captures score BadCapture plus their negative SEE,
// which puts them below every quiet move with a non-negative balance.
// Quiescence orders its moves with scoreQuiesceMoves instead.
func scoreMoves(b *board.Board, h *Heuristics, moves []board.Move, ttMove board.Move, ply int, previous board.Move) MoveList {
	scores := make([]int, len(moves))
	k1, k2 := h.Killers(ply)
	counter := h.Counter(previous)

	for i, m := range moves {
		switch {
		case ttMove != board.NullMove && m == ttMove:
			scores[i] = Hash
		case m.IsCapture() || m.IsPromotion():
			see := b.SEE(m)
			bonus := 0
			if m.PromotionPieceType() == board.PieceTypeQueen {
				bonus = board.StaticMaterialValue[board.PieceTypeQueen]
			}
			if see >= 0 {
				scores[i] = GoodCapture + see + bonus
			} else {
				scores[i] = BadCapture + see
			}
		case m == k1:
			scores[i] = Killer1
		case m == k2:
			scores[i] = Killer2
		case counter != board.NullMove && m == counter:
			scores[i] = Counter
		default:
			side := b.SideToMove()
			quiet := h.History(side, m) - h.Butterfly(side, m)
			if quiet > Killer2-1 {
				quiet = Killer2 - 1
			}
			if quiet < -1_000_000 {
				quiet = -1_000_000
			}
			scores[i] = quiet
		}
	}
	return MoveList{Moves: moves, Scores: scores}
}

// scoreQuiesceMoves scores noisy moves for quiescence: strictly by SEE, so
// a negative score always means a losing capture (spec §4.3 step 10's
// "ordering score is negative" break condition).
func scoreQuiesceMoves(b *board.Board, moves []board.Move) MoveList {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = b.SEE(m)
	}
	return MoveList{Moves: moves, Scores: scores}
}

// bubbleTopMove is the partial selection sort spec §6 calls
// bubble_top_move: it brings the highest-scoring move in [i, count) to
// position i, swapping both the move and its score.
func (ml *MoveList) bubbleTopMove(i int) {
	best := i
	for j := i + 1; j < len(ml.Moves); j++ {
		if ml.Scores[j] > ml.Scores[best] {
			best = j
		}
	}
	if best != i {
		ml.Moves[i], ml.Moves[best] = ml.Moves[best], ml.Moves[i]
		ml.Scores[i], ml.Scores[best] = ml.Scores[best], ml.Scores[i]
	}
}

// resolveMove finds the legal move matching a TT entry's compact
// (from, to, promotion) projection, re-validating it against the current
// move list per spec §7's collision-tolerance policy.
func resolveMove(moves []board.Move, e Entry) board.Move {
	if !e.HasMove() {
		return board.NullMove
	}
	for _, m := range moves {
		if int(m.From()) == e.From() && int(m.To()) == e.To() && m.PromotionPieceType() == e.PromotionType() {
			return m
		}
	}
	return board.NullMove
}
