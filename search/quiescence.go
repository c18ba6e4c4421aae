package search

import (
	"github.com/corvid-engine/corvid/board"
	"github.com/corvid-engine/corvid/eval"
)

// quiescence implements spec §4.3: a fail-soft, depth-unbounded search
// restricted to captures and promotions, resolving the horizon effect
// before the main search trusts a leaf's static evaluation.
func (s *Searcher) quiescence(alpha, beta, ply int) int {
	s.pvTable[ply].clear()

	s.nodes++
	if ply > s.seldepth {
		s.seldepth = ply
	}

	if ply > 0 && s.isDraw() {
		return 0
	}
	if ply >= MaxSearchPly-1 {
		return eval.Evaluate(s.Board)
	}
	if s.nodes%2048 == 0 {
		s.Params.communicate()
	}
	if s.Params.Stopped() {
		return 0
	}

	hash := s.Board.Hash()
	entry, hit := s.TT.Probe(hash)
	if hit {
		score := TTScore(entry.Score(), ply)
		switch entry.BoundKind() {
		case BoundExact:
			return score
		case BoundLower:
			if score >= beta {
				return score
			}
		case BoundUpper:
			if score <= alpha {
				return score
			}
		}
	}

	standPat := eval.Evaluate(s.Board)
	if hit {
		score := TTScore(entry.Score(), ply)
		if (entry.BoundKind() == BoundLower && score > standPat) ||
			(entry.BoundKind() == BoundUpper && score < standPat) {
			standPat = score
		}
	}

	if standPat >= beta {
		return standPat
	}
	bestScore := standPat
	if standPat > alpha {
		alpha = standPat
	}

	moves := s.Board.GenerateCaptures()
	for _, m := range s.Board.GenerateQuiets() {
		if m.IsPromotion() {
			moves = append(moves, m)
		}
	}
	list := scoreQuiesceMoves(s.Board, moves)

	for i := 0; i < len(list.Moves); i++ {
		list.bubbleTopMove(i)
		m := list.Moves[i]

		if m.IsPromotion() && m.PromotionPieceType() != board.PieceTypeQueen {
			continue
		}

		if m.IsCapture() {
			captured := m.CapturedPiece().Type()
			if m.IsEnPassant() {
				captured = board.PieceTypePawn
			}
			if standPat+DeltaCutoff+board.StaticMaterialValue[captured] < alpha {
				continue
			}
		}

		if list.Scores[i] < 0 {
			break
		}

		ok, st := s.Board.MakeMove(m)
		if !ok {
			continue
		}
		score := -s.quiescence(-beta, -alpha, ply+1)
		s.Board.UnmakeMove(m, st)

		if s.Params.Stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				alpha = score
				s.pvTable[ply].set(m, &s.pvTable[ply+1])
			}
		}
		if alpha >= beta {
			break
		}
	}

	return bestScore
}
