// Package search implements the transposition table, move-ordering
// heuristics, quiescence search, and iterative-deepening negamax core
// described by the engine's search specification: a fail-soft
// alpha-beta negamax augmented with aspiration windows, null-move and
// reverse-futility pruning, late-move reductions/pruning, singular
// extensions, and principal-variation search re-searches.
package search

import (
	"time"

	"github.com/corvid-engine/corvid/board"
	"github.com/corvid-engine/corvid/eval"
	"github.com/corvid-engine/corvid/internal/xmath"
)

// Searcher owns every piece of search-time state: the transposition
// table, the heuristic tables, and the bounded per-ply scratch arrays.
// Per spec §9's note on global mutable state, none of this is a package
// global — it is an owned value the driver constructs once and reuses
// across searches (TT aside, which is explicitly sized once and cleared
// per search rather than reallocated).
type Searcher struct {
	TT *TT
	H  Heuristics

	Board  *board.Board
	Params *Params

	nodes    uint64
	seldepth int

	pvTable  [MaxSearchPly + 1]PV
	evals    [MaxSearchPly + 1]int
	moves    [MaxSearchPly + 1]board.Move
	skipMove [MaxSearchPly + 1]board.Move

	history []uint64

	rootBestMove board.Move
}

// NewSearcher constructs a Searcher over an existing board and
// transposition table.
func NewSearcher(b *board.Board, tt *TT) *Searcher {
	return &Searcher{Board: b, TT: tt}
}

// Result summarizes one completed iterative-deepening search.
type Result struct {
	BestMove board.Move
	Score    int
	Depth    int
	Nodes    uint64
	Seldepth int
}

// InfoFunc is invoked once per completed depth with the data the driver
// formats into a UCI info line (spec §6).
type InfoFunc func(depth, seldepth int, nodes uint64, elapsed time.Duration, score int, pv []board.Move)

// isDraw reports repetition, insufficient material, or the 50-move rule,
// the three draw conditions the core treats identically (spec §4.3
// step 2, §4.4.2 preamble step 4).
func (s *Searcher) isDraw() bool {
	if s.Board.IsDrawBy50() {
		return true
	}
	if s.Board.IsInsufficientMaterial() {
		return true
	}
	if s.Board.IsDrawByRepetition(s.history) {
		return true
	}
	return false
}

func (s *Searcher) pushHistory() { s.history = append(s.history, s.Board.Hash()) }
func (s *Searcher) popHistory() {
	if n := len(s.history); n > 0 {
		s.history = s.history[:n-1]
	}
}

// Search runs a full iterative-deepening search from depth 1 to
// params.Depth (or until cancelled), reporting one Result per completed
// depth via onInfo, per spec §4.4.1. The returned Result reflects the
// most recently completed iteration; the root TT entry's move is
// guaranteed legal for the current position (invariant 4).
func (s *Searcher) Search(params *Params, onInfo InfoFunc) Result {
	s.Params = params
	s.H.Reset()
	s.TT.Clear()
	s.nodes = 0
	s.seldepth = 0
	s.history = s.history[:0]
	s.rootBestMove = board.NullMove

	start := time.Now()
	var lastScore int
	maxDepth := params.Depth
	if maxDepth <= 0 || maxDepth > MaxSearchPly-1 {
		maxDepth = MaxSearchPly - 1
	}

	var result Result
	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := -Checkmate, Checkmate
		delta := 10.0
		if depth >= 5 && lastScore > -MateBound && lastScore < MateBound {
			alpha = lastScore - int(delta)
			beta = lastScore + int(delta)
		}

		var score int
		for {
			score = s.negamax(alpha, beta, depth, 0)
			if params.Stopped() {
				break
			}
			if score <= alpha {
				beta = (alpha + beta) / 2
				alpha -= int(delta)
				if alpha < -Checkmate {
					alpha = -Checkmate
				}
			} else if score >= beta {
				beta += int(delta)
				if beta > Checkmate {
					beta = Checkmate
				}
			} else {
				break
			}
			delta *= 1.5
		}

		if params.Stopped() && depth > 1 {
			break
		}

		lastScore = score
		if s.rootBestMove != board.NullMove {
			result = Result{
				BestMove: s.rootBestMove,
				Score:    score,
				Depth:    depth,
				Nodes:    s.nodes,
				Seldepth: s.seldepth,
			}
		}
		if onInfo != nil {
			onInfo(depth, s.seldepth, s.nodes, time.Since(start), score, s.pvTable[0].Moves())
		}
		if params.Stopped() {
			break
		}
	}
	return result
}

// negamax is the recursive fail-soft alpha-beta node described in spec
// §4.4.2. is_pv = beta-alpha>1, is_root = ply==0, a0 = alpha at entry.
func (s *Searcher) negamax(alpha, beta, depth, ply int) int {
	s.pvTable[ply].clear()

	if depth <= 0 {
		return s.quiescence(alpha, beta, ply)
	}

	s.nodes++
	if ply > s.seldepth {
		s.seldepth = ply
	}

	isRoot := ply == 0
	isPV := beta-alpha > 1
	a0 := alpha

	if !isRoot {
		if s.isDraw() {
			return 0
		}
		if ply >= MaxSearchPly-1 {
			return eval.Evaluate(s.Board)
		}
		alpha = xmath.Max(alpha, -Checkmate+ply)
		beta = xmath.Min(beta, Checkmate-ply-1)
		if alpha >= beta {
			return alpha
		}
	}

	if s.nodes%2048 == 0 {
		s.Params.communicate()
	}
	if s.Params.Stopped() {
		return 0
	}

	inCheck := s.Board.InCheck(s.Board.SideToMove())
	hash := s.Board.Hash()
	skip := s.skipMove[ply]

	var ttEntry Entry
	var ttHit bool
	var ttMove board.Move
	if skip == board.NullMove {
		ttEntry, ttHit = s.TT.Probe(hash)
		if ttHit {
			ttMove = resolveMove(s.Board.GenerateMoves(), ttEntry)
			if int(ttEntry.Depth()) >= depth {
				score := TTScore(ttEntry.Score(), ply)
				switch ttEntry.BoundKind() {
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
		}
	}

	staticEval := eval.Evaluate(s.Board)
	s.evals[ply] = staticEval
	improving := ply >= 2 && s.evals[ply] > s.evals[ply-2]
	if ttHit && int(ttEntry.Depth()) >= depth {
		score := TTScore(ttEntry.Score(), ply)
		if (ttEntry.BoundKind() == BoundLower && score > staticEval) ||
			(ttEntry.BoundKind() == BoundUpper && score < staticEval) {
			staticEval = score
		}
	}

	if !isPV && !inCheck {
		if depth <= 6 && staticEval-FutilityMargin*depth >= beta && staticEval < MateBound {
			return staticEval
		}

		if depth >= 3 && s.moves[ply] != board.NullMove && skip == board.NullMove &&
			staticEval >= beta && s.Board.HasNonPawnMaterial() {
			r := 3 + depth/6 + xmath.Min((staticEval-beta)/200, 3)
			r = xmath.Min(r, depth)
			s.moves[ply+1] = board.NullMove
			st := s.Board.MakeNullMove()
			s.pushHistory()
			score := -s.negamax(-beta, -beta+1, depth-r, ply+1)
			s.popHistory()
			s.Board.UnmakeNullMove(st)
			if score >= beta {
				return beta
			}
		}
	}

	s.skipMove[ply+1] = board.NullMove
	s.H.killers[ply+1][0] = board.NullMove
	s.H.killers[ply+1][1] = board.NullMove

	moves := s.Board.GenerateMoves()
	if len(moves) == 0 {
		if inCheck {
			return -Checkmate + ply
		}
		return 0
	}

	var previous board.Move
	if ply > 0 {
		previous = s.moves[ply]
	}
	list := scoreMoves(s.Board, &s.H, moves, ttMove, ply, previous)

	bestScore := -Checkmate
	bestMove := board.NullMove
	numMoves := 0

	for i := 0; i < len(list.Moves); i++ {
		list.bubbleTopMove(i)
		m := list.Moves[i]
		orderingScore := list.Scores[i]

		if m == skip {
			continue
		}

		tactical := m.IsCapture() || m.IsPromotion()

		if !isPV && bestScore > -MateBound {
			if depth <= 8 && !tactical && numMoves >= lmpThreshold(improving, depth) {
				continue
			}
			if s.Board.SEE(m) < seeThreshold(tactical, depth) {
				continue
			}
		}

		singularExtension := false
		if depth >= 8 && !isRoot && skip == board.NullMove && ttHit && ttMove == m &&
			int(ttEntry.Depth()) >= depth-3 && xmath.Abs(TTScore(ttEntry.Score(), ply)) < MateBound &&
			ttEntry.BoundKind() == BoundLower {
			ttScore := TTScore(ttEntry.Score(), ply)
			sBeta := xmath.Max(ttScore-depth*2, -Checkmate)
			sDepth := depth/2 - 1
			s.skipMove[ply] = m
			sScore := s.negamax(sBeta-1, sBeta, sDepth, ply)
			s.skipMove[ply] = board.NullMove
			if sScore < sBeta {
				singularExtension = true
			} else if sBeta >= beta {
				return sBeta
			}
		}

		numMoves++
		s.moves[ply+1] = m
		ok, st := s.Board.MakeMove(m)
		if !ok {
			numMoves--
			continue
		}
		s.pushHistory()

		givesCheck := s.Board.InCheck(s.Board.SideToMove())
		newDepth := depth
		if singularExtension || givesCheck {
			newDepth++
		}

		r := 1
		if depth >= 2 && numMoves > 1 && !tactical {
			r = lmrTable[xmath.Min(depth, 63)][xmath.Min(numMoves, 63)]
			if !isPV {
				r++
			}
			if !improving {
				r++
			}
			if orderingScore >= Counter {
				r--
			}
			if orderingScore >= Counter {
				r--
			} else {
				r -= xmath.Min(2, (orderingScore-149)/50)
			}
			r = xmath.Min(depth-1, xmath.Max(r, 1))
		}

		var score int
		if r != 1 {
			score = -s.negamax(-alpha-1, -alpha, newDepth-r, ply+1)
		}
		if (r != 1 && score > alpha) || (r == 1 && (!isPV || numMoves > 1)) {
			score = -s.negamax(-alpha-1, -alpha, newDepth-1, ply+1)
		}
		if isPV && (numMoves == 1 || (score > alpha && (isRoot || score < beta))) {
			score = -s.negamax(-beta, -alpha, newDepth-1, ply+1)
		}

		s.popHistory()
		s.Board.UnmakeMove(m, st)

		if s.Params.Stopped() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				s.pvTable[ply].set(m, &s.pvTable[ply+1])
				if isRoot {
					s.rootBestMove = m
				}
			}
		}

		if alpha >= beta {
			if !tactical {
				side := s.Board.SideToMove()
				s.H.AddKiller(ply, m)
				s.H.AddCounter(previous, m)
				s.H.AddHistory(side, m, depth)
				for _, q := range list.Moves[:i] {
					if q == m || q.IsCapture() || q.IsPromotion() {
						continue
					}
					s.H.AddButterfly(side, q, depth)
				}
			}
			break
		}
	}

	if skip == board.NullMove {
		bound := BoundExact
		if bestScore >= beta {
			bound = BoundLower
		} else if bestScore <= a0 {
			bound = BoundUpper
		}
		s.TT.Put(hash, int8(depth), bestScore, bound, bestMove, ply, s.evals[ply])
	}

	return bestScore
}
