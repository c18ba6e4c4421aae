package search

import "github.com/corvid-engine/corvid/board"

// Heuristics holds the per-search move-ordering tables described in
// spec §3/§4.2: killers, counter-moves, history, and the butterfly
// counter. All four are zeroed at the start of every new search, never
// between iterations of the same search.
type Heuristics struct {
	killers  [MaxSearchPly][2]board.Move
	counters [4096]board.Move
	history  [2][4096]int
	butterfly [2][4096]int
}

func counterIndex(m board.Move) int { return int(m.From())*64 + int(m.To()) }

// Reset zeroes every table. Called once at the start of a Search call.
func (h *Heuristics) Reset() {
	*h = Heuristics{}
}

// AddKiller records move as a killer at ply, per spec §4.2: if it's not
// already the first killer, the previous first killer shifts to second.
func (h *Heuristics) AddKiller(ply int, move board.Move) {
	if h.killers[ply][0] == move {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = move
}

// Killers returns the two killer moves recorded at ply.
func (h *Heuristics) Killers(ply int) (board.Move, board.Move) {
	return h.killers[ply][0], h.killers[ply][1]
}

// AddCounter records move as the reply to previous, indexed by the
// previous move's (from, to). Called only on beta cutoffs by quiet moves.
func (h *Heuristics) AddCounter(previous, move board.Move) {
	if previous == board.NullMove {
		return
	}
	h.counters[counterIndex(previous)] = move
}

// Counter returns the recorded counter-move to previous, if any.
func (h *Heuristics) Counter(previous board.Move) board.Move {
	if previous == board.NullMove {
		return board.NullMove
	}
	return h.counters[counterIndex(previous)]
}

// AddHistory accumulates depth^2 into the history table for a quiet move
// that caused a beta cutoff.
func (h *Heuristics) AddHistory(side board.Color, move board.Move, depth int) {
	h.history[side][counterIndex(move)] += depth * depth
}

// History returns the accumulated history score for (side, move).
func (h *Heuristics) History(side board.Color, move board.Move) int {
	return h.history[side][counterIndex(move)]
}

// AddButterfly accumulates depth^2 into the butterfly table for a quiet
// move that failed to cause the cutoff at this node.
func (h *Heuristics) AddButterfly(side board.Color, move board.Move, depth int) {
	h.butterfly[side][counterIndex(move)] += depth * depth
}

// Butterfly returns the accumulated butterfly score for (side, move).
func (h *Heuristics) Butterfly(side board.Color, move board.Move) int {
	return h.butterfly[side][counterIndex(move)]
}
