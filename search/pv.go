package search

import "github.com/corvid-engine/corvid/board"

// PV is the principal variation accumulated by a single search node:
// up to MaxSearchPly moves, spliced together as results propagate up
// the recursion (spec §3).
type PV struct {
	moves []board.Move
}

func (pv *PV) clear() { pv.moves = pv.moves[:0] }

// set replaces the PV with [move, child...], the shape every improving
// node uses to splice its own move in front of its child's line.
func (pv *PV) set(move board.Move, child *PV) {
	pv.moves = append(pv.moves[:0], move)
	pv.moves = append(pv.moves, child.moves...)
}

// Moves returns the accumulated principal variation.
func (pv *PV) Moves() []board.Move { return pv.moves }
