package search

import (
	"testing"

	"github.com/corvid-engine/corvid/board"
)

func TestAddKillerShiftsSlots(t *testing.T) {
	var h Heuristics
	m1 := board.NewMove(board.Square(8), board.Square(16), board.WhitePawn, board.NoPiece, board.NoPiece, 0)
	m2 := board.NewMove(board.Square(9), board.Square(17), board.WhitePawn, board.NoPiece, board.NoPiece, 0)

	h.AddKiller(0, m1)
	k1, k2 := h.Killers(0)
	if k1 != m1 || k2 != board.NullMove {
		t.Fatalf("after one AddKiller: (%v, %v), want (%v, NullMove)", k1, k2, m1)
	}

	h.AddKiller(0, m2)
	k1, k2 = h.Killers(0)
	if k1 != m2 || k2 != m1 {
		t.Fatalf("after second AddKiller: (%v, %v), want (%v, %v)", k1, k2, m2, m1)
	}

	h.AddKiller(0, m2)
	k1, k2 = h.Killers(0)
	if k1 != m2 || k2 != m1 {
		t.Fatalf("re-adding the existing first killer should not shift: (%v, %v)", k1, k2)
	}
}

func TestHistoryAccumulatesDepthSquared(t *testing.T) {
	var h Heuristics
	m := board.NewMove(board.Square(8), board.Square(16), board.WhitePawn, board.NoPiece, board.NoPiece, 0)
	h.AddHistory(board.White, m, 3)
	h.AddHistory(board.White, m, 4)
	if got, want := h.History(board.White, m), 3*3+4*4; got != want {
		t.Errorf("History() = %d, want %d", got, want)
	}
}

func TestCounterMoveLookup(t *testing.T) {
	var h Heuristics
	prev := board.NewMove(board.Square(12), board.Square(28), board.WhitePawn, board.NoPiece, board.NoPiece, 0)
	reply := board.NewMove(board.Square(52), board.Square(36), board.BlackPawn, board.NoPiece, board.NoPiece, 0)

	if c := h.Counter(prev); c != board.NullMove {
		t.Fatalf("fresh table should have no counter, got %v", c)
	}
	h.AddCounter(prev, reply)
	if c := h.Counter(prev); c != reply {
		t.Errorf("Counter() = %v, want %v", c, reply)
	}
	if c := h.Counter(board.NullMove); c != board.NullMove {
		t.Errorf("Counter(NullMove) should always be NullMove, got %v", c)
	}
}

func TestResetClearsAllTables(t *testing.T) {
	var h Heuristics
	m := board.NewMove(board.Square(8), board.Square(16), board.WhitePawn, board.NoPiece, board.NoPiece, 0)
	prev := board.NewMove(board.Square(12), board.Square(28), board.WhitePawn, board.NoPiece, board.NoPiece, 0)
	h.AddKiller(0, m)
	h.AddHistory(board.White, m, 5)
	h.AddCounter(prev, m)
	h.AddButterfly(board.White, m, 5)
	h.Reset()

	k1, _ := h.Killers(0)
	if k1 != board.NullMove {
		t.Errorf("Reset() should clear killers")
	}
	if h.History(board.White, m) != 0 {
		t.Errorf("Reset() should clear history")
	}
	if h.Counter(prev) != board.NullMove {
		t.Errorf("Reset() should clear counter moves")
	}
	if h.Butterfly(board.White, m) != 0 {
		t.Errorf("Reset() should clear butterfly")
	}
}
