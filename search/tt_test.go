package search

import (
	"testing"

	"github.com/corvid-engine/corvid/board"
)

func TestTTProbeMiss(t *testing.T) {
	tt := New(1)
	if _, hit := tt.Probe(0x1234); hit {
		t.Fatalf("fresh table should never hit")
	}
}

func TestTTPutProbeRoundTrip(t *testing.T) {
	tt := New(1)
	b, err := board.ParseFEN(board.Startpos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := board.ParseMove(b, "e2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	hash := uint64(0xABCDEF)
	tt.Put(hash, 7, 55, BoundExact, m, 0, 40)

	entry, hit := tt.Probe(hash)
	if !hit {
		t.Fatalf("expected hit after Put")
	}
	if entry.Depth() != 7 {
		t.Errorf("Depth() = %d, want 7", entry.Depth())
	}
	if entry.BoundKind() != BoundExact {
		t.Errorf("BoundKind() = %v, want BoundExact", entry.BoundKind())
	}
	if TTScore(entry.Score(), 0) != 55 {
		t.Errorf("TTScore() = %d, want 55", TTScore(entry.Score(), 0))
	}
	if entry.From() != int(m.From()) || entry.To() != int(m.To()) {
		t.Errorf("stored move projection does not match")
	}
}

func TestTTMateScorePlyAdjustment(t *testing.T) {
	tt := New(1)
	hash := uint64(0x55)
	mateScore := Checkmate - 4
	tt.Put(hash, 10, mateScore, BoundExact, board.NullMove, 3, 0)

	entry, hit := tt.Probe(hash)
	if !hit {
		t.Fatalf("expected hit")
	}
	if got := TTScore(entry.Score(), 3); got != mateScore {
		t.Errorf("TTScore at storing ply = %d, want %d", got, mateScore)
	}
	if got := TTScore(entry.Score(), 5); got == mateScore {
		t.Errorf("TTScore at a different ply should differ from the stored absolute value")
	}
}

func TestTTReplacementPrefersDeeper(t *testing.T) {
	tt := New(1)
	hash := uint64(0x99)
	tt.Put(hash, 10, 10, BoundExact, board.NullMove, 0, 0)
	tt.Put(hash, 2, 20, BoundUpper, board.NullMove, 0, 0)

	entry, hit := tt.Probe(hash)
	if !hit {
		t.Fatalf("expected hit")
	}
	if entry.Depth() != 10 {
		t.Errorf("a shallower non-exact write should not overwrite a deeper entry; Depth() = %d, want 10", entry.Depth())
	}
}

func TestTTClear(t *testing.T) {
	tt := New(1)
	tt.Put(0x1, 5, 0, BoundExact, board.NullMove, 0, 0)
	tt.Clear()
	if _, hit := tt.Probe(0x1); hit {
		t.Errorf("Clear() should empty every bucket")
	}
}
