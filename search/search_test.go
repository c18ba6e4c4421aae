package search

import (
	"testing"
	"time"

	"github.com/corvid-engine/corvid/board"
)

func newSearcher(t *testing.T, fen string) *Searcher {
	t.Helper()
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return NewSearcher(b, New(1))
}

func TestSearchFindsMateInOne(t *testing.T) {
	s := newSearcher(t, "1k6/8/KQ6/8/8/8/8/8 w - - 0 1")
	result := s.Search(&Params{Depth: 4}, nil)

	if result.BestMove == board.NullMove {
		t.Fatalf("expected a best move, got none")
	}
	if got := result.BestMove.String(); got != "b6b7" {
		t.Errorf("BestMove = %q, want b6b7", got)
	}
	if result.Score < MateBound {
		t.Errorf("Score = %d, want a mate score >= %d", result.Score, MateBound)
	}
}

func TestSearchReturnsLegalMoveFromStartpos(t *testing.T) {
	s := newSearcher(t, board.Startpos)
	result := s.Search(&Params{Depth: 3}, nil)

	if result.BestMove == board.NullMove {
		t.Fatalf("expected a best move from the starting position")
	}
	legal := false
	for _, m := range s.Board.GenerateMoves() {
		if m == result.BestMove {
			legal = true
			break
		}
	}
	if !legal {
		t.Errorf("BestMove %v is not a legal move in the current position", result.BestMove)
	}
}

func TestSearchStalemateIsZero(t *testing.T) {
	// Black king on a8 is stalemated: no checks, no legal moves.
	s := newSearcher(t, "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	var scores []int
	result := s.Search(&Params{Depth: 2}, func(depth, seldepth int, nodes uint64, elapsed time.Duration, score int, pv []board.Move) {
		scores = append(scores, score)
	})
	if result.BestMove != board.NullMove {
		t.Errorf("stalemate should produce no best move, got %v", result.BestMove)
	}
	for i, sc := range scores {
		if sc != 0 {
			t.Errorf("depth %d stalemate score = %d, want 0", i+1, sc)
		}
	}
}

func TestInfoCallbackFiresPerDepth(t *testing.T) {
	s := newSearcher(t, board.Startpos)
	var depths []int
	s.Search(&Params{Depth: 3}, func(depth, seldepth int, nodes uint64, elapsed time.Duration, score int, pv []board.Move) {
		depths = append(depths, depth)
	})
	if len(depths) != 3 {
		t.Errorf("expected 3 info callbacks (one per depth), got %d: %v", len(depths), depths)
	}
	for i, d := range depths {
		if d != i+1 {
			t.Errorf("depths[%d] = %d, want %d", i, d, i+1)
		}
	}
}
