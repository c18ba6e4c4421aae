package eval

import (
	"testing"

	"github.com/corvid-engine/corvid/board"
)

func mustFEN(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestEvaluateStartposIsNearZero(t *testing.T) {
	b := mustFEN(t, board.Startpos)
	score := Evaluate(b)
	if score < 0 || score > TempoBonus+5 {
		t.Errorf("Evaluate(startpos) = %d, want close to the tempo bonus (%d)", score, TempoBonus)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	// White has an extra queen.
	b := mustFEN(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if score := Evaluate(b); score < 500 {
		t.Errorf("Evaluate(white up a queen) = %d, want a large positive score", score)
	}
}

func TestEvaluateIsSideRelative(t *testing.T) {
	white := mustFEN(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	black := mustFEN(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	if Evaluate(white) <= 0 {
		t.Errorf("white to move, up a queen, should evaluate positive")
	}
	if Evaluate(black) >= 0 {
		t.Errorf("black to move, down a queen, should evaluate negative")
	}
}
