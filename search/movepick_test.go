package search

import (
	"testing"

	"github.com/corvid-engine/corvid/board"
)

func TestBubbleTopMoveSortsDescending(t *testing.T) {
	ml := MoveList{
		Moves:  []board.Move{1, 2, 3, 4},
		Scores: []int{10, 50, 30, 40},
	}
	for i := 0; i < len(ml.Moves); i++ {
		ml.bubbleTopMove(i)
	}
	want := []int{50, 40, 30, 10}
	for i, s := range want {
		if ml.Scores[i] != s {
			t.Fatalf("Scores = %v, want descending %v", ml.Scores, want)
		}
	}
}

func TestScoreMovesRanksTTMoveHighest(t *testing.T) {
	b, err := board.ParseFEN(board.Startpos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := b.GenerateMoves()
	ttMove := moves[len(moves)/2]

	var h Heuristics
	list := scoreMoves(b, &h, moves, ttMove, 0, board.NullMove)

	for i, m := range list.Moves {
		if m == ttMove && list.Scores[i] != Hash {
			t.Errorf("TT move scored %d, want Hash (%d)", list.Scores[i], Hash)
		}
	}
}

func TestResolveMoveMatchesProjection(t *testing.T) {
	b, err := board.ParseFEN(board.Startpos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := b.GenerateMoves()
	want := moves[0]

	tt := New(1)
	tt.Put(b.Hash(), 1, 0, BoundExact, want, 0, 0)
	entry, hit := tt.Probe(b.Hash())
	if !hit {
		t.Fatalf("expected TT hit")
	}
	if got := resolveMove(moves, entry); got != want {
		t.Errorf("resolveMove() = %v, want %v", got, want)
	}
}

func TestResolveMoveNoStoredMove(t *testing.T) {
	b, err := board.ParseFEN(board.Startpos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := b.GenerateMoves()

	tt := New(1)
	tt.Put(b.Hash(), 1, 0, BoundUpper, board.NullMove, 0, 0)
	entry, _ := tt.Probe(b.Hash())
	if got := resolveMove(moves, entry); got != board.NullMove {
		t.Errorf("resolveMove() with no stored move = %v, want NullMove", got)
	}
}
