package uci

import (
	"strings"
	"testing"
	"time"

	"github.com/corvid-engine/corvid/board"
	"github.com/corvid-engine/corvid/search"
)

func TestFormatInfoCentipawnScore(t *testing.T) {
	b, _ := board.ParseFEN(board.Startpos)
	m, _ := board.ParseMove(b, "e2e4")
	line := formatInfo(5, 7, 12345, 250*time.Millisecond, 34, []board.Move{m})

	want := []string{"info depth 5", "seldepth 7", "nodes 12345", "time 250", "score cp 34", "pv e2e4"}
	for _, w := range want {
		if !strings.Contains(line, w) {
			t.Errorf("formatInfo() = %q, missing %q", line, w)
		}
	}
}

func TestFormatInfoMateScore(t *testing.T) {
	line := formatInfo(9, 9, 100, time.Second, search.Checkmate-2, nil)
	if !strings.Contains(line, "score mate") {
		t.Errorf("formatInfo() = %q, want a mate score", line)
	}
	if strings.Contains(line, "score cp") {
		t.Errorf("formatInfo() = %q, should not report cp for a mate score", line)
	}
}

func TestFormatInfoNegativeMateScore(t *testing.T) {
	line := formatInfo(9, 9, 100, time.Second, -(search.Checkmate - 2), nil)
	if !strings.Contains(line, "score mate -") {
		t.Errorf("formatInfo() = %q, want a negative mate distance", line)
	}
}

func TestAllocateMoveTime(t *testing.T) {
	deadline, _, infinite := allocate(limits{moveTime: 500}, true)
	if infinite {
		t.Fatalf("explicit movetime should not be infinite")
	}
	if deadline.Before(time.Now()) {
		t.Errorf("deadline should be in the future")
	}
}

func TestAllocateInfinite(t *testing.T) {
	_, _, infinite := allocate(limits{infinite: true}, true)
	if !infinite {
		t.Errorf("infinite limit should set infinite=true")
	}
}

func TestAllocateClockBased(t *testing.T) {
	deadline, _, infinite := allocate(limits{whiteTime: 60000, whiteIncrement: 500, movesToGo: 20}, true)
	if infinite {
		t.Fatalf("clock-based limits should not be infinite")
	}
	if deadline.Before(time.Now()) {
		t.Errorf("deadline should be in the future for a healthy clock")
	}
}
