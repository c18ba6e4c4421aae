package board

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	b, err := ParseFEN(Startpos)
	if err != nil {
		t.Fatalf("ParseFEN(startpos): %v", err)
	}
	if got := b.ToFEN(); got != Startpos {
		t.Errorf("round-trip FEN = %q, want %q", got, Startpos)
	}
}

func TestPerftStartpos(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		b, err := ParseFEN(Startpos)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		if got := Perft(b, c.depth); got != c.nodes {
			t.Errorf("Perft(depth=%d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := ParseFEN(kiwipete)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := Perft(b, 1); got != 48 {
		t.Errorf("Perft(kiwipete, 1) = %d, want 48", got)
	}
	if got := Perft(b, 2); got != 2039 {
		t.Errorf("Perft(kiwipete, 2) = %d, want 2039", got)
	}
}

func TestParseMoveAndIsCapture(t *testing.T) {
	b, err := ParseFEN(Startpos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseMove(b, "e2e4")
	if err != nil {
		t.Fatalf("ParseMove(e2e4): %v", err)
	}
	if m.IsCapture() {
		t.Errorf("e2e4 from startpos should not be a capture")
	}
	if m.String() != "e2e4" {
		t.Errorf("String() = %q, want e2e4", m.String())
	}
}

func TestIsInsufficientMaterial(t *testing.T) {
	b, err := ParseFEN("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !b.IsInsufficientMaterial() {
		t.Errorf("bare kings should be insufficient material")
	}
}

func TestIsDrawBy50(t *testing.T) {
	b, err := ParseFEN("8/8/8/4k3/8/8/4K3/8 w - - 100 60")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !b.IsDrawBy50() {
		t.Errorf("halfmove clock 100 should trip the 50-move rule")
	}
}
