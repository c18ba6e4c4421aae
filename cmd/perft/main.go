// Command perft is a divide-style move generator test harness: it
// reports the leaf-node count reachable from each legal root move at a
// given depth, computing the per-move counts concurrently.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/corvid-engine/corvid/board"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		fen   = flag.String("fen", board.Startpos, "FEN of the position to search")
		depth = flag.Int("depth", 5, "perft depth")
	)
	flag.Parse()

	b, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}

	start := time.Now()
	total, err := divide(b, *depth)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nnodes %d, %.2fs, %.0f nps\n", total, elapsed.Seconds(), float64(total)/elapsed.Seconds())
}

// divide computes board.Perft(depth-1) for every legal root move in
// parallel via errgroup, one board copy per move so each goroutine owns
// its own mutable state, and prints the per-move breakdown sorted by
// move string before returning the grand total.
func divide(b *board.Board, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := b.GenerateMoves()
	counts := make([]uint64, len(moves))

	var g errgroup.Group
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			cp := *b
			ok, st := cp.MakeMove(m)
			if !ok {
				return nil
			}
			counts[i] = board.Perft(&cp, depth-1)
			cp.UnmakeMove(m, st)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	type row struct {
		move  string
		count uint64
	}
	rows := make([]row, len(moves))
	var total uint64
	for i, m := range moves {
		rows[i] = row{m.String(), counts[i]}
		total += counts[i]
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].move < rows[j].move })
	for _, r := range rows {
		fmt.Printf("%s: %d\n", r.move, r.count)
	}
	return total, nil
}
