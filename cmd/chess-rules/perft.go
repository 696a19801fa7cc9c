// perft.go - Move generator node counts
package main

import (
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// runPerft counts the positions reachable from the start position in
// depth plies. With divide set the count is broken down by first move.
func runPerft(cfg *config.Config, depth int, divide bool) error {
	if depth < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	p := message.NewPrinter(language.English)
	b := chess.NewBoard()
	start := time.Now()

	var nodes int64
	if divide {
		counts := engine.PerftDivide(b, depth)
		moves := make([]string, 0, len(counts))
		for m := range counts {
			moves = append(moves, m)
		}
		sort.Strings(moves)
		for _, m := range moves {
			p.Fprintf(cfg.OutputFile, "%s: %d\n", m, counts[m])
			nodes += counts[m]
		}
	} else {
		nodes = engine.Perft(b, depth)
	}

	elapsed := time.Since(start)
	var rate int64
	if secs := elapsed.Seconds(); secs > 0 {
		rate = int64(float64(nodes) / secs)
	}
	p.Fprintf(cfg.OutputFile, "d=%d nodes=%d rate=%dn/s (%.3fs elapsed)\n", depth, nodes, rate, elapsed.Seconds())
	return nil
}
