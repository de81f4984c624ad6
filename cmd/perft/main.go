// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	zt := board.NewZobristTable(0)
	pos, err := fen.Decode(zt, *position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()

		var nodes int64
		if *divide && i == *depth {
			for _, entry := range board.PerftDivide(pos, i) {
				println(fmt.Sprintf("%v: %v", entry.Move, entry.Nodes))
				nodes += entry.Nodes
			}
		} else {
			nodes = board.Perft(pos, i)
		}

		duration := time.Since(start)
		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}
