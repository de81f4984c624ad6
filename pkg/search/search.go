// Package search contains search functionality and utilities.
package search

import (
	"fmt"
	"time"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/eval"
)

// PV represents the principal variation found at some iterative-deepening
// depth (Section 4.7's one-line progress report: depth, elapsed
// milliseconds, node count, nodes per second, and the PV itself). Launching
// and halting searches across depths is searchctl's responsibility, not
// this package's; PV is the value that crosses that boundary.
type PV struct {
	Depth int
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
	Hash  float64 // TT utilization fraction [0;1] at the end of this depth, if a TT is in use.
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v nps=%v time=%v pv=%v",
		p.Depth, p.Score, p.Nodes, nps(p.Nodes, p.Time), p.Time, board.PrintMoves(p.Moves))
}

func nps(nodes uint64, d time.Duration) uint64 {
	s := d.Seconds()
	if s <= 0 {
		return 0
	}
	return uint64(float64(nodes) / s)
}
