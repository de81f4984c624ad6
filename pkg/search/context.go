package search

import (
	"context"
	"errors"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/eval"
)

// ErrHalted is returned by a Search when it was cancelled mid-flight rather
// than completing normally. Iterative deepening (searchctl) treats it as "use
// the last completed depth's PV" rather than a hard failure.
var ErrHalted = errors.New("search halted")

// Context carries the per-search state that would otherwise have to thread
// through every recursive call by hand: the bounding window inherited from
// the caller (e.g. aspiration windows in iterative deepening), the shared
// transposition table, move-ordering memory (killers/history), evaluation
// noise, and a ponder move sequence (AlphaBeta explores only that line for
// as many plies as it has moves; PVS uses its first move as a root ordering
// hint). One value
// is owned by the launching goroutine and passed down explicitly, never
// stored on the recursion's stack frames (Section 5, Section 9).
type Context struct {
	Alpha, Beta eval.Score // Invalid means "unbounded"; see IsInvalid.
	TT          TranspositionTable
	Noise       eval.Random
	Killers     *Killers
	History     *History
	Ponder      []board.Move
}

// Search is a fixed-depth search over a position, returning the node count,
// score (from the side-to-move's perspective) and principal variation.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}

// QuietSearch is a search that is only allowed to explore a restricted move
// set (captures and promotions) until the position is "quiet" — used at
// the horizon of the main search (Section 4.7.3).
type QuietSearch interface {
	QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score)
}
