package search

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/eval"
	"github.com/seekerror/logw"
)

// Bound represents the bound of a -- possibly inexact -- search score
// (Section 4.6): exact (PV-node), a lower bound from a cut-node (fail-high,
// beta cutoff), or an upper bound from an all-node (fail-low, no move raised
// alpha).
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// TranspositionTable represents a transposition table to speed up search
// performance (Section 4.6). The search is single-threaded (Non-goal:
// multi-threaded/lazy-SMP search), so implementations need not be
// lock-free -- a plain slice suffices.
type TranspositionTable interface {
	// Read returns the bound, depth, score and best move for the given position hash, if present.
	Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool)
	// Write stores the entry into the table, depending on table semantics and replacement policy.
	Write(hash board.ZobristHash, bound Bound, ply, depth int, score eval.Score, move board.Move) bool

	// NewSearch stamps a new search generation, so that the next Write's
	// replacement decisions favor entries from the current search over
	// stale ones from a previous, unrelated search.
	NewSearch()

	// Size returns the size of the table in bytes.
	Size() uint64
	// Used returns the utilization as a fraction [0;1].
	Used() float64
}

type TranspositionTableFactory func(ctx context.Context, size uint64) TranspositionTable

// entry is a single transposition table slot.
type entry struct {
	hash      board.ZobristHash
	score     eval.Score
	bound     Bound
	from, to  board.Square
	promotion board.Kind
	depth     int
	age       uint8
	valid     bool
}

// table is a fixed power-of-two-sized transposition table, indexed by
// key & (size-1) (Section 4.6). Not safe for concurrent use.
type table struct {
	entries []entry
	mask    uint64
	used    uint64
	age     uint8
}

// NewTranspositionTable allocates a table of the largest power-of-two entry
// count that fits within size bytes.
func NewTranspositionTable(ctx context.Context, size uint64) TranspositionTable {
	const entrySize = 40 // approximate entry footprint, for sizing purposes only
	n := uint64(1) << uint(63-bits.LeadingZeros64(size/entrySize+1))
	if n == 0 {
		n = 1
	}

	logw.Infof(ctx, "Allocating %vMB TT with %v entries", size>>20, n)

	return &table{
		entries: make([]entry, n),
		mask:    n - 1,
	}
}

func (t *table) NewSearch() {
	t.age++
}

func (t *table) Size() uint64 {
	return uint64(len(t.entries)) * 40
}

func (t *table) Used() float64 {
	return float64(t.used) / float64(len(t.entries))
}

func (t *table) Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	e := &t.entries[uint64(hash)&t.mask]
	if !e.valid || e.hash != hash {
		return 0, 0, eval.ZeroScore, board.Move{}, false
	}
	move := board.Move{From: e.from, To: e.to, Promotion: e.promotion}
	return e.bound, e.depth, e.score, move, true
}

// Write stores the entry, replacing the existing slot if it is empty,
// matches the current key, belongs to a previous search generation, or the
// new entry searched at least as deep (Section 4.6's replacement policy).
func (t *table) Write(hash board.ZobristHash, bound Bound, ply, depth int, score eval.Score, move board.Move) bool {
	e := &t.entries[uint64(hash)&t.mask]

	replace := !e.valid || e.hash == hash || e.age != t.age || depth >= e.depth
	if !replace {
		return false
	}
	if !e.valid {
		t.used++
	}

	e.hash = hash
	e.score = score
	e.bound = bound
	e.from = move.From
	e.to = move.To
	e.promotion = move.Promotion
	e.depth = depth
	e.age = t.age
	e.valid = true
	return true
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// WriteFilter is a predicate on the Write operation.
type WriteFilter func(hash board.ZobristHash, bound Bound, ply, depth int, score eval.Score, move board.Move) bool

// WriteLimited is a TranspositionTable wrapper that ignores certain writes, such as
// less than a given minimum depth. Useful if evaluation uses recent move history.
type WriteLimited struct {
	Filter WriteFilter
	TT     TranspositionTable
}

func (w WriteLimited) Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	return w.TT.Read(hash)
}

func (w WriteLimited) Write(hash board.ZobristHash, bound Bound, ply, depth int, score eval.Score, move board.Move) bool {
	if w.Filter(hash, bound, ply, depth, score, move) {
		return false
	}
	return w.TT.Write(hash, bound, ply, depth, score, move)
}

func (w WriteLimited) NewSearch() { w.TT.NewSearch() }
func (w WriteLimited) Size() uint64 { return w.TT.Size() }
func (w WriteLimited) Used() float64 { return w.TT.Used() }

// NewMinDepthTranspositionTable creates depth-limited TranspositionTables.
func NewMinDepthTranspositionTable(min int) TranspositionTableFactory {
	return func(ctx context.Context, size uint64) TranspositionTable {
		return WriteLimited{
			Filter: func(hash board.ZobristHash, bound Bound, ply, depth int, score eval.Score, move board.Move) bool {
				return depth < min
			},
			TT: NewTranspositionTable(ctx, size),
		}
	}
}

// NoTranspositionTable is a Nop implementation.
type NoTranspositionTable struct{}

func (n NoTranspositionTable) Read(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	return 0, 0, eval.ZeroScore, board.Move{}, false
}

func (n NoTranspositionTable) Write(hash board.ZobristHash, bound Bound, ply, depth int, score eval.Score, move board.Move) bool {
	return false
}

func (n NoTranspositionTable) NewSearch()    {}
func (n NoTranspositionTable) Size() uint64  { return 0 }
func (n NoTranspositionTable) Used() float64 { return 0 }
