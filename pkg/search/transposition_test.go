package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/eval"
	"github.com/b88/zugzwang/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspositionTableSizing(t *testing.T) {
	ctx := context.Background()

	// Same requested size always allocates the same capacity.
	a := search.NewTranspositionTable(ctx, 1<<16)
	b := search.NewTranspositionTable(ctx, 1<<16)
	assert.Equal(t, a.Size(), b.Size())
	assert.Greater(t, a.Size(), uint64(0))

	// A much larger request allocates a larger table.
	big := search.NewTranspositionTable(ctx, 1<<24)
	assert.Greater(t, big.Size(), a.Size())
}

func TestTranspositionTableReadWrite(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTranspositionTable(ctx, 1<<20)

	hash := board.ZobristHash(rand.Uint64())

	_, _, _, _, ok := tt.Read(hash)
	assert.False(t, ok)

	move := board.Move{From: board.G4, To: board.G8, Promotion: board.Queen}
	score := eval.HeuristicScore(200)

	assert.True(t, tt.Write(hash, search.ExactBound, 0, 4, score, move))

	bound, depth, actual, actualMove, ok := tt.Read(hash)
	require.True(t, ok)
	assert.Equal(t, search.ExactBound, bound)
	assert.Equal(t, 4, depth)
	assert.Equal(t, score, actual)
	assert.Equal(t, move, actualMove)

	_, _, _, _, ok = tt.Read(hash ^ 0xff0000)
	assert.False(t, ok)
}

func TestTranspositionTableReplacementPolicy(t *testing.T) {
	ctx := context.Background()
	tt := search.NewTranspositionTable(ctx, 1<<20)

	hash := board.ZobristHash(rand.Uint64())
	move := board.Move{From: board.E2, To: board.E4}

	require.True(t, tt.Write(hash, search.ExactBound, 0, 4, eval.HeuristicScore(10), move))

	// Same key always replaces, regardless of depth (Section 4.6).
	assert.True(t, tt.Write(hash, search.LowerBound, 0, 1, eval.HeuristicScore(5), move))
	_, depth, _, _, _ := tt.Read(hash)
	assert.Equal(t, 1, depth)

	// A colliding key (same bucket, different hash) at a shallower depth and
	// the same search generation does not replace the deeper entry.
	entries := tt.Size() / 40
	mask := entries - 1
	collide := hash ^ board.ZobristHash(mask+1)
	require.NotEqual(t, hash, collide)

	require.True(t, tt.Write(hash, search.ExactBound, 0, 6, eval.HeuristicScore(30), move))
	assert.False(t, tt.Write(collide, search.ExactBound, 0, 0, eval.HeuristicScore(1), move))

	// Once the table moves to a new search generation, the stale deeper
	// entry no longer blocks the colliding write.
	tt.NewSearch()
	assert.True(t, tt.Write(collide, search.ExactBound, 0, 0, eval.HeuristicScore(1), move))

	bound, depth, actual, _, ok := tt.Read(collide)
	require.True(t, ok)
	assert.Equal(t, search.ExactBound, bound)
	assert.Equal(t, 0, depth)
	assert.Equal(t, eval.HeuristicScore(1), actual)
}

func TestNoTranspositionTable(t *testing.T) {
	var tt search.NoTranspositionTable

	_, _, _, _, ok := tt.Read(board.ZobristHash(1))
	assert.False(t, ok)
	assert.False(t, tt.Write(board.ZobristHash(1), search.ExactBound, 0, 4, eval.ZeroScore, board.Move{}))
	assert.Equal(t, uint64(0), tt.Size())
	assert.Equal(t, 0.0, tt.Used())
}

func TestMinDepthTranspositionTable(t *testing.T) {
	ctx := context.Background()
	tt := search.NewMinDepthTranspositionTable(3)(ctx, 1<<16)

	hash := board.ZobristHash(rand.Uint64())
	move := board.Move{From: board.A2, To: board.A4}

	assert.False(t, tt.Write(hash, search.ExactBound, 0, 2, eval.ZeroScore, move))
	_, _, _, _, ok := tt.Read(hash)
	assert.False(t, ok)

	assert.True(t, tt.Write(hash, search.ExactBound, 0, 3, eval.HeuristicScore(7), move))
	_, depth, score, _, ok := tt.Read(hash)
	require.True(t, ok)
	assert.Equal(t, 3, depth)
	assert.Equal(t, eval.HeuristicScore(7), score)
}
