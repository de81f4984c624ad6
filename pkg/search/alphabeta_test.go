package search_test

import (
	"context"
	"testing"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/board/fen"
	"github.com/b88/zugzwang/pkg/eval"
	"github.com/b88/zugzwang/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBoard decodes fen against a fresh Zobrist table, for tests that only
// need a single isolated board.
func newBoard(t *testing.T, in string) *board.Board {
	t.Helper()
	pos, err := fen.Decode(board.NewZobristTable(1), in)
	require.NoError(t, err)
	return board.NewBoard(pos)
}

func newSearchContext() *search.Context {
	return &search.Context{
		Alpha: eval.NegInfScore,
		Beta:  eval.InfScore,
		TT:    search.NoTranspositionTable{},
	}
}

func TestAlphaBetaSymmetricStartIsZero(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t, fen.Initial)

	ab := search.AlphaBeta{Eval: search.Quiescence{Eval: eval.Material{}}}
	n, score, pv, err := ab.Search(ctx, newSearchContext(), b, 2)

	require.NoError(t, err)
	assert.Greater(t, n, uint64(0))
	assert.Equal(t, eval.ZeroScore, score)
	assert.Len(t, pv, 2)
}

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	// White king h1, rooks g6/h7 ladder-mate the black king on a8; depth 2
	// so the ply after White's mating move still runs the legal-move check
	// (quiescence at depth 0 never re-derives checkmate on its own).
	b := newBoard(t, "k7/7R/6R1/8/8/8/8/7K w - - 0 1")

	ab := search.AlphaBeta{Eval: search.Quiescence{Eval: eval.Material{}}}
	n, score, pv, err := ab.Search(ctx, newSearchContext(), b, 2)

	require.NoError(t, err)
	assert.Greater(t, n, uint64(0))
	require.True(t, eval.IsMate(score))
	assert.Greater(t, score, eval.ZeroScore)
	require.Len(t, pv, 1)

	d, ok := score.MateDistance()
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestAlphaBetaStalemateIsZero(t *testing.T) {
	ctx := context.Background()
	// Textbook K+Q vs K stalemate, black to move.
	b := newBoard(t, "7k/8/6Q1/8/8/8/8/6K1 b - - 0 1")

	ab := search.AlphaBeta{Eval: search.Quiescence{Eval: eval.Material{}}}
	n, score, pv, err := ab.Search(ctx, newSearchContext(), b, 2)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), n) // no legal move: one node, no recursion
	assert.Equal(t, eval.ZeroScore, score)
	assert.Empty(t, pv)
}

func TestAlphaBetaUsesTranspositionTable(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	tt := search.NewTranspositionTable(ctx, 1<<20)
	ab := search.AlphaBeta{Eval: search.Quiescence{Eval: eval.Material{}}}

	sctx1 := newSearchContext()
	sctx1.TT = tt
	_, first, _, err := ab.Search(ctx, sctx1, b, 3)
	require.NoError(t, err)

	sctx2 := newSearchContext()
	sctx2.TT = tt
	n2, second, _, err := ab.Search(ctx, sctx2, b, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Greater(t, tt.Used(), 0.0)
	assert.Equal(t, uint64(0), n2) // root is answered by its exact depth-3 entry
}
