package search_test

import (
	"context"
	"testing"

	"github.com/b88/zugzwang/pkg/board/fen"
	"github.com/b88/zugzwang/pkg/eval"
	"github.com/b88/zugzwang/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPVSSymmetricStartIsZero(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t, fen.Initial)

	pvs := search.PVS{Eval: search.Quiescence{Eval: eval.Material{}}}
	// depth 2 never reaches nullMoveMinDepth, so this exercises plain PVS
	// without null-move pruning muddying a from-scratch symmetric position.
	n, score, pv, err := pvs.Search(ctx, newSearchContext(), b, 2)

	require.NoError(t, err)
	assert.Greater(t, n, uint64(0))
	assert.Equal(t, eval.ZeroScore, score)
	assert.Len(t, pv, 2)
}

func TestPVSFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t, "k7/7R/6R1/8/8/8/8/7K w - - 0 1")

	pvs := search.PVS{Eval: search.Quiescence{Eval: eval.Material{}}}
	_, score, pv, err := pvs.Search(ctx, newSearchContext(), b, 2)

	require.NoError(t, err)
	require.True(t, eval.IsMate(score))
	assert.Greater(t, score, eval.ZeroScore)
	require.Len(t, pv, 1)

	d, ok := score.MateDistance()
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestPVSStalemateIsZero(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t, "7k/8/6Q1/8/8/8/8/6K1 b - - 0 1")

	pvs := search.PVS{Eval: search.Quiescence{Eval: eval.Material{}}}
	_, score, pv, err := pvs.Search(ctx, newSearchContext(), b, 2)

	require.NoError(t, err)
	assert.Equal(t, eval.ZeroScore, score)
	assert.Empty(t, pv)
}

// TestPVSAgreesWithAlphaBeta checks PVS's ordering and null-window
// re-search against the simpler AlphaBeta baseline: both must land on the
// same minimax value for a full-window search to the same depth. At depth 3
// null-move pruning never fires (the root is excluded and its children sit
// below nullMoveMinDepth), so it is not exercised here.
func TestPVSAgreesWithAlphaBeta(t *testing.T) {
	ctx := context.Background()
	positions := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, p := range positions {
		ab := search.AlphaBeta{Eval: search.Quiescence{Eval: eval.Material{}}}
		pvs := search.PVS{Eval: search.Quiescence{Eval: eval.Material{}}}

		_, abScore, _, err := ab.Search(ctx, newSearchContext(), newBoard(t, p), 3)
		require.NoError(t, err)

		_, pvsScore, _, err := pvs.Search(ctx, newSearchContext(), newBoard(t, p), 3)
		require.NoError(t, err)

		assert.Equalf(t, abScore, pvsScore, "mismatch for %v", p)
	}
}
