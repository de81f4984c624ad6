package search

import (
	"context"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Quiescence implements quiescence search (Section 4.7.3): a restricted
// alpha-beta search over captures and promotions only, from a stand-pat
// baseline, used at the horizon of the main search so it does not misjudge
// a position mid-exchange.
type Quiescence struct {
	Eval eval.Evaluator
}

func (q Quiescence) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	run := &runQuiescence{eval: q.Eval, noise: sctx.Noise, b: b}

	low, high := eval.NegInfScore, eval.InfScore
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	score := run.search(ctx, low, high)
	return run.nodes, score
}

type runQuiescence struct {
	eval  eval.Evaluator
	noise eval.Random
	b     *board.Board
	nodes uint64
}

// search returns the stand-pat-anchored score for the side to move.
func (r *runQuiescence) search(ctx context.Context, alpha, beta eval.Score) eval.Score {
	if contextx.IsCancelled(ctx) {
		return eval.ZeroScore
	}
	if r.b.Result().Outcome == board.Draw {
		return eval.ZeroScore
	}

	r.nodes++

	turn := r.b.Turn()
	standPat := r.eval.Evaluate(ctx, r.b)*eval.Unit(turn) + r.noise.Evaluate(ctx, r.b)
	if standPat >= beta {
		return beta
	}
	alpha = eval.Max(alpha, standPat)

	pos := r.b.Position()
	moves := board.NewMoveList(board.CapturesAndPromotions(pos), CaptureOrderingPriority(pos))
	for {
		m, ok := moves.Next()
		if !ok {
			break
		}

		if m.Type.IsCapture() && board.SEE(pos, m)+int(alpha) < 0 {
			continue // cheap SEE-based futility filter (Section 4.7.3)
		}

		r.b.Make(m)
		score := r.search(ctx, beta.Negate(), alpha.Negate())
		score = eval.IncrementMateDistance(score).Negate()
		r.b.Unmake()

		alpha = eval.Max(alpha, score)
		if alpha >= beta {
			return beta // cutoff
		}
	}

	return alpha
}
