package search

import (
	"context"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Null-move pruning parameters (Section 4.7): not at the root, not in
// check, only from depth >= nullMoveMinDepth, and only with enough
// non-pawn material on the board that passing is unlikely to be the only
// good move (zugzwang).
const (
	nullMoveMinDepth          = 3
	nullMoveReduction         = 2 // R
	nullMoveMaterialThreshold = 1300
)

// PVS implements negamax with principal-variation search (Section 4.7):
// the first move at each node is searched with the full window; later
// moves first get a cheap null-window probe and are only re-searched with
// the full window if that probe fails high.
//
// function pvs(node, depth, α, β) is
//
//	if depth = 0 or node is a terminal node then
//	    return quiescence(α, β)
//	for each child of node do
//	    if child is first child then
//	        score := −pvs(child, depth − 1, −β, −α)
//	    else
//	        score := −pvs(child, depth − 1, −α − 1, −α)
//	        if α < score < β then
//	            score := −pvs(child, depth − 1, −β, −α) (* re-search on fail-high *)
//	    α := max(α, score)
//	    if α ≥ β then
//	        break (* beta cutoff *)
//	return α
//
// See: https://en.wikipedia.org/wiki/Principal_variation_search.
type PVS struct {
	Eval QuietSearch
}

func (p PVS) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	killers := sctx.Killers
	if killers == nil {
		killers = NewKillers(depth + 1)
	}
	history := sctx.History
	if history == nil {
		history = NewHistory()
	}

	run := &runPVS{
		eval:    p.Eval,
		tt:      sctx.TT,
		noise:   sctx.Noise,
		killers: killers,
		history: history,
		rootPV:  firstOrZero(sctx.Ponder),
		b:       b,
	}

	low, high := eval.NegInfScore, eval.InfScore
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	score, pv := run.search(ctx, depth, 0, low, high, true)
	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runPVS struct {
	eval    QuietSearch
	tt      TranspositionTable
	noise   eval.Random
	killers *Killers
	history *History
	rootPV  board.Move

	b     *board.Board
	nodes uint64
}

// search returns the score (for the side to move) and principal variation
// at this node. ply is the distance from the search root: it indexes
// killers and is passed to TT writes (mate distance is tracked by
// IncrementMateDistance, not by ply); isRoot gates null-move pruning and
// the root-PV ordering hint.
func (r *runPVS) search(ctx context.Context, depth, ply int, alpha, beta eval.Score, isRoot bool) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return eval.InvalidScore, nil
	}
	if r.b.Result().Outcome == board.Draw {
		return eval.ZeroScore, nil
	}

	hash := r.b.Hash()
	var ttHint board.Move
	if bound, d, score, move, ok := r.tt.Read(hash); ok {
		ttHint = move
		if d >= depth {
			switch bound {
			case ExactBound:
				return score, nil
			case LowerBound:
				if score >= beta {
					return score, nil
				}
			case UpperBound:
				if score <= alpha {
					return score, nil
				}
			}
		}
	}

	if depth <= 0 {
		sctx := &Context{Alpha: alpha, Beta: beta, TT: r.tt, Noise: r.noise}
		nodes, score := r.eval.QuietSearch(ctx, sctx, r.b)
		r.nodes += nodes
		return score, nil
	}

	r.nodes++
	turn := r.b.Turn()
	inCheck := r.b.Position().InCheck(turn)

	// Null-move pruning: skip our own move once, under a reduced-depth,
	// narrow-window search, to cheaply detect positions so good that even
	// passing doesn't lose. Unsound in zugzwang, so gated on material.
	if !isRoot && !inCheck && depth >= nullMoveMinDepth &&
		eval.NonPawnMaterial(r.b.Position(), turn) >= nullMoveMaterialThreshold {

		u := r.b.Position().MakeNullMove()
		score, _ := r.search(ctx, depth-1-nullMoveReduction, ply+1, beta.Negate(), beta.Negate()+1, false)
		r.b.Position().UnmakeNullMove(u)

		if !score.IsInvalid() {
			score = eval.IncrementMateDistance(score).Negate()
			if score >= beta {
				return beta, nil
			}
		}
	}

	legal := board.LegalMoves(r.b.Position())
	if len(legal) == 0 {
		if inCheck {
			// Mate distance is accumulated one ply at a time by
			// IncrementMateDistance as this score is negated back up the
			// recursion, so the leaf itself always reports distance zero.
			return -eval.MateScore, nil
		}
		return eval.ZeroScore, nil
	}

	rootHint := board.Move{}
	if isRoot {
		rootHint = r.rootPV
	}

	bound := UpperBound
	var pv []board.Move
	first := true

	moves := board.NewMoveList(legal, OrderingPriority(r.b.Position(), ttHint, rootHint, ply, r.killers, r.history))
	for {
		move, ok := moves.Next()
		if !ok {
			break
		}

		r.b.Make(move)

		var score eval.Score
		var rem []board.Move
		if first {
			score, rem = r.search(ctx, depth-1, ply+1, beta.Negate(), alpha.Negate(), false)
			score = eval.IncrementMateDistance(score).Negate()
		} else {
			score, _ = r.search(ctx, depth-1, ply+1, alpha.Negate()-1, alpha.Negate(), false)
			score = eval.IncrementMateDistance(score).Negate()
			if alpha.Less(score) && score.Less(beta) {
				score, rem = r.search(ctx, depth-1, ply+1, beta.Negate(), alpha.Negate(), false)
				score = eval.IncrementMateDistance(score).Negate()
			}
		}

		r.b.Unmake()
		first = false

		if alpha.Less(score) {
			alpha = score
			bound = ExactBound
			pv = append([]board.Move{move}, rem...)
		}

		if alpha == beta || beta.Less(alpha) {
			bound = LowerBound
			if !move.Type.IsCapture() {
				r.killers.Add(ply, move)
				r.history.Add(move, depth)
			}
			break // cutoff
		}
	}

	r.tt.Write(hash, bound, ply, depth, alpha, firstOrNone(pv))
	return alpha, pv
}

func firstOrZero(moves []board.Move) board.Move {
	if len(moves) == 0 {
		return board.Move{}
	}
	return moves[0]
}
