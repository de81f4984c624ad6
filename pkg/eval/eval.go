// Package eval contains position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/b88/zugzwang/pkg/board"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centipawns from White's
	// perspective (Section 4.5). Callers negate for Black to move.
	Evaluate(ctx context.Context, b *board.Board) Score
}

// NominalValue is the absolute centipawn value of a piece kind, shared with
// SEE (Section 4.4). The King has an arbitrary large value so it is never
// the losing side of a material trade.
func NominalValue(k board.Kind) int {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain for a move, used by MVV-LVA
// move ordering (Section 4.7.2).
func NominalValueGain(m board.Move) int {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}

// maxPhase is the sum of phaseWeight over both sides' starting non-king,
// non-pawn material: 2*(2*1 + 2*1 + 2*2 + 1*4) = 24.
const maxPhase = 24

// Material implements a tapered material + piece-square evaluator (Section
// 4.5): two tables per kind (midgame, endgame) are blended by a phase
// counter derived from the remaining minor/major material on the board.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()

	var mg, eg, phase int
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			pc := pos.PieceAt(sq)
			if pc.IsEmpty() {
				continue
			}

			k, c := pc.Kind(), pc.Color()
			sign := 1
			if c == board.Black {
				sign = -1
			}

			pieceMG, pieceEG := pst(k, c, sq)
			mg += sign * (NominalValue(k) + pieceMG)
			eg += sign * (NominalValue(k) + pieceEG)
			phase += phaseWeight[k]
		}
	}

	if phase > maxPhase {
		phase = maxPhase
	}
	// mg weighted by phase/maxPhase, eg weighted by 1-phase/maxPhase.
	blended := (mg*phase + eg*(maxPhase-phase)) / maxPhase

	return Score(blended)
}

// NonPawnMaterial sums the nominal value of c's knights, bishops, rooks and
// queens, used by search's null-move pruning zugzwang guard (Section 4.7:
// null-move is only attempted with enough non-pawn material on the board).
func NonPawnMaterial(p *board.Position, c board.Color) int {
	var total int
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			pc := p.PieceAt(board.NewSquare(file, rank))
			if pc.IsEmpty() || pc.Color() != c {
				continue
			}
			switch pc.Kind() {
			case board.Knight, board.Bishop, board.Rook, board.Queen:
				total += NominalValue(pc.Kind())
			}
		}
	}
	return total
}
