package search_test

import (
	"testing"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestMVVLVA(t *testing.T) {
	nb := board.Move{Type: board.Quiet, Piece: board.Bishop}
	nq := board.Move{Type: board.Quiet, Piece: board.Queen}
	cqb := board.Move{Type: board.Capture, Piece: board.Queen, Capture: board.Bishop}
	crb := board.Move{Type: board.Capture, Piece: board.Rook, Capture: board.Bishop}
	ckb := board.Move{Type: board.Capture, Piece: board.Knight, Capture: board.Bishop}
	cqp := board.Move{Type: board.Capture, Piece: board.Queen, Capture: board.Pawn}
	crp := board.Move{Type: board.Capture, Piece: board.Rook, Capture: board.Pawn}
	pb := board.Move{Type: board.Promotion, Piece: board.Pawn, Promotion: board.Bishop}
	pr := board.Move{Type: board.Promotion, Piece: board.Pawn, Promotion: board.Rook}
	pq := board.Move{Type: board.Promotion, Piece: board.Pawn, Promotion: board.Queen}
	cpqr := board.Move{Type: board.CapturePromotion, Piece: board.Pawn, Promotion: board.Queen, Capture: board.Rook}
	cprb := board.Move{Type: board.CapturePromotion, Piece: board.Pawn, Promotion: board.Rook, Capture: board.Bishop}
	cpqb := board.Move{Type: board.CapturePromotion, Piece: board.Pawn, Promotion: board.Queen, Capture: board.Bishop}
	ep := board.Move{Type: board.EnPassant, Piece: board.Pawn}

	tests := []struct {
		in, out []board.Move
	}{
		{[]board.Move{nb, nq, ep}, []board.Move{ep, nb, nq}},
		{[]board.Move{cqb, crb, ckb, cqp, crp}, []board.Move{ckb, crb, cqb, crp, cqp}},
		{[]board.Move{pb, pr, pq}, []board.Move{pq, pr, pb}},
		{[]board.Move{cpqr, cprb, cpqb}, []board.Move{cpqr, cpqb, cprb}},

		{
			[]board.Move{nb, nq, cqb, crb, ckb, cqp, crp, pb, pr, pq, cpqr, cprb, cpqb, ep},
			[]board.Move{cpqr, cpqb, pq, cprb, pr, ckb, crb, cqb, pb, ep, crp, cqp, nb, nq},
		},
	}

	for _, tt := range tests {
		var moves []board.Move
		list := board.NewMoveList(tt.in, search.MVVLVA)
		for {
			move, ok := list.Next()
			if !ok {
				break
			}
			moves = append(moves, move)
		}
		assert.Equal(t, board.PrintMoves(tt.out), board.PrintMoves(moves))
	}
}

func TestSelection(t *testing.T) {
	a := board.Move{From: board.E2, To: board.E4}
	b := board.Move{From: board.D2, To: board.D4}
	c := board.Move{From: board.G1, To: board.F3}

	priority, pick := search.Selection([]board.Move{a, b, c})

	assert.True(t, pick(a))
	assert.True(t, pick(b))
	assert.True(t, pick(c))
	assert.False(t, pick(board.Move{From: board.B1, To: board.C3}))

	assert.Greater(t, priority(a), priority(b))
	assert.Greater(t, priority(b), priority(c))
}

func TestIsAnyMove(t *testing.T) {
	assert.True(t, search.IsAnyMove(board.Move{}))
	assert.True(t, search.IsAnyMove(board.Move{From: board.A2, To: board.A4}))
}
