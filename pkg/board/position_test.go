package board_test

import (
	"testing"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositionRequiresOneKingPerSide(t *testing.T) {
	zt := board.NewZobristTable(1)

	_, err := board.NewPosition(zt, []board.Placement{
		{Square: board.E1, Piece: board.NewPiece(board.White, board.King)},
	}, board.White, board.ZeroCastling, board.NoSquare, 0, 1)
	assert.Error(t, err)

	_, err = board.NewPosition(zt, []board.Placement{
		{Square: board.E1, Piece: board.NewPiece(board.White, board.King)},
		{Square: board.E8, Piece: board.NewPiece(board.Black, board.King)},
		{Square: board.D8, Piece: board.NewPiece(board.Black, board.King)},
	}, board.White, board.ZeroCastling, board.NoSquare, 0, 1)
	assert.Error(t, err)
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	zt := board.NewZobristTable(42)
	p, err := fen.Decode(zt, fen.Initial)
	require.NoError(t, err)

	walk(t, zt, p, 3)
}

// walk descends depth plies into the legal move tree, checking at every
// node that the incrementally maintained Zobrist hash matches a
// from-scratch recomputation, and that unmaking every move it tries
// restores the exact FEN it started from.
func walk(t *testing.T, zt *board.ZobristTable, p *board.Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	before := fen.Encode(p)
	assert.Equal(t, zt.FullHash(p), p.Hash(), "hash mismatch at %v", before)

	for _, m := range board.LegalMoves(p) {
		u := p.MakeMove(m)
		assert.Equal(t, zt.FullHash(p), p.Hash(), "hash mismatch after %v from %v", m, before)

		walk(t, zt, p, depth-1)

		p.UnmakeMove(u)
		assert.Equal(t, before, fen.Encode(p), "unmake did not restore position after %v", m)
		assert.Equal(t, zt.FullHash(p), p.Hash(), "hash mismatch after unmake of %v", m)
	}
}

func TestCastlingRightsLostOnKingAndRookMoves(t *testing.T) {
	zt := board.NewZobristTable(7)
	p, err := fen.Decode(zt, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	u := p.MakeMove(board.Move{Type: board.Quiet, From: board.E1, To: board.E2, Piece: board.King})
	assert.False(t, p.Castling().IsAllowed(board.WhiteKingSide))
	assert.False(t, p.Castling().IsAllowed(board.WhiteQueenSide))
	assert.True(t, p.Castling().IsAllowed(board.BlackKingSide))
	assert.True(t, p.Castling().IsAllowed(board.BlackQueenSide))
	p.UnmakeMove(u)
	assert.True(t, p.Castling().IsAllowed(board.WhiteKingSide))

	u = p.MakeMove(board.Move{Type: board.Quiet, From: board.A1, To: board.B1, Piece: board.Rook})
	assert.False(t, p.Castling().IsAllowed(board.WhiteQueenSide))
	assert.True(t, p.Castling().IsAllowed(board.WhiteKingSide))
	p.UnmakeMove(u)
}

func TestEnPassantCapture(t *testing.T) {
	zt := board.NewZobristTable(9)
	p, err := fen.Decode(zt, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	found := false
	for _, m := range board.LegalMoves(p) {
		if m.Type == board.EnPassant {
			found = true
			u := p.MakeMove(m)
			assert.True(t, p.PieceAt(m.EnPassantCaptureSquare()).IsEmpty())
			p.UnmakeMove(u)
		}
	}
	assert.True(t, found, "expected an en passant capture to be legal")
}

func TestCastlingMovesRookAtomically(t *testing.T) {
	zt := board.NewZobristTable(3)
	p, err := fen.Decode(zt, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	before := fen.Encode(p)
	u := p.MakeMove(board.Move{Type: board.KingSideCastle, From: board.E1, To: board.G1, Piece: board.King})
	assert.Equal(t, board.NewPiece(board.White, board.King), p.PieceAt(board.G1))
	assert.Equal(t, board.NewPiece(board.White, board.Rook), p.PieceAt(board.F1))
	assert.True(t, p.PieceAt(board.E1).IsEmpty())
	assert.True(t, p.PieceAt(board.H1).IsEmpty())

	p.UnmakeMove(u)
	assert.Equal(t, before, fen.Encode(p))
}
