package board_test

import (
	"testing"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Depths are kept modest here for a fast unit test run; cmd/perft exercises
// the full depths from Section 8 (up to several million nodes) manually.
func TestPerft(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		depth    int
		expected int64
	}{
		{"startpos d1", fen.Initial, 1, 20},
		{"startpos d2", fen.Initial, 2, 400},
		{"startpos d3", fen.Initial, 3, 8902},
		{"startpos d4", fen.Initial, 4, 197281},
		{"kiwipete d1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"kiwipete d3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"position 3 d1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"position 3 d2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"position 3 d3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zt := board.NewZobristTable(1)
			p, err := fen.Decode(zt, tt.fen)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, board.Perft(p, tt.depth))
		})
	}
}

func TestCheckmateDetection(t *testing.T) {
	zt := board.NewZobristTable(1)
	// Fool's mate.
	p, err := fen.Decode(zt, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	assert.True(t, p.InCheck(board.White))
	assert.True(t, board.IsCheckmate(p))
	assert.False(t, board.HasLegalMove(p))
}

func TestStalemateDetection(t *testing.T) {
	zt := board.NewZobristTable(1)
	p, err := fen.Decode(zt, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)

	assert.False(t, p.InCheck(board.Black))
	assert.True(t, board.IsStalemate(p))
}

func TestPinnedPieceCannotMoveOffLine(t *testing.T) {
	zt := board.NewZobristTable(1)
	// White king on e1, white rook pinned on e4 by a black rook on e8.
	p, err := fen.Decode(zt, "4r1k1/8/8/8/4R3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	for _, m := range board.LegalMoves(p) {
		if m.From == board.E4 {
			assert.Equal(t, 4, m.To.File(), "pinned rook must stay on the e-file, got %v", m)
		}
	}
}

func TestDiscoveredCheckEnPassantIsIllegal(t *testing.T) {
	zt := board.NewZobristTable(1)
	// Classic rank pin: capturing en passant (e4xd3) removes both the black
	// pawn on e4 and the white pawn on d4 from the 4th rank, exposing Black's
	// king on a4 to the white rook on h4.
	p, err := fen.Decode(zt, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	require.NoError(t, err)

	for _, m := range board.LegalMoves(p) {
		assert.NotEqual(t, board.EnPassant, m.Type, "en passant must be illegal: exposes discovered check along rank 4")
	}
}

func TestDoubleCheckOnlyAllowsKingMoves(t *testing.T) {
	zt := board.NewZobristTable(1)
	// White king on a1 in check from both a knight on c2 and a bishop on c3
	// simultaneously (the b2 diagonal square between bishop and king is
	// empty). The black king sits out of the way on h8.
	p, err := fen.Decode(zt, "7k/8/8/8/8/2b5/2n5/K7 w - - 0 1")
	require.NoError(t, err)

	moves := board.LegalMoves(p)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, board.King, m.Piece, "double check must restrict moves to the king, got %v", m)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	zt := board.NewZobristTable(1)

	p, err := fen.Decode(zt, "8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, board.InsufficientMaterial(p))

	p, err = fen.Decode(zt, "8/8/4k3/8/8/4KN2/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, board.InsufficientMaterial(p))

	p, err = fen.Decode(zt, "8/8/4k3/8/8/4KP2/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, board.InsufficientMaterial(p))
}
