package board_test

import (
	"testing"

	"github.com/b88/zugzwang/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareValidity(t *testing.T) {
	assert.True(t, board.H1.IsValid())
	assert.True(t, board.D4.IsValid())
	assert.True(t, board.A8.IsValid())
	assert.False(t, board.NoSquare.IsValid())
	assert.False(t, board.Square(0x08).IsValid()) // off-board 0x88 hole
}

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, 0, board.A1.File())
	assert.Equal(t, 0, board.A1.Rank())
	assert.Equal(t, 7, board.H1.File())
	assert.Equal(t, 7, board.A8.Rank())
	assert.Equal(t, board.C2, board.NewSquare(2, 1))
	assert.Equal(t, board.G5, board.NewSquare(6, 4))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "h1", board.H1.String())
	assert.Equal(t, "a1", board.A1.String())
	assert.Equal(t, "e4", board.NewSquare(4, 3).String())
	assert.Equal(t, "-", board.NoSquare.String())
}

func TestParseSquare(t *testing.T) {
	sq, ok := board.ParseSquare('e', '4')
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 3), sq)

	_, ok = board.ParseSquare('i', '4')
	assert.False(t, ok)
	_, ok = board.ParseSquare('e', '9')
	assert.False(t, ok)
}

func TestParseSquareStr(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(4, 3), sq)

	_, err = board.ParseSquareStr("z9")
	assert.Error(t, err)
	_, err = board.ParseSquareStr("e")
	assert.Error(t, err)
}
