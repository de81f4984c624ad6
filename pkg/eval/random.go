package eval

import (
	"context"
	"math/rand"

	"github.com/b88/zugzwang/pkg/board"
)

// Random is a randomized noise generator. It adds a small amount of randomness
// to evaluations so that repeated self-play or testing does not always pick
// the same move among ties. The limit specifies how many centipawns to
// add/remove, in the range [-limit/2; limit/2]. A zero limit always returns
// zero, which is the default.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, b *board.Board) Score {
	if n.limit <= 0 {
		return ZeroScore
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
