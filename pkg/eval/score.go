package eval

import (
	"fmt"
	"math"

	"github.com/b88/zugzwang/pkg/board"
)

// Score is a signed position score in centipawns, always stated from
// White's perspective in the Evaluator, and from the side-to-move's
// perspective everywhere search negates it across plies (Section 4.5,
// Section 4.7). Mate scores are encoded close to +/-MateScore and
// adjusted by one unit per ply via IncrementMateDistance so that
// shorter mates are preferred over longer ones.
type Score int32

const (
	// InvalidScore marks the absence of a usable score, e.g. a TT miss.
	InvalidScore Score = math.MinInt32

	ZeroScore Score = 0

	// MateScore is the magnitude assigned to an immediate checkmate. Scores
	// within 1000 of +/-MateScore are mate scores at some ply distance.
	MateScore Score = 1000000

	// InfScore/NegInfScore bound the full search window; never stored in a TT.
	InfScore    Score = MateScore + 1000
	NegInfScore Score = -InfScore
)

func (s Score) String() string {
	if s.IsInvalid() {
		return "?"
	}
	switch {
	case s > MateScore-1000:
		return fmt.Sprintf("+M%v", (MateScore-s+1)/2)
	case s < -MateScore+1000:
		return fmt.Sprintf("-M%v", (MateScore+s+1)/2)
	default:
		return fmt.Sprintf("%+.2f", float64(s)/100)
	}
}

// IsInvalid returns true iff the score carries no information.
func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// Negate flips the score to the other side's perspective. Invalid is a fixed point.
func (s Score) Negate() Score {
	if s.IsInvalid() {
		return s
	}
	return -s
}

// Less reports whether s is strictly worse than o for the side s is stated for.
func (s Score) Less(o Score) bool {
	return s < o
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}

// HeuristicScore wraps a raw centipawn value from the Evaluator into a Score.
func HeuristicScore(centipawns int) Score {
	return Score(centipawns)
}

// Crop clamps a score into the representable [-MateScore;MateScore] range.
func Crop(s Score) Score {
	switch {
	case s > MateScore:
		return MateScore
	case s < -MateScore:
		return -MateScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a.IsInvalid() {
		return b
	}
	if b.IsInvalid() {
		return a
	}
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a.IsInvalid() {
		return b
	}
	if b.IsInvalid() {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// IsMate reports whether s represents a forced mate at some ply distance.
func IsMate(s Score) bool {
	return !s.IsInvalid() && (s > MateScore-1000 || s < -MateScore+1000)
}

// MateDistance returns the number of plies to the forced mate s represents,
// if any. Used by iterative deepening to stop early once a search-confirmed
// mate is shallower than or equal to the remaining depth.
func (s Score) MateDistance() (int, bool) {
	switch {
	case !IsMate(s):
		return 0, false
	case s > 0:
		return int(MateScore - s), true
	default:
		return int(MateScore + s), true
	}
}

// IncrementMateDistance adjusts a mate score by one ply on its way up the
// recursion, so a mate found deeper in the tree scores worse than the same
// mate found shallower. Non-mate scores pass through unchanged.
func IncrementMateDistance(s Score) Score {
	switch {
	case s.IsInvalid():
		return s
	case s > MateScore-1000:
		return s - 1
	case s < -MateScore+1000:
		return s + 1
	default:
		return s
	}
}
