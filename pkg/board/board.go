package board

import "fmt"

const (
	repetition3Limit = 3
	repetition5Limit = 5
	fiftyMoveLimit   = 100 // halfmove clock, per Section 7's fifty-move rule
)

// Board wraps a mutable Position with the game-level state a single
// position can't carry on its own: a strictly reversible history stack of
// Undo records (Section 5, 9: "a balanced stack of reversible mutations",
// never heap-allocated per node) and the repetition table needed to call
// draws by threefold/fivefold repetition. Not thread-safe.
type Board struct {
	pos         *Position
	history     []Undo
	moves       []Move
	repetitions map[ZobristHash]int
	result      Result
}

// NewBoard wraps an existing position into a game with no history.
func NewBoard(pos *Position) *Board {
	return &Board{
		pos:         pos,
		repetitions: map[ZobristHash]int{pos.Hash(): 1},
	}
}

// Fork branches off an independent copy of the board. Because Position is a
// small value type (a 128-entry array plus scalars), forking is a cheap
// struct copy rather than the node-sharing the teacher's immutable-Position
// design needed.
func (b *Board) Fork() *Board {
	posCopy := *b.pos

	rep := make(map[ZobristHash]int, len(b.repetitions))
	for k, v := range b.repetitions {
		rep[k] = v
	}

	return &Board{
		pos:         &posCopy,
		history:     append([]Undo{}, b.history...),
		moves:       append([]Move{}, b.moves...),
		repetitions: rep,
		result:      b.result,
	}
}

func (b *Board) Position() *Position { return b.pos }
func (b *Board) Turn() Color         { return b.pos.Turn() }
func (b *Board) Result() Result      { return b.result }
func (b *Board) Hash() ZobristHash   { return b.pos.Hash() }

// Ply returns the number of halfmoves played on this board so far.
func (b *Board) Ply() int { return len(b.moves) }

// Make plays m without re-validating it against the legal move list; the
// caller (search, always iterating board.LegalMoves or
// board.CapturesAndPromotions) is trusted to supply a legal move. External
// callers across a trust boundary (UCI, console input) must use PushMove
// instead.
func (b *Board) Make(m Move) Undo {
	u := b.pos.MakeMove(m)
	b.history = append(b.history, u)
	b.moves = append(b.moves, m)
	b.repetitions[b.pos.Hash()]++
	b.updateResult()
	return u
}

// Unmake reverses the most recent Make.
func (b *Board) Unmake() {
	u := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.moves = b.moves[:len(b.moves)-1]
	b.repetitions[b.pos.Hash()]--
	b.pos.UnmakeMove(u)
	b.result = Result{}
}

// PushMove attempts to play m, matched against the legal move list so that
// an externally supplied coordinate move (e.g. from UCI) is validated at
// the boundary rather than trusted (Section 7). Returns false if m is not
// legal or the game already has a result.
func (b *Board) PushMove(m Move) bool {
	if b.result.Outcome != Undecided {
		return false
	}

	var full Move
	matched := false
	for _, lm := range LegalMoves(b.pos) {
		if lm.Equals(m) {
			full = lm
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	u := b.pos.MakeMove(full)
	b.history = append(b.history, u)
	b.moves = append(b.moves, full)
	b.repetitions[b.pos.Hash()]++

	b.updateResult()
	return true
}

// PopMove reverses the last move, if any, and clears any result (a position
// with a legal predecessor move is by definition not terminal).
func (b *Board) PopMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}

	u := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	m := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]

	b.repetitions[b.pos.Hash()]--
	b.pos.UnmakeMove(u)
	b.result = Result{}
	return m, true
}

func (b *Board) updateResult() {
	if !HasLegalMove(b.pos) {
		if b.pos.InCheck(b.pos.Turn()) {
			b.result = Result{Outcome: Loss(b.pos.Turn()), Reason: Checkmate}
		} else {
			b.result = Result{Outcome: Draw, Reason: Stalemate}
		}
		return
	}

	if count := b.repetitions[b.pos.Hash()]; count >= repetition3Limit {
		if count >= repetition5Limit {
			b.result = Result{Outcome: Draw, Reason: Repetition5}
		} else {
			b.result = Result{Outcome: Draw, Reason: Repetition3}
		}
		return
	}

	if b.pos.HalfmoveClock() >= fiftyMoveLimit {
		b.result = Result{Outcome: Draw, Reason: FiftyMoveRule}
		return
	}

	if InsufficientMaterial(b.pos) {
		b.result = Result{Outcome: Draw, Reason: InsufficientMaterialReason}
	}
}

// AdjudicateNoLegalMoves adjudicates the position assuming no legal move
// exists, for callers (e.g. UCI "go" with an empty search result) that have
// independently established that fact.
func (b *Board) AdjudicateNoLegalMoves() Result {
	result := Result{Outcome: Draw, Reason: Stalemate}
	if b.pos.InCheck(b.pos.Turn()) {
		result = Result{Outcome: Loss(b.pos.Turn()), Reason: Checkmate}
	}
	b.Adjudicate(result)
	return result
}

// Adjudicate sets the game result directly.
func (b *Board) Adjudicate(result Result) {
	b.result = result
}

// LastMove returns the most recently played move, if any.
func (b *Board) LastMove() (Move, bool) {
	if n := len(b.moves); n > 0 {
		return b.moves[n-1], true
	}
	return Move{}, false
}

// HasCastled returns true iff c has castled at any point in this board's
// history.
func (b *Board) HasCastled(c Color) bool {
	for _, u := range b.history {
		if u.PrevTurn == c && u.Move.Type.IsCastle() {
			return true
		}
	}
	return false
}

func (b *Board) String() string {
	return fmt.Sprintf("board{pos=%v, hash=%x (seen %v), halfmove=%v, result=%v}",
		b.pos, b.pos.Hash(), b.repetitions[b.pos.Hash()], b.pos.HalfmoveClock(), b.result)
}
