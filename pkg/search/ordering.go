package search

import (
	"github.com/b88/zugzwang/pkg/board"
	"github.com/b88/zugzwang/pkg/eval"
)

// Move ordering bonuses, additive (Section 4.7.2).
const (
	ttHintBonus          = 1000000
	rootPVBonus          = 900000
	captureBase          = 600000
	losingCapturePenalty = 400000
	promotionBonus       = 300000
	killerBonus          = 200000
	historyCap           = 100000
)

// Killers holds up to two non-capture killer moves per ply. On a new killer,
// the previous slot 0 shifts to slot 1 unless the new move already occupies
// slot 0 (Section 4.7.2).
type Killers struct {
	slots [][2]board.Move
}

func NewKillers(maxPly int) *Killers {
	return &Killers{slots: make([][2]board.Move, maxPly+1)}
}

func (k *Killers) Add(ply int, m board.Move) {
	if ply < 0 || ply >= len(k.slots) {
		return
	}
	if k.slots[ply][0].Equals(m) {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

// Matches returns how many of the two killer slots at ply equal m (0, 1 or 2).
func (k *Killers) Matches(ply int, m board.Move) int {
	if ply < 0 || ply >= len(k.slots) {
		return 0
	}
	n := 0
	if k.slots[ply][0].Equals(m) {
		n++
	}
	if k.slots[ply][1].Equals(m) {
		n++
	}
	return n
}

// History is a per-(from,to) counter incremented by depth^2 on beta cutoffs
// of non-capture moves (Section 4.7.2). Indexed directly by Square (0x88),
// so the table is sparse but fixed-size and allocation-free after creation.
type History struct {
	table [128][128]int
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Add(m board.Move, depth int) {
	h.table[m.From][m.To] += depth * depth
}

func (h *History) Get(m board.Move) int {
	return h.table[m.From][m.To]
}

// OrderingScore implements the Section 4.7.2 additive move-ordering formula.
// ttHint and rootHint are the zero Move when not applicable (the zero Move
// Equals check only matches another zero move, which is never a legal move).
func OrderingScore(p *board.Position, m, ttHint, rootHint board.Move, ply int, killers *Killers, history *History) board.MovePriority {
	var score int

	if !ttHint.IsZero() && ttHint.Equals(m) {
		score += ttHintBonus
	}
	if !rootHint.IsZero() && rootHint.Equals(m) {
		score += rootPVBonus
	}

	if m.Type.IsCapture() {
		victim := eval.NominalValue(m.Capture)
		if m.Type == board.EnPassant {
			victim = eval.NominalValue(board.Pawn)
		}
		attacker := eval.NominalValue(m.Piece)
		score += captureBase + victim*10 - attacker
		if board.SEE(p, m) < 0 {
			score -= losingCapturePenalty
		}
	}

	if m.Type.IsPromotion() {
		score += promotionBonus
	}

	score += killerBonus * killers.Matches(ply, m)

	if !m.Type.IsCapture() {
		h := history.Get(m)
		if h > historyCap {
			h = historyCap
		}
		score += h
	}

	return board.MovePriority(score)
}

// OrderingPriority binds a position and ordering state into a MovePriorityFn
// for a single node at the given ply.
func OrderingPriority(p *board.Position, ttHint, rootHint board.Move, ply int, killers *Killers, history *History) board.MovePriorityFn {
	return func(m board.Move) board.MovePriority {
		return OrderingScore(p, m, ttHint, rootHint, ply, killers, history)
	}
}

// CaptureOrderingScore orders captures and promotions by MVV-LVA + SEE, the
// restricted ordering quiescence search uses (Section 4.7.3): no TT/root/
// killer/history bonuses apply since quiescence never consults them.
func CaptureOrderingScore(p *board.Position, m board.Move) board.MovePriority {
	var score int
	if m.Type.IsCapture() {
		victim := eval.NominalValue(m.Capture)
		if m.Type == board.EnPassant {
			victim = eval.NominalValue(board.Pawn)
		}
		attacker := eval.NominalValue(m.Piece)
		score += captureBase + victim*10 - attacker
		if board.SEE(p, m) < 0 {
			score -= losingCapturePenalty
		}
	}
	if m.Type.IsPromotion() {
		score += promotionBonus
	}
	return board.MovePriority(score)
}

// CaptureOrderingPriority binds a position into a MovePriorityFn for
// quiescence's capture/promotion-only move list.
func CaptureOrderingPriority(p *board.Position) board.MovePriorityFn {
	return func(m board.Move) board.MovePriority {
		return CaptureOrderingScore(p, m)
	}
}
