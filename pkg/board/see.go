package board

import "math"

// pieceValue returns the material value, in centipawns, used by static
// exchange evaluation (Section 4.4).
func pieceValue(k Kind) int {
	switch k {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}

// occupancyOverlay is a cheap copy-on-write view of a position's occupancy,
// used to simulate an exchange without mutating the real board or paying
// for a full make/unmake per ply.
type occupancyOverlay struct {
	p       *Position
	removed map[Square]bool
}

func newOccupancyOverlay(p *Position) *occupancyOverlay {
	return &occupancyOverlay{p: p, removed: map[Square]bool{}}
}

func (o *occupancyOverlay) clear(sq Square) {
	o.removed[sq] = true
}

func (o *occupancyOverlay) isOccupied(sq Square) bool {
	if o.removed[sq] {
		return false
	}
	return !o.p.board[sq].IsEmpty()
}

func (o *occupancyOverlay) pieceAt(sq Square) Piece {
	if o.removed[sq] {
		return Empty
	}
	return o.p.board[sq]
}

// leastValuableAttacker finds side's cheapest attacker of target under the
// overlay's current occupancy, considering pawns, knights, the sliders (via
// the position's attack tables re-evaluated against the overlay) and the
// king last.
func leastValuableAttacker(p *Position, occ *occupancyOverlay, side Color, target Square) (Square, Kind, bool) {
	best := NoSquare
	var bestKind Kind
	bestValue := math.MaxInt32

	consider := func(sq Square, k Kind) {
		if !sq.IsValid() || !occ.isOccupied(sq) {
			return
		}
		pc := occ.pieceAt(sq)
		if pc.Color() != side || pc.Kind() != k {
			return
		}
		if v := pieceValue(k); v < bestValue {
			bestValue = v
			best = sq
			bestKind = k
		}
	}

	var pawnDeltas [2]int
	if side == White {
		pawnDeltas = [2]int{deltaSE, deltaSW}
	} else {
		pawnDeltas = [2]int{deltaNE, deltaNW}
	}
	for _, d := range pawnDeltas {
		consider(target+Square(d), Pawn)
	}
	for _, d := range knightDeltas {
		consider(target+Square(d), Knight)
	}
	for _, sq := range p.at.bishop.attacksFrom(target, occ.isOccupied) {
		consider(sq, Bishop)
		consider(sq, Queen)
	}
	for _, sq := range p.at.rook.attacksFrom(target, occ.isOccupied) {
		consider(sq, Rook)
		consider(sq, Queen)
	}
	for _, d := range kingDeltas {
		consider(target+Square(d), King)
	}

	if best == NoSquare {
		return NoSquare, NoKind, false
	}
	return best, bestKind, true
}

// SEE evaluates the static exchange on m's destination square: the net
// material gain for the side making m, assuming both sides play the
// locally optimal sequence of recaptures with least-valuable-attacker-first
// ordering (Section 4.4). Returns 0 for non-captures.
//
// The exchange is simulated over a gain list, one entry per ply, then
// folded back to front: each side will decline to recapture if doing so
// makes their net result worse than simply stopping, so
// gain[i-1] = min(gain[i-1], -gain[i]).
func SEE(p *Position, m Move) int {
	if !m.Type.IsCapture() {
		return 0
	}

	var captured Kind
	target := m.To
	if m.Type == EnPassant {
		captured = Pawn
	} else {
		captured = p.board[m.To].Kind()
	}

	occ := newOccupancyOverlay(p)
	occ.clear(m.From)
	if m.Type == EnPassant {
		occ.clear(m.EnPassantCaptureSquare())
	}

	gain := []int{pieceValue(captured)}
	attacker := m.Piece
	side := p.turn.Opponent()

	for {
		sq, kind, ok := leastValuableAttacker(p, occ, side, target)
		if !ok {
			break
		}
		gain = append(gain, pieceValue(attacker)-gain[len(gain)-1])
		occ.clear(sq)
		attacker = kind
		side = side.Opponent()
	}

	for i := len(gain) - 1; i > 0; i-- {
		if v := -gain[i]; v < gain[i-1] {
			gain[i-1] = v
		}
	}
	return gain[0]
}
