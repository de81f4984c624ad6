package board

// AttackTables precomputes sliding (bishop/rook) attack sets per square,
// indexed by a dense encoding of the "relevant occupancy" — the squares
// along each ray that can actually block the slide, excluding the square
// itself and the final square of each ray (whose occupancy never changes
// the result, since the ray always stops there regardless). Lookup
// compresses the live board occupancy at just those squares into a small
// integer index; the result is identical to a naive ray scan; its only
// purpose is avoiding the ray scan at search time (Section 4.2).
type AttackTables struct {
	rook, bishop *slidingTable
}

// NewAttackTables builds the rook and bishop sliding attack tables. Safe and
// cheap to share across Position instances: the tables are read-only once
// built.
func NewAttackTables() *AttackTables {
	return &AttackTables{
		rook:   buildSlidingTable(rookDirs[:]),
		bishop: buildSlidingTable(bishopDirs[:]),
	}
}

// defaultAttackTables is shared by all positions that don't supply their own
// (the tables are pure functions of square geometry, not of game state).
var defaultAttackTables = NewAttackTables()

type slidingTable struct {
	mask    [128][]Square
	attacks [128][][]Square
}

func buildSlidingTable(dirs []int) *slidingTable {
	t := &slidingTable{}

	for sq := Square(0); sq < 128; sq++ {
		if !sq.IsValid() {
			continue
		}

		mask := relevantOccupancyMask(sq, dirs)
		t.mask[sq] = mask

		n := len(mask)
		entries := make([][]Square, 1<<uint(n))

		occupied := make(map[Square]bool, n)
		for idx := range entries {
			for i, s := range mask {
				occupied[s] = idx&(1<<uint(i)) != 0
			}
			entries[idx] = rayScan(sq, dirs, func(s Square) bool { return occupied[s] })
		}
		t.attacks[sq] = entries
	}
	return t
}

// relevantOccupancyMask returns, for each of the given ray directions, every
// square strictly between the origin and the board edge except the final
// (edge) square on that ray.
func relevantOccupancyMask(sq Square, dirs []int) []Square {
	var mask []Square
	for _, d := range dirs {
		next := sq + Square(d)
		for next.IsValid() {
			after := next + Square(d)
			if after.IsValid() {
				mask = append(mask, next)
			}
			next = after
		}
	}
	return mask
}

// rayScan walks each direction from sq, stopping (inclusive) at the first
// square for which occupied returns true, or at the board edge.
func rayScan(sq Square, dirs []int, occupied func(Square) bool) []Square {
	var ret []Square
	for _, d := range dirs {
		next := sq + Square(d)
		for next.IsValid() {
			ret = append(ret, next)
			if occupied(next) {
				break
			}
			next += Square(d)
		}
	}
	return ret
}

// attacksFrom looks up the precomputed attack set given a live occupancy
// predicate over the table's relevant squares for sq.
func (t *slidingTable) attacksFrom(sq Square, occupied func(Square) bool) []Square {
	mask := t.mask[sq]
	idx := 0
	for i, s := range mask {
		if occupied(s) {
			idx |= 1 << uint(i)
		}
	}
	return t.attacks[sq][idx]
}

// RookAttacks returns the squares a rook on sq attacks given the position's
// live occupancy.
func (at *AttackTables) RookAttacks(p *Position, sq Square) []Square {
	return at.rook.attacksFrom(sq, p.isOccupied)
}

// BishopAttacks returns the squares a bishop on sq attacks given the
// position's live occupancy.
func (at *AttackTables) BishopAttacks(p *Position, sq Square) []Square {
	return at.bishop.attacksFrom(sq, p.isOccupied)
}

// QueenAttacks unions the rook and bishop attack sets.
func (at *AttackTables) QueenAttacks(p *Position, sq Square) []Square {
	return append(append([]Square{}, at.RookAttacks(p, sq)...), at.BishopAttacks(p, sq)...)
}

func (p *Position) isOccupied(sq Square) bool {
	return !p.board[sq].IsEmpty()
}

func contains(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
