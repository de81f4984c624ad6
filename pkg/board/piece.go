package board

import "fmt"

// Kind represents a chess piece kind with no color. 3 bits.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const NumKinds = King + 1

func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return "-"
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a single piece-array entry: 0 is empty, 1..6 are the white kinds
// (pawn, knight, bishop, rook, queen, king in that order) and 7..12 are the
// same kinds for black. A value greater than 6 is black; its kind is the
// value or the value minus 6.
type Piece uint8

const Empty Piece = 0

// NewPiece combines a color and kind into a piece-array entry.
func NewPiece(c Color, k Kind) Piece {
	if c == Black {
		return Piece(k) + Piece(King)
	}
	return Piece(k)
}

func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Kind returns the piece's kind, ignoring color. Meaningless if IsEmpty.
func (p Piece) Kind() Kind {
	if p > Piece(King) {
		return Kind(p) - King
	}
	return Kind(p)
}

// Color returns the piece's color. Meaningless if IsEmpty.
func (p Piece) Color() Color {
	if p > Piece(King) {
		return Black
	}
	return White
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	k := p.Kind()
	if p.Color() == White {
		switch k {
		case Pawn:
			return "P"
		case Knight:
			return "N"
		case Bishop:
			return "B"
		case Rook:
			return "R"
		case Queen:
			return "Q"
		case King:
			return "K"
		}
	}
	return k.String()
}

func (p Piece) GoString() string {
	return fmt.Sprintf("Piece(%v)", p.String())
}
