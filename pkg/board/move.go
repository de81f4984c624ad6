package board

import "fmt"

// MoveType classifies a move for make/unmake and Zobrist update purposes.
type MoveType uint8

const (
	Quiet MoveType = iota
	DoublePush       // pawn two-square push; sets the en passant target
	EnPassant        // pawn capture onto the en passant target
	KingSideCastle
	QueenSideCastle
	Capture
	Promotion
	CapturePromotion
)

func (t MoveType) IsCapture() bool {
	return t == Capture || t == EnPassant || t == CapturePromotion
}

func (t MoveType) IsCastle() bool {
	return t == KingSideCastle || t == QueenSideCastle
}

func (t MoveType) IsPromotion() bool {
	return t == Promotion || t == CapturePromotion
}

// Move represents a (not necessarily legal, but generator-produced pseudo
// legal) move along with the metadata make/unmake needs. Corresponds to
// Section 3's compact move encoding (from, to, promotion kind, capture/
// en-passant/castle/double-push flags) expressed as Go struct fields rather
// than a packed integer.
type Move struct {
	Type      MoveType
	From, To  Square
	Piece     Kind // moving piece kind
	Promotion Kind // promoted-to kind, if Type.IsPromotion()
	Capture   Kind // captured piece kind, if Type.IsCapture()
}

// ZeroMove is the sentinel "no move", used where the search or engine found
// no legal move to play.
var ZeroMove = Move{}

func (m Move) IsZero() bool {
	return m == ZeroMove
}

// Equals compares moves by from/to/promotion only, as required to match an
// externally supplied coordinate move against the legal move list.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// EnPassantCaptureSquare returns the square of the pawn captured en passant,
// which is not To (the destination is the square behind that pawn).
func (m Move) EnPassantCaptureSquare() Square {
	if m.To.Rank() > m.From.Rank() {
		return m.To - 16
	}
	return m.To + 16
}

// ParseMove parses a move in pure coordinate notation, e.g. "e2e4" or "e7e8q".
// The parsed move carries only From/To/Promotion; the generator-contextual
// fields (Type, Piece, Capture) are filled in by matching against the legal
// move list, not by this parser (Section 7: an externally supplied move is
// validated at the interface boundary against the legal set).
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, ok := ParseSquare(runes[0], runes[1])
	if !ok {
		return Move{}, fmt.Errorf("invalid from square in move: %q", str)
	}
	to, ok := ParseSquare(runes[2], runes[3])
	if !ok {
		return Move{}, fmt.Errorf("invalid to square in move: %q", str)
	}

	m := Move{From: from, To: to}
	if len(runes) == 5 {
		promo, ok := ParseKind(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion in move: %q", str)
		}
		m.Promotion = promo
	}
	return m, nil
}

func (m Move) String() string {
	if m.Promotion != NoKind {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// PrintMoves renders a sequence of moves as a space-separated coordinate
// move list (Section 6: principal variation rendering).
func PrintMoves(moves []Move) string {
	var sb []byte
	for i, m := range moves {
		if i > 0 {
			sb = append(sb, ' ')
		}
		sb = append(sb, []byte(m.String())...)
	}
	return string(sb)
}
