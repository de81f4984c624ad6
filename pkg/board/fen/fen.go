// Package fen contains utilities for reading and writing positions in FEN
// notation. Parsing, generating and printing FEN text is an external
// collaborator of the search-and-evaluation core, not part of it, but is
// carried here as the ambient boundary the rest of the module is tested
// and driven through.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/b88/zugzwang/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode returns a new position from a FEN description, hashed against the
// given Zobrist table (callers should share one table across a whole game
// or search so that transposition table keys remain comparable).
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(zt *board.ZobristTable, in string) (*board.Position, error) {
	parts := strings.Split(strings.TrimSpace(in), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: %q", in)
	}

	// (1) Piece placement (from white's perspective). Each rank is described,
	// starting with rank 8 and ending with rank 1; within each rank, the
	// contents of each square are described from file a through file h.

	var placements []board.Placement

	rank, file := 7, 0
	for _, r := range parts[0] {
		switch {
		case r == '/':
			if file != 8 {
				return nil, fmt.Errorf("invalid rank length in FEN: %q", in)
			}
			rank--
			file = 0

		case unicode.IsDigit(r):
			file += int(r - '0')

		case unicode.IsLetter(r):
			color, kind, ok := parsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, in)
			}
			if rank < 0 || file > 7 {
				return nil, fmt.Errorf("invalid piece placement in FEN: %q", in)
			}
			placements = append(placements, board.Placement{
				Square: board.NewSquare(file, rank),
				Piece:  board.NewPiece(color, kind),
			})
			file++

		default:
			return nil, fmt.Errorf("invalid character in FEN: %q", in)
		}
	}
	if rank != 0 || file != 8 {
		return nil, fmt.Errorf("invalid number of squares in FEN: %q", in)
	}

	// (2) Active color. "w" means white moves next, "b" means black.

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", in)
	}

	// (3) Castling availability. If neither side can castle, this is
	// "-". Otherwise, this has one or more letters: "K" (White can castle
	// kingside), "Q" (White can castle queenside), "k" (Black can castle
	// kingside), and/or "q" (Black can castle queenside).

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: %q", in)
	}

	// (4) En passant target square in algebraic notation. If there's no en
	// passant target square, this is "-". If a pawn has just made a
	// 2-square move, this is the position "behind" the pawn.

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: %q", in)
		}
		ep = sq
	}

	// (5) Halfmove clock: the number of halfmoves since the last pawn
	// advance or capture, for the fifty-move rule.

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", in)
	}

	// (6) Fullmove number: starts at 1, incremented after Black's move.

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 0 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", in)
	}

	return board.NewPosition(zt, placements, turn, castling, ep, halfmove, fullmove)
}

// Encode encodes the position in FEN notation.
func Encode(p *board.Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		blanks := 0
		for file := 0; file < 8; file++ {
			pc := p.PieceAt(board.NewSquare(file, rank))
			if pc.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(pc.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if rank > 0 {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), p.Turn(), p.Castling(), ep, p.HalfmoveClock(), p.FullMoveNumber())
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling

	if str == "-" {
		return ret, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSide
		case 'Q':
			ret |= board.WhiteQueenSide
		case 'k':
			ret |= board.BlackKingSide
		case 'q':
			ret |= board.BlackQueenSide
		default:
			return 0, false
		}
	}
	return ret, true
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func parsePiece(r rune) (board.Color, board.Kind, bool) {
	k, ok := board.ParseKind(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, k, true
	}
	return board.Black, k, true
}
