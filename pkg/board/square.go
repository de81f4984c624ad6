// Package board contains the 0x88 chess board representation, legal move
// generation and incremental make/unmake.
package board

import "fmt"

// Square is a 0x88 board index: bits 0-2 hold the file (0=a..7=h), bits 4-6
// hold the rank (0=rank1..7=rank8), and bits 3 and 7 flag an off-board
// index. A square s is on-board iff (s & 0x88) == 0. This lets
// off-board tests for knight/king/sliding deltas collapse to a single bit
// test instead of range checks on file and rank.
type Square int

const offBoard = 0x88

// NoSquare is the sentinel for "no square": EnPassant() when unset, undo
// records with no prior en passant target, and captures without a capture
// square.
const NoSquare Square = -1

func newSquare(file, rank int) Square {
	return Square(rank<<4 | file)
}

// NewSquare constructs a square from a 0-based file (0=a..7=h) and rank
// (0=rank1..7=rank8), for callers outside the package (e.g. FEN encoding).
func NewSquare(file, rank int) Square {
	return newSquare(file, rank)
}

// IsValid returns true iff the square is on the 8x8 board.
func (s Square) IsValid() bool {
	return s >= 0 && s&offBoard == 0
}

// File returns the file, 0=a..7=h.
func (s Square) File() int {
	return int(s) & 0x7
}

// Rank returns the rank, 0=rank1..7=rank8.
func (s Square) Rank() int {
	return (int(s) >> 4) & 0x7
}

// ParseSquare parses a square from file/rank runes, e.g. ('e','4').
func ParseSquare(file, rank rune) (Square, bool) {
	if file < 'a' || file > 'h' {
		return 0, false
	}
	if rank < '1' || rank > '8' {
		return 0, false
	}
	return newSquare(int(file-'a'), int(rank-'1')), true
}

// ParseSquareStr parses a square from its two-character algebraic notation.
func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %q", str)
	}
	sq, ok := ParseSquare(runes[0], runes[1])
	if !ok {
		return 0, fmt.Errorf("invalid square: %q", str)
	}
	return sq, nil
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+rune(s.File()), '1'+rune(s.Rank()))
}

// Named squares for the handful of places (castling, en passant rank checks,
// tests) where it reads better than arithmetic.
const (
	A1 = Square(0x00)
	E1 = Square(0x04)
	H1 = Square(0x07)
	A8 = Square(0x70)
	E8 = Square(0x74)
	H8 = Square(0x77)

	B1 = Square(0x01)
	C1 = Square(0x02)
	D1 = Square(0x03)
	F1 = Square(0x05)
	G1 = Square(0x06)
	B8 = Square(0x71)
	C8 = Square(0x72)
	D8 = Square(0x73)
	F8 = Square(0x75)
	G8 = Square(0x76)

	A2 = Square(0x10)
	C2 = Square(0x12)
	D2 = Square(0x13)
	E2 = Square(0x14)
	C3 = Square(0x22)
	F3 = Square(0x25)
	A4 = Square(0x30)
	D4 = Square(0x33)
	E4 = Square(0x34)
	G4 = Square(0x36)
	G5 = Square(0x46)
)

// Ray and knight deltas in 0x88 coordinates.
const (
	deltaN  = 16
	deltaS  = -16
	deltaE  = 1
	deltaW  = -1
	deltaNE = 17
	deltaNW = 15
	deltaSE = -15
	deltaSW = -17
)

var bishopDirs = [4]int{deltaNE, deltaNW, deltaSE, deltaSW}
var rookDirs = [4]int{deltaN, deltaS, deltaE, deltaW}
var queenDirs = [8]int{deltaN, deltaS, deltaE, deltaW, deltaNE, deltaNW, deltaSE, deltaSW}

var knightDeltas = [8]int{33, 31, 18, 14, -14, -18, -31, -33}
var kingDeltas = [8]int{deltaN, deltaS, deltaE, deltaW, deltaNE, deltaNW, deltaSE, deltaSW}
