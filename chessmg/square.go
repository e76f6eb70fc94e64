package chessmg

import "fmt"

// Square represents a board position (0-63), a1 = 0, h1 = 7, a8 = 56.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square on the given file (0 = a) and rank (0 = rank 1).
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the file index, 0 for the a-file.
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank index, 0 for the first rank.
func (s Square) Rank() int { return int(s) / 8 }

// Valid reports whether s is on the board.
func (s Square) Valid() bool { return s >= A1 && s <= H8 }

// Bitboard returns the singleton set {s}.
func (s Square) Bitboard() Bitboard {
	if !s.Valid() {
		return Empty
	}
	return Bitboard(1) << uint(s)
}

// String returns the algebraic coordinate ("e4"), or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare converts an algebraic coordinate such as "e4" into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q: want two characters", alg)
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("invalid square %q: out of range", alg)
	}
	return NewSquare(int(file-'a'), int(rank-'1')), nil
}

// Distance is the number of king steps between two squares.
func Distance(a, b Square) int {
	return max(abs(a.File()-b.File()), abs(a.Rank()-b.Rank()))
}
