package chessmg

import (
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// Bitboard is a set of squares: bit i is set iff square i is a member.
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = ^Empty

	FileA Bitboard = 0x0101010101010101
	FileB          = FileA << 1
	FileC          = FileA << 2
	FileD          = FileA << 3
	FileE          = FileA << 4
	FileF          = FileA << 5
	FileG          = FileA << 6
	FileH          = FileA << 7

	Rank1 Bitboard = 0xFF
	Rank2          = Rank1 << (8 * 1)
	Rank3          = Rank1 << (8 * 2)
	Rank4          = Rank1 << (8 * 3)
	Rank5          = Rank1 << (8 * 4)
	Rank6          = Rank1 << (8 * 5)
	Rank7          = Rank1 << (8 * 6)
	Rank8          = Rank1 << (8 * 7)

	LightSquares Bitboard = 0x55AA55AA55AA55AA
	DarkSquares           = ^LightSquares
)

// FileMask returns the bitboard of the given file (0 = a).
func FileMask(file int) Bitboard { return FileA << uint(file) }

// RankMask returns the bitboard of the given rank (0 = rank 1).
func RankMask(rank int) Bitboard { return Rank1 << uint(8*rank) }

// Has reports whether sq is in the set.
func (b Bitboard) Has(sq Square) bool { return b&sq.Bitboard() != 0 }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest square in the set, or NoSquare when empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest square in the set, or NoSquare when empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Squares lists the members in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, PopLSB(&b))
	}
	return out
}

// PopLSB removes and returns the least significant set bit from the mask.
func PopLSB(mask *Bitboard) Square {
	sq := Square(bits.TrailingZeros64(uint64(*mask)))
	*mask &= *mask - 1
	return sq
}

// Edge-safe shifts. Squares that would wrap from the h-file to the a-file
// (or back) are masked off before shifting; vertical overflow falls off the
// ends of the word.

func (b Bitboard) North() Bitboard     { return b << 8 }
func (b Bitboard) South() Bitboard     { return b >> 8 }
func (b Bitboard) East() Bitboard      { return (b &^ FileH) << 1 }
func (b Bitboard) West() Bitboard      { return (b &^ FileA) >> 1 }
func (b Bitboard) NorthEast() Bitboard { return (b &^ FileH) << 9 }
func (b Bitboard) NorthWest() Bitboard { return (b &^ FileA) << 7 }
func (b Bitboard) SouthEast() Bitboard { return (b &^ FileH) >> 7 }
func (b Bitboard) SouthWest() Bitboard { return (b &^ FileA) >> 9 }

// Direction is one of the eight compass directions used for rays.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	numDirections
)

var directionShifts = [numDirections]func(Bitboard) Bitboard{
	North:     Bitboard.North,
	NorthEast: Bitboard.NorthEast,
	East:      Bitboard.East,
	SouthEast: Bitboard.SouthEast,
	South:     Bitboard.South,
	SouthWest: Bitboard.SouthWest,
	West:      Bitboard.West,
	NorthWest: Bitboard.NorthWest,
}

// Shift moves every member one step in direction d.
func (b Bitboard) Shift(d Direction) Bitboard { return directionShifts[d](b) }

// increasing reports whether stepping in d raises the square index.
func (d Direction) increasing() bool {
	return d == North || d == NorthEast || d == East || d == NorthWest
}

// String draws the set as an 8x8 grid, rank 8 on top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
