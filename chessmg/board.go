package chessmg

import "fmt"

// Board is the bitboard set of a position: one bitboard per (color, piece
// type), per-side and total occupancy, and a square-indexed mailbox so
// PieceAt is a single lookup. The aggregates are kept in step by the
// mutators below; nothing outside this package can modify a Board.
type Board struct {
	pieces    [2][7]Bitboard // pieces[color][type]; index 0 is unused
	occupancy [2]Bitboard
	all       Bitboard
	mailbox   [64]Piece
}

// Occupancy returns the squares occupied by the given side.
func (b *Board) Occupancy(c Color) Bitboard { return b.occupancy[c] }

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() Bitboard { return b.all }

// Pieces returns the bitboard of one piece kind.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard { return b.pieces[c][pt] }

// PieceAt returns the piece on a square, NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece { return b.mailbox[sq] }

// KingSquare returns the square of the given side's king, NoSquare if absent.
func (b *Board) KingSquare(c Color) Square { return b.pieces[c][PieceTypeKing].LSB() }

// place puts p on an empty square.
func (b *Board) place(sq Square, p Piece) {
	if b.mailbox[sq] != NoPiece {
		panic(fmt.Sprintf("chessmg: place %v on occupied square %v (holds %v)", p, sq, b.mailbox[sq]))
	}
	bit := sq.Bitboard()
	c := p.Color()
	b.mailbox[sq] = p
	b.pieces[c][p.Type()] |= bit
	b.occupancy[c] |= bit
	b.all |= bit
}

// remove clears a square and returns what stood there.
func (b *Board) remove(sq Square) Piece {
	p := b.mailbox[sq]
	if p == NoPiece {
		return NoPiece
	}
	mask := ^sq.Bitboard()
	c := p.Color()
	b.mailbox[sq] = NoPiece
	b.pieces[c][p.Type()] &= mask
	b.occupancy[c] &= mask
	b.all &= mask
	return p
}

// move relocates the piece on from to the empty square to.
func (b *Board) move(from, to Square) {
	p := b.mailbox[from]
	if p == NoPiece {
		panic(fmt.Sprintf("chessmg: move from empty square %v", from))
	}
	if b.mailbox[to] != NoPiece {
		panic(fmt.Sprintf("chessmg: move %v onto occupied square %v", p, to))
	}
	flip := from.Bitboard() | to.Bitboard()
	c := p.Color()
	b.mailbox[from] = NoPiece
	b.mailbox[to] = p
	b.pieces[c][p.Type()] ^= flip
	b.occupancy[c] ^= flip
	b.all ^= flip
}

// Validate checks that no square is claimed by two piece bitboards and that
// the occupancy aggregates and mailbox agree with the piece bitboards.
func (b *Board) Validate() error {
	var occ [2]Bitboard
	var seen Bitboard
	for c := White; c <= Black; c++ {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			bb := b.pieces[c][pt]
			if overlap := seen & bb; overlap != 0 {
				return fmt.Errorf("%v %v bitboard overlaps another piece on %v", c, pt, overlap.LSB())
			}
			seen |= bb
			occ[c] |= bb
			for rest := bb; rest != 0; {
				sq := PopLSB(&rest)
				if want := PieceFromType(c, pt); b.mailbox[sq] != want {
					return fmt.Errorf("mailbox holds %v on %v, bitboards say %v", b.mailbox[sq], sq, want)
				}
			}
		}
	}
	if b.pieces[White][PieceTypeNone]|b.pieces[Black][PieceTypeNone] != 0 {
		return fmt.Errorf("typeless bitboard is not empty")
	}
	if occ != b.occupancy {
		return fmt.Errorf("side occupancy out of step with piece bitboards")
	}
	if occ[White]|occ[Black] != b.all {
		return fmt.Errorf("total occupancy out of step with side occupancy")
	}
	for sq := A1; sq <= H8; sq++ {
		if b.mailbox[sq] != NoPiece && !seen.Has(sq) {
			return fmt.Errorf("mailbox holds %v on %v but no bitboard does", b.mailbox[sq], sq)
		}
	}
	return nil
}
