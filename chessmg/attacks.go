package chessmg

import "math/bits"

// Precomputed leaper masks.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	// pawnAttacks[c][sq] is the set a pawn of color c on sq attacks.
	pawnAttacks [2][64]Bitboard
)

// rays[d][sq] holds every square strictly beyond sq in direction d, up to
// the board edge.
var rays [numDirections][64]Bitboard

var (
	rookDirections   = [...]Direction{North, East, South, West}
	bishopDirections = [...]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
)

func init() {
	initLeaperTables()
	initRays()
}

// initLeaperTables builds the knight, king and pawn masks from the
// edge-safe shifts, so no entry can wrap across the a/h files.
func initLeaperTables() {
	for sq := A1; sq <= H8; sq++ {
		b := sq.Bitboard()

		n, s := b.North(), b.South()
		e, w := b.East(), b.West()
		knightAttacks[sq] = n.North().East() | n.North().West() |
			s.South().East() | s.South().West() |
			e.East().North() | e.East().South() |
			w.West().North() | w.West().South()

		var k Bitboard
		for d := North; d < numDirections; d++ {
			k |= b.Shift(d)
		}
		kingAttacks[sq] = k

		pawnAttacks[White][sq] = b.NorthEast() | b.NorthWest()
		pawnAttacks[Black][sq] = b.SouthEast() | b.SouthWest()
	}
}

func initRays() {
	for d := North; d < numDirections; d++ {
		for sq := A1; sq <= H8; sq++ {
			var ray Bitboard
			for step := sq.Bitboard().Shift(d); step != 0; step = step.Shift(d) {
				ray |= step
			}
			rays[d][sq] = ray
		}
	}
}

// firstBlocker returns the occupied square nearest to sq in direction d, or
// NoSquare if the ray is clear to the edge.
func firstBlocker(sq Square, d Direction, occ Bitboard) Square {
	blockers := rays[d][sq] & occ
	if blockers == 0 {
		return NoSquare
	}
	if d.increasing() {
		return Square(bits.TrailingZeros64(uint64(blockers)))
	}
	return Square(63 - bits.LeadingZeros64(uint64(blockers)))
}

// rayAttacks is the ray from sq in direction d, cut after the first blocker.
// The blocker itself is included; callers mask own pieces.
func rayAttacks(sq Square, d Direction, occ Bitboard) Bitboard {
	ray := rays[d][sq]
	if first := firstBlocker(sq, d, occ); first != NoSquare {
		ray &^= rays[d][first]
	}
	return ray
}

// RookAttacks returns the squares a rook on sq attacks given occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	var att Bitboard
	for _, d := range rookDirections {
		att |= rayAttacks(sq, d, occ)
	}
	return att
}

// BishopAttacks returns the squares a bishop on sq attacks given occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	var att Bitboard
	for _, d := range bishopDirections {
		att |= rayAttacks(sq, d, occ)
	}
	return att
}

// QueenAttacks is the union of rook and bishop attacks.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// KnightAttacks returns the knight mask for sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king mask for sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// IsAttacked reports whether the given square is attacked by side by.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return b.isAttackedWithOcc(sq, by, b.all)
}

func (b *Board) isAttackedWithOcc(sq Square, by Color, occ Bitboard) bool {
	own := &b.pieces[by]

	// Pawn attacks via reverse mask: sq is hit by a pawn of color by exactly
	// when a pawn of the other color on sq would hit that pawn.
	if pawnAttacks[by.Other()][sq]&own[PieceTypePawn] != 0 {
		return true
	}
	if knightAttacks[sq]&own[PieceTypeKnight] != 0 {
		return true
	}
	if kingAttacks[sq]&own[PieceTypeKing] != 0 {
		return true
	}

	// Sliders: cast outward from the target; only the first blocker counts.
	rq := own[PieceTypeRook] | own[PieceTypeQueen]
	if rq != 0 {
		for _, d := range rookDirections {
			if first := firstBlocker(sq, d, occ); first != NoSquare && rq.Has(first) {
				return true
			}
		}
	}
	bq := own[PieceTypeBishop] | own[PieceTypeQueen]
	if bq != 0 {
		for _, d := range bishopDirections {
			if first := firstBlocker(sq, d, occ); first != NoSquare && bq.Has(first) {
				return true
			}
		}
	}
	return false
}

// Attackers returns every piece of side by that attacks sq.
func (b *Board) Attackers(sq Square, by Color) Bitboard {
	own := &b.pieces[by]
	occ := b.all
	return pawnAttacks[by.Other()][sq]&own[PieceTypePawn] |
		knightAttacks[sq]&own[PieceTypeKnight] |
		kingAttacks[sq]&own[PieceTypeKing] |
		RookAttacks(sq, occ)&(own[PieceTypeRook]|own[PieceTypeQueen]) |
		BishopAttacks(sq, occ)&(own[PieceTypeBishop]|own[PieceTypeQueen])
}

// InCheck reports whether color's king is attacked. A board without that
// king reports false.
func (b *Board) InCheck(c Color) bool {
	ks := b.KingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.IsAttacked(ks, c.Other())
}

// InCheck reports whether the given side's king is attacked.
func (p *Position) InCheck(c Color) bool { return p.board.InCheck(c) }

// IsAttacked reports whether sq is attacked by side by.
func (p *Position) IsAttacked(sq Square, by Color) bool { return p.board.IsAttacked(sq, by) }
