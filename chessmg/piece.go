package chessmg

import "strings"

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

var pieceTypeNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string {
	if int(pt) >= len(pieceTypeNames) {
		return "invalid"
	}
	return pieceTypeNames[pt]
}

// Letter returns the upper-case SAN letter of the type ("" for pawns).
func (pt PieceType) Letter() string {
	if pt == PieceTypePawn || pt == PieceTypeNone || pt > PieceTypeKing {
		return ""
	}
	return string(pieceLetters[pt])
}

// Piece is a PieceType tagged with its side.
// Black pieces are encoded as (type | 8) so that
//   - piece & 7 gives the type in [1..6]
//   - piece & 8 != 0 indicates Black
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// FEN letters indexed by PieceType; lower-case for Black.
const pieceLetters = " PNBRQK"

// PieceFromType combines a side and a colorless type into a Piece.
func PieceFromType(c Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p>>3) & 1 }

// String returns the FEN letter of the piece, "." for NoPiece.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return string(charFromPiece(p))
}

// charFromPiece converts a Piece to its FEN character.
func charFromPiece(p Piece) rune {
	pt := p.Type()
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return '?'
	}
	ch := rune(pieceLetters[pt])
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// pieceFromChar converts a FEN character to a Piece, NoPiece if unknown.
func pieceFromChar(ch rune) Piece {
	if ch == ' ' {
		return NoPiece
	}
	if i := strings.IndexRune(pieceLetters, ch); i > 0 {
		return PieceFromType(White, PieceType(i))
	}
	if i := strings.IndexRune(pieceLetters, ch-('a'-'A')); i > 0 && ch >= 'a' {
		return PieceFromType(Black, PieceType(i))
	}
	return NoPiece
}

// CastlingRights is a bit set of the four castling permissions.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside
)

// Has reports whether every right in r is held.
func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }

// String renders the rights in FEN form ("KQkq", "-").
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for i, ch := range "KQkq" {
		if cr&(1<<uint(i)) != 0 {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
