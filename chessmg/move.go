package chessmg

import (
	"fmt"
	"strings"
)

// Move encodes a chess move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB).
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
	moveFlagShift    = 24 // 3 bits
)

// NullMove is the zero Move; it never appears in generated move lists.
const NullMove Move = 0

// MoveFlag marks moves whose execution differs from "lift piece, drop piece".
type MoveFlag uint8

const (
	FlagNormal MoveFlag = iota
	FlagDoublePush
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
)

var moveFlagNames = [...]string{"normal", "double-push", "en-passant", "castle-kingside", "castle-queenside"}

func (f MoveFlag) String() string {
	if int(f) >= len(moveFlagNames) {
		return fmt.Sprintf("MoveFlag(%d)", f)
	}
	return moveFlagNames[f]
}

// NewMove constructs a Move value from components. promotion is NoPiece for
// non-promoting moves; captured is NoPiece for quiet moves.
func NewMove(from, to Square, piece, captured, promotion Piece, flag MoveFlag) Move {
	return Move(uint32(from&0x3F)<<moveFromShift |
		uint32(to&0x3F)<<moveToShift |
		uint32(piece&0xF)<<movePieceShift |
		uint32(captured&0xF)<<moveCaptureShift |
		uint32(promotion&0xF)<<movePromoteShift |
		uint32(flag&0x7)<<moveFlagShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece that moves.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the captured piece (or NoPiece).
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the piece a pawn becomes (or NoPiece).
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// PromotionPieceType returns the colorless promotion type (or PieceTypeNone).
func (m Move) PromotionPieceType() PieceType { return m.PromotionPiece().Type() }

// Flag returns the special-move flag.
func (m Move) Flag() MoveFlag { return MoveFlag((uint32(m) >> moveFlagShift) & 0x7) }

func (m Move) IsCapture() bool   { return m.CapturedPiece() != NoPiece }
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueenside
}

// String renders the move in coordinate notation: "e2e4", "e7e8q", "e1g1".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pt := m.PromotionPieceType(); pt != PieceTypeNone {
		s += strings.ToLower(pt.Letter())
	}
	return s
}

// coordMove is a parsed coordinate string before it is matched against a
// position.
type coordMove struct {
	from, to Square
	promo    PieceType
}

// parseCoord splits "e7e8q" into its squares and promotion type.
func parseCoord(s string) (coordMove, error) {
	if len(s) != 4 && len(s) != 5 {
		return coordMove{}, fmt.Errorf("invalid move %q: want 4 or 5 characters", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return coordMove{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return coordMove{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	cm := coordMove{from: from, to: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'Q':
			cm.promo = PieceTypeQueen
		case 'r', 'R':
			cm.promo = PieceTypeRook
		case 'b', 'B':
			cm.promo = PieceTypeBishop
		case 'n', 'N':
			cm.promo = PieceTypeKnight
		default:
			return coordMove{}, fmt.Errorf("invalid move %q: bad promotion piece %q", s, s[4])
		}
	}
	return cm, nil
}

// ParseMove builds a Move from coordinate notation using the position to
// fill in the moving and captured pieces and the special-move flag. It does
// not check legality; use Position.ResolveMove for that.
func (p *Position) ParseMove(s string) (Move, error) {
	cm, err := parseCoord(s)
	if err != nil {
		return NullMove, err
	}
	piece := p.board.PieceAt(cm.from)
	if piece == NoPiece {
		return NullMove, fmt.Errorf("invalid move %q: no piece on %v", s, cm.from)
	}
	captured := p.board.PieceAt(cm.to)
	flag := FlagNormal
	var promo Piece
	switch piece.Type() {
	case PieceTypePawn:
		switch {
		case abs(cm.to.Rank()-cm.from.Rank()) == 2:
			flag = FlagDoublePush
		case cm.to == p.enPassant && cm.to.File() != cm.from.File() && captured == NoPiece:
			flag = FlagEnPassant
			captured = PieceFromType(piece.Color().Other(), PieceTypePawn)
		}
		if cm.promo != PieceTypeNone {
			promo = PieceFromType(piece.Color(), cm.promo)
		}
	case PieceTypeKing:
		switch int(cm.to) - int(cm.from) {
		case 2:
			flag = FlagCastleKingside
		case -2:
			flag = FlagCastleQueenside
		}
	}
	return NewMove(cm.from, cm.to, piece, captured, promo, flag), nil
}
