package chessmg

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func invalidFEN(fen, format string, args ...any) error {
	return &InvalidPositionError{FEN: fen, Reason: fmt.Sprintf(format, args...)}
}

// ParseFEN parses a FEN string into a Position. The clock fields may be
// omitted, in which case they default to 0 and 1. Positions that could not
// arise in a game (missing kings, pawns on the back ranks, the side not to
// move in check, rights without pieces behind them) are rejected with an
// *InvalidPositionError.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 && len(fields) != 6 {
		return Position{}, invalidFEN(fen, "want 4 or 6 fields, got %d", len(fields))
	}

	p := Position{enPassant: NoSquare, fullmoveNumber: 1}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, invalidFEN(fen, "want 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return Position{}, invalidFEN(fen, "rank %d overflows", rank+1)
				}
				continue
			}
			pc := pieceFromChar(ch)
			if pc == NoPiece {
				return Position{}, invalidFEN(fen, "unknown piece %q", ch)
			}
			if file >= 8 {
				return Position{}, invalidFEN(fen, "rank %d overflows", rank+1)
			}
			p.board.place(NewSquare(file, rank), pc)
			file++
		}
		if file != 8 {
			return Position{}, invalidFEN(fen, "rank %d has %d files", rank+1, file)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return Position{}, invalidFEN(fen, "side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			i := strings.IndexRune("KQkq", ch)
			if i < 0 {
				return Position{}, invalidFEN(fen, "bad castling flag %q", ch)
			}
			p.castling |= 1 << uint(i)
		}
	}

	// 4. En passant target
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, invalidFEN(fen, "bad en passant square: %v", err)
		}
		p.enPassant = sq
	}

	// 5, 6. Clocks
	if len(fields) == 6 {
		half, err := strconv.Atoi(fields[4])
		if err != nil || half < 0 {
			return Position{}, invalidFEN(fen, "bad halfmove clock %q", fields[4])
		}
		full, err := strconv.Atoi(fields[5])
		if err != nil || full < 1 {
			return Position{}, invalidFEN(fen, "bad fullmove number %q", fields[5])
		}
		p.halfmoveClock, p.fullmoveNumber = half, full
	}

	if reason := p.loadProblem(); reason != "" {
		return Position{}, invalidFEN(fen, "%s", reason)
	}
	p.key = p.ComputeZobrist()
	return p, nil
}

// loadProblem returns why a freshly parsed position is unplayable, or "".
func (p *Position) loadProblem() string {
	b := &p.board
	for c := White; c <= Black; c++ {
		if n := b.pieces[c][PieceTypeKing].Count(); n != 1 {
			return fmt.Sprintf("%v has %d kings", c, n)
		}
	}
	if (b.pieces[White][PieceTypePawn]|b.pieces[Black][PieceTypePawn])&(Rank1|Rank8) != 0 {
		return "pawn on first or last rank"
	}
	for _, side := range castleRules {
		for _, r := range side {
			if p.castling.Has(r.right) && (b.mailbox[r.kingFrom] != r.king || b.mailbox[r.rookFrom] != r.rook) {
				return fmt.Sprintf("castling right %v without king and rook on home squares", r.right)
			}
		}
	}
	if ep := p.enPassant; ep != NoSquare {
		// the opponent just pushed a pawn two squares through ep
		them := p.sideToMove.Other()
		g := &pawnGeometries[them]
		wantRank := g.startRank + 1
		if g.forward == South {
			wantRank = g.startRank - 1
		}
		if ep.Rank() != wantRank {
			return fmt.Sprintf("en passant square %v on wrong rank", ep)
		}
		pushed := ep.Bitboard().Shift(g.forward).LSB()
		origin := ep.Bitboard().Shift(pawnGeometries[p.sideToMove].forward).LSB()
		if b.mailbox[pushed] != PieceFromType(them, PieceTypePawn) ||
			b.mailbox[ep] != NoPiece || b.mailbox[origin] != NoPiece {
			return fmt.Sprintf("en passant square %v without a double-pushed pawn", ep)
		}
	}
	if b.InCheck(p.sideToMove.Other()) {
		return "side not to move is in check"
	}
	return ""
}

// FEN produces the FEN string of the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board.mailbox[NewSquare(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(pc))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}
