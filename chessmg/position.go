package chessmg

import "fmt"

// Position is a complete game state: piece placement plus side to move,
// castling rights, en passant target, clocks, cached status and zobrist key.
//
// Position is a value type. Assigning or returning one yields an independent
// copy, so a caller holding a Position never observes later moves.
type Position struct {
	board          Board
	sideToMove     Color
	castling       CastlingRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int

	// status caches the default-rules classification; statusUnknown after
	// any move until Status is called.
	status Status
	key    uint64
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	p, err := ParseFEN(FENStartPos)
	if err != nil {
		panic("chessmg: start position does not parse: " + err.Error())
	}
	return p
}

// Board exposes the piece placement read-only.
func (p *Position) Board() *Board { return &p.board }

// PieceAt returns the piece on a square, NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece { return p.board.mailbox[sq] }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the castling flags still held.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassantSquare returns the current en passant target or NoSquare.
func (p *Position) EnPassantSquare() Square { return p.enPassant }

// HalfmoveClock counts half-moves since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber starts at 1 and increments after Black's move.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Zobrist returns the incrementally maintained hash key.
func (p *Position) Zobrist() uint64 { return p.key }

// putPiece, takePiece and shiftPiece are the only board mutations; each
// keeps the zobrist key in step.

func (p *Position) putPiece(sq Square, pc Piece) {
	p.board.place(sq, pc)
	p.key ^= zobristPiece[pc][sq]
}

func (p *Position) takePiece(sq Square) Piece {
	pc := p.board.remove(sq)
	if pc != NoPiece {
		p.key ^= zobristPiece[pc][sq]
	}
	return pc
}

func (p *Position) shiftPiece(from, to Square) {
	pc := p.board.mailbox[from]
	p.board.move(from, to)
	p.key ^= zobristPiece[pc][from] ^ zobristPiece[pc][to]
}

func (p *Position) setCastling(cr CastlingRights) {
	p.key ^= zobristCastle[p.castling] ^ zobristCastle[cr]
	p.castling = cr
}

func (p *Position) setEnPassant(sq Square) {
	if p.enPassant != NoSquare {
		p.key ^= zobristEnPassant[p.enPassant.File()]
	}
	p.enPassant = sq
	if sq != NoSquare {
		p.key ^= zobristEnPassant[sq.File()]
	}
}

func (p *Position) flipSide() {
	p.sideToMove = p.sideToMove.Other()
	p.key ^= zobristSide
}

// Validate checks the structural invariants: board aggregates, exactly one
// king per side, castling rights backed by pieces on home squares, and a
// zobrist key matching a full recomputation.
func (p *Position) Validate() error {
	if err := p.board.Validate(); err != nil {
		return err
	}
	for c := White; c <= Black; c++ {
		if n := p.board.pieces[c][PieceTypeKing].Count(); n != 1 {
			return fmt.Errorf("%v has %d kings", c, n)
		}
	}
	for _, cr := range castleRules {
		for _, r := range cr {
			if !p.castling.Has(r.right) {
				continue
			}
			if p.board.mailbox[r.kingFrom] != r.king || p.board.mailbox[r.rookFrom] != r.rook {
				return fmt.Errorf("castling right %v without king and rook on home squares", r.right)
			}
		}
	}
	if p.enPassant != NoSquare {
		want := 5
		if p.sideToMove == Black {
			want = 2
		}
		if p.enPassant.Rank() != want {
			return fmt.Errorf("en passant square %v on wrong rank", p.enPassant)
		}
	}
	if k := p.ComputeZobrist(); k != p.key {
		return fmt.Errorf("zobrist key %#x, recomputed %#x", p.key, k)
	}
	return nil
}

// String renders the position as a FEN string.
func (p Position) String() string { return p.FEN() }
