package chessmg

// generatorFunc appends the pseudo-legal moves of the piece on from.
type generatorFunc func(p *Position, from Square, dst []Move) []Move

// pieceGenerators dispatches generation by piece type.
var pieceGenerators [7]generatorFunc

// pieceAttacks gives the attack set of a non-pawn piece type for a square and
// occupancy. Leapers ignore occupancy.
var pieceAttacks = [7]func(sq Square, occ Bitboard) Bitboard{
	PieceTypeKnight: func(sq Square, _ Bitboard) Bitboard { return knightAttacks[sq] },
	PieceTypeBishop: BishopAttacks,
	PieceTypeRook:   RookAttacks,
	PieceTypeQueen:  QueenAttacks,
	PieceTypeKing:   func(sq Square, _ Bitboard) Bitboard { return kingAttacks[sq] },
}

func init() {
	pieceGenerators = [7]generatorFunc{
		PieceTypePawn:   genPawnMoves,
		PieceTypeKnight: genPieceMoves,
		PieceTypeBishop: genPieceMoves,
		PieceTypeRook:   genPieceMoves,
		PieceTypeQueen:  genPieceMoves,
		PieceTypeKing:   genPieceMoves,
	}
}

// castleRule describes one castling move and the conditions it needs beyond
// the right itself.
type castleRule struct {
	right            CastlingRights
	king, rook       Piece
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	empty            Bitboard  // squares strictly between king and rook
	safe             [3]Square // king origin, transit and destination
	flag             MoveFlag
}

// castleRules[color][0] is kingside, [1] queenside.
var castleRules = [2][2]castleRule{
	White: {
		{
			right: CastleWhiteKingside, king: WhiteKing, rook: WhiteRook,
			kingFrom: E1, kingTo: G1, rookFrom: H1, rookTo: F1,
			empty: F1.Bitboard() | G1.Bitboard(),
			safe:  [3]Square{E1, F1, G1},
			flag:  FlagCastleKingside,
		},
		{
			right: CastleWhiteQueenside, king: WhiteKing, rook: WhiteRook,
			kingFrom: E1, kingTo: C1, rookFrom: A1, rookTo: D1,
			empty: B1.Bitboard() | C1.Bitboard() | D1.Bitboard(),
			safe:  [3]Square{E1, D1, C1},
			flag:  FlagCastleQueenside,
		},
	},
	Black: {
		{
			right: CastleBlackKingside, king: BlackKing, rook: BlackRook,
			kingFrom: E8, kingTo: G8, rookFrom: H8, rookTo: F8,
			empty: F8.Bitboard() | G8.Bitboard(),
			safe:  [3]Square{E8, F8, G8},
			flag:  FlagCastleKingside,
		},
		{
			right: CastleBlackQueenside, king: BlackKing, rook: BlackRook,
			kingFrom: E8, kingTo: C8, rookFrom: A8, rookTo: D8,
			empty: B8.Bitboard() | C8.Bitboard() | D8.Bitboard(),
			safe:  [3]Square{E8, D8, C8},
			flag:  FlagCastleQueenside,
		},
	},
}

// castleRightsLost[sq] is the set of rights that vanish when a move starts
// or ends on sq.
var castleRightsLost [64]CastlingRights

func init() {
	for _, side := range castleRules {
		for _, r := range side {
			castleRightsLost[r.kingFrom] |= r.right
			castleRightsLost[r.rookFrom] |= r.right
		}
	}
}

// pawnGeometry holds the side-dependent constants of pawn movement.
type pawnGeometry struct {
	forward   Direction
	startRank int
	promoRank int
}

var pawnGeometries = [2]pawnGeometry{
	White: {forward: North, startRank: 1, promoRank: 7},
	Black: {forward: South, startRank: 6, promoRank: 0},
}

var promotionTypes = [...]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// GeneratePseudoMoves returns all pseudo-legal moves for the side to move.
func (p *Position) GeneratePseudoMoves() []Move {
	return p.GeneratePseudoMovesInto(make([]Move, 0, 128))
}

// GeneratePseudoMovesInto writes pseudo-legal moves into dst[:0] and
// returns the filled slice. Moves may leave the mover's king attacked;
// castling is only emitted when its path is empty and unattacked.
func (p *Position) GeneratePseudoMovesInto(dst []Move) []Move {
	moves := dst[:0]
	us := p.sideToMove
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		gen := pieceGenerators[pt]
		for bb := p.board.pieces[us][pt]; bb != 0; {
			moves = gen(p, PopLSB(&bb), moves)
		}
	}
	return p.genCastles(moves)
}

// genPieceMoves handles every non-pawn piece through the attack table.
func genPieceMoves(p *Position, from Square, dst []Move) []Move {
	pc := p.board.mailbox[from]
	targets := pieceAttacks[pc.Type()](from, p.board.all) &^ p.board.occupancy[pc.Color()]
	for targets != 0 {
		to := PopLSB(&targets)
		dst = append(dst, NewMove(from, to, pc, p.board.mailbox[to], NoPiece, FlagNormal))
	}
	return dst
}

func genPawnMoves(p *Position, from Square, dst []Move) []Move {
	us := p.sideToMove
	them := us.Other()
	g := &pawnGeometries[us]
	pc := PieceFromType(us, PieceTypePawn)

	if one := from.Bitboard().Shift(g.forward) &^ p.board.all; one != 0 {
		dst = appendPawnMove(dst, from, one.LSB(), pc, NoPiece, g.promoRank)
		if from.Rank() == g.startRank {
			if two := one.Shift(g.forward) &^ p.board.all; two != 0 {
				dst = append(dst, NewMove(from, two.LSB(), pc, NoPiece, NoPiece, FlagDoublePush))
			}
		}
	}

	att := pawnAttacks[us][from]
	for caps := att & p.board.occupancy[them]; caps != 0; {
		to := PopLSB(&caps)
		dst = appendPawnMove(dst, from, to, pc, p.board.mailbox[to], g.promoRank)
	}
	if p.enPassant != NoSquare && att.Has(p.enPassant) {
		dst = append(dst, NewMove(from, p.enPassant, pc, PieceFromType(them, PieceTypePawn), NoPiece, FlagEnPassant))
	}
	return dst
}

// appendPawnMove appends a single pawn step or capture, expanding it into
// the four promotions when it lands on the last rank.
func appendPawnMove(dst []Move, from, to Square, pc, captured Piece, promoRank int) []Move {
	if to.Rank() != promoRank {
		return append(dst, NewMove(from, to, pc, captured, NoPiece, FlagNormal))
	}
	for _, pt := range promotionTypes {
		dst = append(dst, NewMove(from, to, pc, captured, PieceFromType(pc.Color(), pt), FlagNormal))
	}
	return dst
}

func (p *Position) genCastles(dst []Move) []Move {
	us := p.sideToMove
	them := us.Other()
	for i := range castleRules[us] {
		r := &castleRules[us][i]
		if !p.castling.Has(r.right) ||
			p.board.mailbox[r.kingFrom] != r.king ||
			p.board.mailbox[r.rookFrom] != r.rook ||
			p.board.all&r.empty != 0 {
			continue
		}
		safe := true
		for _, sq := range r.safe {
			if p.board.IsAttacked(sq, them) {
				safe = false
				break
			}
		}
		if safe {
			dst = append(dst, NewMove(r.kingFrom, r.kingTo, r.king, NoPiece, NoPiece, r.flag))
		}
	}
	return dst
}
