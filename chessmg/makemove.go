package chessmg

// MoveState holds what MakeMove destroys, so UnmakeMove can restore the
// position exactly.
type MoveState struct {
	move          Move
	captured      Piece
	capturedOn    Square // differs from the destination for en passant
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevStatus    Status
	prevKey       uint64
}

// Move returns the move this state undoes.
func (st MoveState) Move() Move { return st.move }

// Captured returns the piece removed by the move, NoPiece for quiet moves.
func (st MoveState) Captured() Piece { return st.captured }

// castleRuleFor returns the rule behind a castling flag.
func castleRuleFor(c Color, f MoveFlag) *castleRule {
	return &castleRules[c][f-FlagCastleKingside]
}

// MakeMove plays m in place and returns the record needed to undo it. It does
// not check legality; m must come from the generator for this position.
func (p *Position) MakeMove(m Move) MoveState {
	st := MoveState{
		move:          m,
		capturedOn:    NoSquare,
		prevCastling:  p.castling,
		prevEnPassant: p.enPassant,
		prevHalfmove:  p.halfmoveClock,
		prevFullmove:  p.fullmoveNumber,
		prevStatus:    p.status,
		prevKey:       p.key,
	}

	us := p.sideToMove
	from, to := m.From(), m.To()
	flag := m.Flag()
	moved := p.board.mailbox[from]

	capSq := to
	if flag == FlagEnPassant {
		// the captured pawn stands beside the mover, behind the target
		capSq = NewSquare(to.File(), from.Rank())
	}
	if p.board.mailbox[capSq] != NoPiece {
		st.captured = p.takePiece(capSq)
		st.capturedOn = capSq
	}

	p.shiftPiece(from, to)
	if promo := m.PromotionPiece(); promo != NoPiece {
		p.takePiece(to)
		p.putPiece(to, promo)
	}
	if m.IsCastle() {
		r := castleRuleFor(us, flag)
		p.shiftPiece(r.rookFrom, r.rookTo)
	}

	p.setCastling(p.castling &^ (castleRightsLost[from] | castleRightsLost[to]))
	if flag == FlagDoublePush {
		p.setEnPassant(NewSquare(from.File(), (from.Rank()+to.Rank())/2))
	} else {
		p.setEnPassant(NoSquare)
	}

	if moved.Type() == PieceTypePawn || st.captured != NoPiece {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if us == Black {
		p.fullmoveNumber++
	}
	p.flipSide()
	p.status = statusUnknown
	return st
}

// UnmakeMove reverts the move recorded in st. st must be the value returned
// by the most recent MakeMove on this position.
func (p *Position) UnmakeMove(st MoveState) {
	m := st.move
	from, to := m.From(), m.To()
	us := p.sideToMove.Other()
	p.sideToMove = us

	if m.IsCastle() {
		r := castleRuleFor(us, m.Flag())
		p.board.move(r.rookTo, r.rookFrom)
	}
	if m.IsPromotion() {
		p.board.remove(to)
		p.board.place(to, PieceFromType(us, PieceTypePawn))
	}
	p.board.move(to, from)
	if st.captured != NoPiece {
		p.board.place(st.capturedOn, st.captured)
	}

	p.castling = st.prevCastling
	p.enPassant = st.prevEnPassant
	p.halfmoveClock = st.prevHalfmove
	p.fullmoveNumber = st.prevFullmove
	p.status = st.prevStatus
	p.key = st.prevKey
}

// Apply returns the position after the legal move m. The receiver is not
// modified. A move that is not legal here yields an *IllegalMoveError.
func (p *Position) Apply(m Move) (Position, error) {
	legal, ok := p.findLegal(m.From(), m.To(), m.PromotionPieceType())
	if !ok {
		return Position{}, &IllegalMoveError{Move: m, FEN: p.FEN()}
	}
	next := *p
	next.MakeMove(legal)
	next.status = next.Classify()
	return next, nil
}

// ResolveMove matches a coordinate string such as "e2e4" or "e7e8q" against
// the legal moves of the position.
func (p *Position) ResolveMove(s string) (Move, error) {
	cm, err := parseCoord(s)
	if err != nil {
		return NullMove, err
	}
	m, ok := p.findLegal(cm.from, cm.to, cm.promo)
	if !ok {
		guess := NewMove(cm.from, cm.to, p.board.mailbox[cm.from], p.board.mailbox[cm.to],
			PieceFromType(p.sideToMove, cm.promo), FlagNormal)
		return NullMove, &IllegalMoveError{Move: guess, FEN: p.FEN()}
	}
	return m, nil
}
