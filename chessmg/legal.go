package chessmg

// FilterLegal keeps the moves of ms that do not leave the mover's king
// attacked. Each candidate is made and unmade on p, so p is unchanged on
// return. The result reuses the backing array of ms.
func (p *Position) FilterLegal(ms []Move) []Move {
	us := p.sideToMove
	legal := ms[:0]
	for _, m := range ms {
		st := p.MakeMove(m)
		if !p.board.InCheck(us) {
			legal = append(legal, m)
		}
		p.UnmakeMove(st)
	}
	return legal
}

// LegalMoves returns every legal move for the side to move.
func (p *Position) LegalMoves() []Move {
	return p.GenerateMovesInto(make([]Move, 0, 128))
}

// GenerateMovesInto writes the legal moves into dst[:0].
func (p *Position) GenerateMovesInto(dst []Move) []Move {
	return p.FilterLegal(p.GeneratePseudoMovesInto(dst))
}

// HasLegalMoves reports whether the side to move has any legal move. It
// stops at the first one found.
func (p *Position) HasLegalMoves() bool {
	var buf [128]Move
	us := p.sideToMove
	for _, m := range p.GeneratePseudoMovesInto(buf[:0]) {
		st := p.MakeMove(m)
		ok := !p.board.InCheck(us)
		p.UnmakeMove(st)
		if ok {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is one of the legal moves of the position.
func (p *Position) IsLegal(m Move) bool {
	legal, ok := p.findLegal(m.From(), m.To(), m.PromotionPieceType())
	return ok && legal == m
}

// findLegal looks up the legal move with the given squares and promotion.
func (p *Position) findLegal(from, to Square, promo PieceType) (Move, bool) {
	var buf [128]Move
	for _, m := range p.GenerateMovesInto(buf[:0]) {
		if m.From() == from && m.To() == to && m.PromotionPieceType() == promo {
			return m, true
		}
	}
	return NullMove, false
}
