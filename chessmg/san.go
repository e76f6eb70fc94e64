package chessmg

import (
	"fmt"
	"strings"
)

// SAN describes m in standard algebraic notation ("Nbd7", "exd6", "e8=Q+",
// "O-O-O", "Qxg7#"). m is expected to be legal in p.
func (p *Position) SAN(m Move) string {
	var sb strings.Builder
	switch m.Flag() {
	case FlagCastleKingside:
		sb.WriteString("O-O")
	case FlagCastleQueenside:
		sb.WriteString("O-O-O")
	default:
		pc := p.board.mailbox[m.From()]
		if pc.Type() == PieceTypePawn {
			if m.IsCapture() {
				sb.WriteByte('a' + byte(m.From().File()))
			}
		} else {
			sb.WriteString(pc.Type().Letter())
			sb.WriteString(p.disambiguation(m, pc))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To().String())
		if pt := m.PromotionPieceType(); pt != PieceTypeNone {
			sb.WriteByte('=')
			sb.WriteString(pt.Letter())
		}
	}
	sb.WriteString(p.checkSuffix(m))
	return sb.String()
}

// disambiguation returns the origin file, rank or both needed to tell m
// apart from other legal moves of the same piece kind to the same square.
func (p *Position) disambiguation(m Move, pc Piece) string {
	var req, fileReq, rankReq bool
	from := m.From()
	for _, other := range p.LegalMoves() {
		of := other.From()
		if of == from || other.To() != m.To() || p.board.mailbox[of] != pc {
			continue
		}
		req = true
		if of.File() == from.File() {
			rankReq = true
		}
		if of.Rank() == from.Rank() {
			fileReq = true
		}
	}
	var out []byte
	if fileReq || (!rankReq && req) {
		out = append(out, 'a'+byte(from.File()))
	}
	if rankReq {
		out = append(out, '1'+byte(from.Rank()))
	}
	return string(out)
}

func (p *Position) checkSuffix(m Move) string {
	st := p.MakeMove(m)
	defer p.UnmakeMove(st)
	if !p.board.InCheck(p.sideToMove) {
		return ""
	}
	if p.HasLegalMoves() {
		return "+"
	}
	return "#"
}

// ParseSAN finds the legal move whose SAN equals s. Check and mate suffixes
// and annotation marks are ignored on both sides.
func (p *Position) ParseSAN(s string) (Move, error) {
	want := trimSAN(s)
	for _, m := range p.LegalMoves() {
		if trimSAN(p.SAN(m)) == want {
			return m, nil
		}
	}
	return NullMove, fmt.Errorf("%w: %q in %q", ErrIllegalMove, s, p.FEN())
}

func trimSAN(s string) string {
	s = strings.TrimRight(s, "+#!?")
	return strings.ReplaceAll(s, "0", "O")
}
