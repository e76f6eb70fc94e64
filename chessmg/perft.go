package chessmg

// Perft counts the leaf nodes of the legal move tree of depth plies below p.
// p is taken by value; the walk makes and unmakes moves on a private copy.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(&p, depth, &pc)
}

// perftCtx keeps one move buffer per remaining depth so the walk does not
// allocate once warmed up.
type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	if pc.bufs[depth] == nil {
		pc.bufs[depth] = make([]Move, 0, 256)
	}
	return pc.bufs[depth][:0]
}

func perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	moves := p.GenerateMovesInto(pc.bufFor(depth))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st := p.MakeMove(m)
		nodes += perftRec(p, depth-1, pc)
		p.UnmakeMove(st)
	}
	return nodes
}

// PerftDivide maps each legal root move to the leaf count beneath it.
func PerftDivide(p Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.LegalMoves() {
		st := p.MakeMove(m)
		result[m] = Perft(p, depth-1)
		p.UnmakeMove(st)
	}
	return result
}
