package chessmg

import "math/rand"

// Zobrist keys, filled once at init from a fixed seed so hashes are stable
// across runs.
var (
	zobristPiece     [15][64]uint64 // indexed by Piece code
	zobristCastle    [16]uint64     // indexed by the whole CastlingRights set
	zobristEnPassant [8]uint64      // indexed by target file
	zobristSide      uint64         // mixed in when Black is to move
)

func init() {
	initZobrist()
}

func initZobrist() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist hashes the position from scratch. The executor keeps the
// cached key in step incrementally; the two must always agree.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for occ := p.board.all; occ != 0; {
		sq := PopLSB(&occ)
		key ^= zobristPiece[p.board.mailbox[sq]][sq]
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castling]
	if p.enPassant != NoSquare {
		key ^= zobristEnPassant[p.enPassant.File()]
	}
	return key
}
