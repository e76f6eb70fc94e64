package chessmg_test

import (
	"strings"
	"testing"

	"bitchess/chessmg"
)

const (
	fenKiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	fenPosition3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	fenPosition4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	fenPosition5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1"
	fenPosition6 = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)

func mustFEN(t testing.TB, fen string) chessmg.Position {
	t.Helper()
	p, err := chessmg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func mustSquare(t testing.TB, s string) chessmg.Square {
	t.Helper()
	sq, err := chessmg.ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}

// playUCI applies a space-separated list of coordinate moves to g.
func playUCI(t *testing.T, g *chessmg.Game, seq string) {
	t.Helper()
	for i, mv := range strings.Fields(seq) {
		if err := g.ApplyUCI(mv); err != nil {
			t.Fatalf("ply %d (%s): %v", i, mv, err)
		}
	}
}

// moveStrings renders moves in coordinate notation.
func moveStrings(ms []chessmg.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}

func containsMove(ms []chessmg.Move, uci string) bool {
	for _, m := range ms {
		if m.String() == uci {
			return true
		}
	}
	return false
}
