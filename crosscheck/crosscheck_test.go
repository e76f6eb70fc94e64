package crosscheck_test

import (
	"context"
	"math/rand"
	"testing"

	"bitchess/chessmg"
	"bitchess/crosscheck"
)

var positions = []struct {
	name string
	fen  string
}{
	{"start", chessmg.FENStartPos},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"},
	{"position 6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"},
	{"en passant", "4k3/8/8/2pP4/8/8/8/4K3 w - c6 0 2"},
	{"promotion", "3n4/2P1k3/8/8/8/8/8/4K3 w - - 0 1"},
	{"disambiguation", "3k4/8/8/8/8/R7/1K6/R6Q w - - 0 1"},
}

func mustFEN(t *testing.T, fen string) chessmg.Position {
	t.Helper()
	p, err := chessmg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func TestLegalMovesAgree(t *testing.T) {
	refs := []crosscheck.Reference{crosscheck.Dragontooth{}, crosscheck.Corentings{}}
	for _, tc := range positions {
		p := mustFEN(t, tc.fen)
		for _, ref := range refs {
			d, err := crosscheck.CompareLegal(&p, ref)
			if err != nil {
				t.Fatalf("%s/%s: %v", tc.name, ref.Name(), err)
			}
			if !d.Empty() {
				t.Errorf("%s: %v", tc.name, d)
			}
		}
	}
}

func TestSANAgrees(t *testing.T) {
	for _, tc := range positions {
		p := mustFEN(t, tc.fen)
		ms, err := crosscheck.CompareSAN(&p, crosscheck.Corentings{})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		for _, m := range ms {
			t.Errorf("%s: %s got %q want %q", tc.name, m.Move, m.Got, m.Want)
		}
	}
}

func TestDivideAgrees(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, tc := range positions {
		ms, err := crosscheck.CompareDivide(mustFEN(t, tc.fen), depth, crosscheck.Dragontooth{})
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		for _, m := range ms {
			t.Errorf("%s: %s got %d want %d", tc.name, m.Move, m.Got, m.Want)
		}
	}
}

func TestDragontoothPerftMatchesKnownCounts(t *testing.T) {
	n, err := crosscheck.Dragontooth{}.Perft(chessmg.FENStartPos, 3)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8902 {
		t.Fatalf("perft(3) = %d", n)
	}
	if got := chessmg.Perft(mustFEN(t, chessmg.FENStartPos), 3); got != n {
		t.Fatalf("chessmg perft(3) = %d, dragontoothmg %d", got, n)
	}
}

func TestRandomWalksAgree(t *testing.T) {
	games, plies := 20, 120
	if testing.Short() {
		games = 3
	}
	check := crosscheck.All(
		crosscheck.LegalCheck(crosscheck.Dragontooth{}, crosscheck.Corentings{}),
		crosscheck.SANCheck(crosscheck.Corentings{}),
	)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < games; i++ {
		start := mustFEN(t, positions[i%len(positions)].fen)
		if err := crosscheck.Walk(context.Background(), start, rng, plies, check); err != nil {
			t.Fatalf("walk %d: %v", i, err)
		}
	}
}

func TestWalkStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := crosscheck.Walk(ctx, chessmg.NewPosition(), rand.New(rand.NewSource(1)), 10,
		func(*chessmg.Position) error { calls++; return nil })
	if err != context.Canceled || calls != 0 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestWalkVisitsEveryPly(t *testing.T) {
	calls := 0
	err := crosscheck.Walk(context.Background(), chessmg.NewPosition(), rand.New(rand.NewSource(1)), 10,
		func(p *chessmg.Position) error {
			calls++
			return p.Validate()
		})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 11 {
		t.Fatalf("check ran %d times", calls)
	}
}

func TestBadFENIsAnError(t *testing.T) {
	if _, err := (crosscheck.Corentings{}).LegalMoves("not a fen"); err == nil {
		t.Fatal("corentings accepted garbage")
	}
}
