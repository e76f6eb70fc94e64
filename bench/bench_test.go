package bench

import (
	"testing"

	"bitchess/chessmg"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)

func load(b *testing.B, fen string) chessmg.Position {
	p, err := chessmg.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	return p
}

func benchLegal(b *testing.B, fen string) {
	p := load(b, fen)
	buf := make([]chessmg.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = p.GenerateMovesInto(buf)
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B)  { benchLegal(b, chessmg.FENStartPos) }
func BenchmarkLegalMoves_Kiwipete(b *testing.B) { benchLegal(b, kiwipete) }
func BenchmarkLegalMoves_Pos6(b *testing.B)     { benchLegal(b, pos6) }

func BenchmarkPseudoMoves_Kiwipete(b *testing.B) {
	p := load(b, kiwipete)
	buf := make([]chessmg.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = p.GeneratePseudoMovesInto(buf)
	}
}

func BenchmarkMakeUnmake_AllMoves_Kiwipete(b *testing.B) {
	p := load(b, kiwipete)
	moves := p.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			st := p.MakeMove(m)
			p.UnmakeMove(st)
		}
	}
}

func BenchmarkApply_Initial(b *testing.B) {
	p := load(b, chessmg.FENStartPos)
	m, err := p.ResolveMove("e2e4")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Apply(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStatus_Kiwipete(b *testing.B) {
	p := load(b, kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Classify()
	}
}

func benchPerft(b *testing.B, fen string, depth int) {
	p := load(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chessmg.Perft(p, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B)  { benchPerft(b, chessmg.FENStartPos, 4) }
func BenchmarkPerft_Kiwipete_D3(b *testing.B) { benchPerft(b, kiwipete, 3) }
