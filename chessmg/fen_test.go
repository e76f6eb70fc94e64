package chessmg_test

import (
	"errors"
	"testing"

	"bitchess/chessmg"
)

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		chessmg.FENStartPos,
		fenKiwipete,
		fenPosition3,
		fenPosition4,
		fenPosition5,
		fenPosition6,
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	} {
		p := mustFEN(t, fen)
		if got := p.FEN(); got != fen {
			t.Errorf("FEN round trip:\n got %s\nwant %s", got, fen)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", fen, err)
		}
	}
}

func TestFENDefaultsClocks(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - -")
	if p.HalfmoveClock() != 0 || p.FullmoveNumber() != 1 {
		t.Fatalf("clocks = %d/%d", p.HalfmoveClock(), p.FullmoveNumber())
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"five fields", "4k3/8/8/8/8/8/8/4K3 w - - 0"},
		{"seven ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1"},
		{"long rank", "4k4/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"short rank", "4k2/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"unknown piece", "4k3/8/8/8/8/8/8/4KX2 w - - 0 1"},
		{"no black king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"pawn on rank 8", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"pawn on rank 1", "4k3/8/8/8/8/8/8/p3K3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling char", "4k3/8/8/8/8/8/8/4K3 w X - 0 1"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1"},
		{"castling king moved", "r3k2r/8/8/8/8/8/8/R4K1R w Q - 0 1"},
		{"ep wrong rank", "4k3/8/8/3pP3/8/8/8/4K3 w - d5 0 1"},
		{"ep without pawn", "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1"},
		{"ep bad square", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"negative halfmove", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"non-numeric clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chessmg.ParseFEN(tc.fen)
			if !errors.Is(err, chessmg.ErrInvalidPosition) {
				t.Fatalf("ParseFEN(%q) err = %v, want ErrInvalidPosition", tc.fen, err)
			}
			var ipe *chessmg.InvalidPositionError
			if !errors.As(err, &ipe) || ipe.FEN != tc.fen || ipe.Reason == "" {
				t.Fatalf("err = %#v", err)
			}
		})
	}
}

func TestLoadGameWrapsFENError(t *testing.T) {
	_, err := chessmg.LoadGame("not a fen")
	if !errors.Is(err, chessmg.ErrInvalidPosition) {
		t.Fatalf("LoadGame err = %v", err)
	}
}
