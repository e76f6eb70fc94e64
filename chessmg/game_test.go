package chessmg_test

import (
	"errors"
	"testing"

	"bitchess/chessmg"
)

func TestScenarioKingPawnOpening(t *testing.T) {
	g := chessmg.NewGame()
	if n := len(g.LegalMoves()); n != 20 {
		t.Fatalf("start has %d moves", n)
	}
	playUCI(t, g, "e2e4")
	pos := g.Position()
	if pos.SideToMove() != chessmg.Black || pos.EnPassantSquare() != chessmg.E3 {
		t.Fatalf("after e2e4: %s", g.FEN())
	}
	if pos.PieceAt(chessmg.E4) != chessmg.WhitePawn || pos.PieceAt(chessmg.E2) != chessmg.NoPiece {
		t.Fatalf("pawn not moved: %s", g.FEN())
	}
	if n := len(g.LegalMoves()); n != 20 {
		t.Fatalf("black has %d replies", n)
	}
	if g.Status() != chessmg.InProgress {
		t.Fatalf("status %v", g.Status())
	}
}

func TestScenarioFoolsMate(t *testing.T) {
	g := chessmg.NewGame()
	playUCI(t, g, "f2f3 e7e5 g2g4 d8h4")
	if s := g.Status(); s != chessmg.Checkmate {
		t.Fatalf("status %v, want checkmate", s)
	}
	if g.Outcome() != chessmg.BlackWins {
		t.Fatalf("outcome %v", g.Outcome())
	}
	if !g.InCheck(chessmg.White) {
		t.Fatalf("white not in check")
	}
	if ms := g.LegalMoves(); ms != nil {
		t.Fatalf("moves after mate: %v", moveStrings(ms))
	}
	if err := g.ApplyUCI("e1f2"); !errors.Is(err, chessmg.ErrGameOver) {
		t.Fatalf("move after mate: %v", err)
	}
	if got := g.FEN(); got != "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3" {
		t.Fatalf("final FEN %s", got)
	}
}

func TestScenarioCastling(t *testing.T) {
	g := chessmg.NewGame()
	playUCI(t, g, "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 e1g1")
	pos := g.Position()
	if pos.PieceAt(chessmg.G1) != chessmg.WhiteKing || pos.PieceAt(chessmg.F1) != chessmg.WhiteRook {
		t.Fatalf("after O-O: %s", g.FEN())
	}
	if pos.CastlingRights() != chessmg.CastleBlackKingside|chessmg.CastleBlackQueenside {
		t.Fatalf("rights %v", pos.CastlingRights())
	}
	last := g.Moves()[len(g.Moves())-1]
	if last.Flag() != chessmg.FlagCastleKingside {
		t.Fatalf("last move flag %v", last.Flag())
	}
}

func TestScenarioCastlingAfterRookMoved(t *testing.T) {
	g := chessmg.NewGame()
	playUCI(t, g, "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 h1g1 f8c5 g1h1 d7d6")
	before := g.FEN()
	err := g.ApplyUCI("e1g1")
	var ime *chessmg.IllegalMoveError
	if !errors.As(err, &ime) {
		t.Fatalf("e1g1 after rook moved: err = %v", err)
	}
	if !errors.Is(err, chessmg.ErrIllegalMove) {
		t.Fatalf("error does not wrap ErrIllegalMove")
	}
	if g.FEN() != before {
		t.Fatalf("failed move changed the game")
	}
}

func TestEnPassantWindow(t *testing.T) {
	g := chessmg.NewGame()
	playUCI(t, g, "e2e4 a7a6 e4e5 d7d5")
	if !containsMove(g.LegalMoves(), "e5d6") {
		t.Fatalf("en passant missing right after the double push")
	}
	playUCI(t, g, "b1c3 a6a5")
	if containsMove(g.LegalMoves(), "e5d6") {
		t.Fatalf("en passant still offered a move later")
	}
	if err := g.ApplyUCI("e5d6"); !errors.Is(err, chessmg.ErrIllegalMove) {
		t.Fatalf("late en passant: %v", err)
	}
}

func TestUndo(t *testing.T) {
	g := chessmg.NewGame()
	if err := g.Undo(); !errors.Is(err, chessmg.ErrNoMoveToUndo) {
		t.Fatalf("undo on fresh game: %v", err)
	}
	playUCI(t, g, "e2e4 e7e5 g1f3")
	afterTwo := chessmg.NewGame()
	playUCI(t, afterTwo, "e2e4 e7e5")
	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if g.Position() != afterTwo.Position() {
		t.Fatalf("undo: %s, want %s", g.FEN(), afterTwo.FEN())
	}
	for i := 0; i < 2; i++ {
		if err := g.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	if g.FEN() != chessmg.FENStartPos || len(g.Moves()) != 0 {
		t.Fatalf("undo to start: %s", g.FEN())
	}
}

func TestUndoAfterMate(t *testing.T) {
	g := chessmg.NewGame()
	playUCI(t, g, "f2f3 e7e5 g2g4 d8h4")
	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if g.Status() != chessmg.InProgress {
		t.Fatalf("status after undoing mate: %v", g.Status())
	}
}

const knightShuffle = "g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8"

func TestThreefoldRepetitionClaim(t *testing.T) {
	g := chessmg.NewGame()
	if err := g.ClaimDraw(); !errors.Is(err, chessmg.ErrDrawNotClaimable) {
		t.Fatalf("claim at start: %v", err)
	}
	playUCI(t, g, knightShuffle)
	if g.Repetitions() != 3 {
		t.Fatalf("repetitions = %d", g.Repetitions())
	}
	if g.Status() != chessmg.InProgress {
		t.Fatalf("claimable repetition ended the game: %v", g.Status())
	}
	if !g.CanClaimDraw() {
		t.Fatalf("draw not claimable after threefold")
	}
	if err := g.ClaimDraw(); err != nil {
		t.Fatal(err)
	}
	if g.Status() != chessmg.DrawRepetition || g.Outcome() != chessmg.Draw {
		t.Fatalf("after claim: %v %v", g.Status(), g.Outcome())
	}
	if err := g.ApplyUCI("e2e4"); !errors.Is(err, chessmg.ErrGameOver) {
		t.Fatalf("move after claimed draw: %v", err)
	}
}

func TestThreefoldRepetitionAutomatic(t *testing.T) {
	rules := chessmg.DefaultRules
	rules.Repetition = chessmg.DrawAutomatic
	g := chessmg.NewGame(chessmg.WithRules(rules))
	playUCI(t, g, "g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1")
	if g.Status() != chessmg.InProgress {
		t.Fatalf("drawn too early: %v", g.Status())
	}
	playUCI(t, g, "f6g8")
	if g.Status() != chessmg.DrawRepetition {
		t.Fatalf("status %v, want repetition draw", g.Status())
	}
	if g.CanClaimDraw() {
		t.Fatalf("finished game offers a claim")
	}
}

// fiftyMoveLine has its last pawn move at ply 16, then 100 quiet piece moves.
const fiftyMoveLine = "d2d4 d7d5 f2f4 f7f5 e2e3 e7e6 g2g3 g7g6 h2h4 h7h5 c2c3 c7c6 b2b4 b7b5 a2a3 a7a6 " +
	"b1d2 g8e7 f1g2 c8b7 e1f2 e8f7 d1e2 f8g7 h1h3 a8a7 c1b2 b8d7 a1c1 b7c8 c1b1 d7f8 g1f3 f8h7 " +
	"d2f1 e7g8 f1d2 g8e7 d2f1 e7g8 f1h2 g8h6 f3g5 f7f8 e2c2 f8e7 b1d1 c8b7 f2e2 g7f8 g2f3 h7f6 " +
	"c2c1 d8c8 c1a1 c8a8 d1g1 b7c8 h2f1 h8h7 h3h2 h7h8 f1d2 f8g7 d2f1 c8d7 a1c1 a8b7 b2a1 a7a8 " +
	"f1d2 h8c8 g1g2 c8f8 h2h1 f8g8 g2g1 g8h8 g5h3 h6g8 d2f1 g8h6 f1h2 f6g4 h2f1 g4f6 f1d2 g7f8 " +
	"g1e1 b7c7 h1g1 f8g7 f3h1 h8b8 e1f1 d7e8 d2b3 e8d7 b3c5 f6e4 h3g5 h6g4 c5b3 e4f6 g5h3 g4h6 " +
	"h1f3 f6g8 g1h1 g7f6 f1f2 e7d8 e2f1 d8c8 f1g2 c8b7"

func TestFiftyMoveRuleAutomatic(t *testing.T) {
	g := chessmg.NewGame()
	playUCI(t, g, fiftyMoveLine)
	pos := g.Position()
	if pos.HalfmoveClock() != 100 {
		t.Fatalf("halfmove clock %d", pos.HalfmoveClock())
	}
	if g.Status() != chessmg.DrawFiftyMove {
		t.Fatalf("status %v, want fifty-move draw", g.Status())
	}
	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if g.Status() == chessmg.DrawFiftyMove {
		t.Fatalf("draw declared at 99 half-moves")
	}
}

func TestFiftyMoveRuleClaimable(t *testing.T) {
	rules := chessmg.DefaultRules
	rules.FiftyMove = chessmg.DrawClaimable
	g := chessmg.NewGame(chessmg.WithRules(rules))
	playUCI(t, g, fiftyMoveLine)
	if g.Status().IsTerminal() {
		t.Fatalf("claimable fifty-move rule ended the game: %v", g.Status())
	}
	if err := g.ClaimDraw(); err != nil {
		t.Fatal(err)
	}
	if g.Status() != chessmg.DrawFiftyMove {
		t.Fatalf("status %v after claim", g.Status())
	}
}

func TestGamePositionIsACopy(t *testing.T) {
	g := chessmg.NewGame()
	snap := g.Position()
	playUCI(t, g, "d2d4")
	if snap.FEN() != chessmg.FENStartPos {
		t.Fatalf("snapshot changed to %s", snap.FEN())
	}
}

func TestApplySAN(t *testing.T) {
	g := chessmg.NewGame()
	for _, san := range []string{"f3", "e5", "g4", "Qh4#"} {
		if err := g.ApplySAN(san); err != nil {
			t.Fatalf("%s: %v", san, err)
		}
	}
	if g.Status() != chessmg.Checkmate {
		t.Fatalf("status %v", g.Status())
	}
}
