package chessmg

import "fmt"

// Status is the classification of a position.
type Status uint8

const (
	statusUnknown Status = iota // not yet classified
	InProgress
	Check
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
	DrawInsufficientMaterial
)

var statusNames = [...]string{
	statusUnknown:            "unknown",
	InProgress:               "in progress",
	Check:                    "check",
	Checkmate:                "checkmate",
	Stalemate:                "stalemate",
	DrawFiftyMove:            "draw by fifty-move rule",
	DrawRepetition:           "draw by repetition",
	DrawInsufficientMaterial: "draw by insufficient material",
}

func (s Status) String() string {
	if int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", s)
	}
	return statusNames[s]
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool { return s >= Checkmate }

// IsDraw reports whether the status ends the game without a winner.
func (s Status) IsDraw() bool { return s >= Stalemate }

// Outcome is the result of a finished game from the board's point of view.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// DrawMode controls whether a draw rule ends the game on its own, only when
// a player claims it, or not at all.
type DrawMode uint8

const (
	DrawAutomatic DrawMode = iota
	DrawClaimable
	DrawOff
)

// Rules selects which optional draw rules the classifier applies.
type Rules struct {
	FiftyMove            DrawMode
	Repetition           DrawMode
	InsufficientMaterial bool
}

// DefaultRules ends the game at the fifty-move limit, lets players claim
// threefold repetition, and recognises dead positions.
var DefaultRules = Rules{
	FiftyMove:            DrawAutomatic,
	Repetition:           DrawClaimable,
	InsufficientMaterial: true,
}

// Classify evaluates the position under DefaultRules.
func (p *Position) Classify() Status { return p.ClassifyWith(DefaultRules) }

// ClassifyWith evaluates the position. Mate and stalemate take precedence
// over the draw rules; repetition needs a game history and is handled by
// Game.
func (p *Position) ClassifyWith(r Rules) Status {
	inCheck := p.board.InCheck(p.sideToMove)
	if !p.HasLegalMoves() {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if r.FiftyMove == DrawAutomatic && p.halfmoveClock >= 100 {
		return DrawFiftyMove
	}
	if r.InsufficientMaterial && p.InsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	if inCheck {
		return Check
	}
	return InProgress
}

// Status returns the default-rules classification, computing and caching it
// on first use.
func (p *Position) Status() Status {
	if p.status == statusUnknown {
		p.status = p.Classify()
	}
	return p.status
}

// Winner reports the outcome of a terminal status reached with toMove on
// move. It is NoOutcome while the game is running.
func (s Status) Winner(toMove Color) Outcome {
	switch {
	case s == Checkmate && toMove == White:
		return BlackWins
	case s == Checkmate:
		return WhiteWins
	case s.IsDraw():
		return Draw
	}
	return NoOutcome
}

// Outcome is the game result implied by the position's own status.
func (p *Position) Outcome() Outcome { return p.Status().Winner(p.sideToMove) }

// InsufficientMaterial reports positions where neither side can mate: bare
// kings, a single minor piece, or bishops only, all on one square colour.
func (p *Position) InsufficientMaterial() bool {
	b := &p.board
	for c := White; c <= Black; c++ {
		if b.pieces[c][PieceTypePawn]|b.pieces[c][PieceTypeRook]|b.pieces[c][PieceTypeQueen] != 0 {
			return false
		}
	}
	knights := b.pieces[White][PieceTypeKnight] | b.pieces[Black][PieceTypeKnight]
	bishops := b.pieces[White][PieceTypeBishop] | b.pieces[Black][PieceTypeBishop]
	minors := knights.Count() + bishops.Count()
	if minors <= 1 {
		return true
	}
	if knights != 0 {
		return false
	}
	return bishops&LightSquares == 0 || bishops&DarkSquares == 0
}
