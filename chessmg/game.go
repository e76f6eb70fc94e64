package chessmg

import "fmt"

// Game drives a Position through a sequence of moves, keeping the undo
// stack and the zobrist history needed for repetition. A Game is owned by a
// single goroutine; separate Games share nothing.
type Game struct {
	pos     Position
	rules   Rules
	stack   []MoveState
	history []uint64 // keys of every position so far, current one last
	claimed Status   // draw claimed by a player, statusUnknown if none
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithRules replaces DefaultRules for the game.
func WithRules(r Rules) GameOption {
	return func(g *Game) { g.rules = r }
}

// NewGame starts a game from the standard position.
func NewGame(opts ...GameOption) *Game {
	return newGame(NewPosition(), opts)
}

// LoadGame starts a game from a FEN string.
func LoadGame(fen string, opts ...GameOption) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	return newGame(pos, opts), nil
}

func newGame(pos Position, opts []GameOption) *Game {
	g := &Game{pos: pos, rules: DefaultRules}
	for _, opt := range opts {
		opt(g)
	}
	g.history = append(g.history, pos.key)
	return g
}

// Position returns a copy of the current position.
func (g *Game) Position() Position { return g.pos }

// Rules returns the draw rules in force.
func (g *Game) Rules() Rules { return g.rules }

// FEN returns the FEN of the current position.
func (g *Game) FEN() string { return g.pos.FEN() }

// SideToMove reports which side is to play.
func (g *Game) SideToMove() Color { return g.pos.sideToMove }

// LegalMoves returns the legal moves of the current position, or nil once
// the game is over.
func (g *Game) LegalMoves() []Move {
	if g.Status().IsTerminal() {
		return nil
	}
	return g.pos.LegalMoves()
}

// InCheck reports whether c's king is attacked.
func (g *Game) InCheck(c Color) bool { return g.pos.InCheck(c) }

// Moves returns the moves played so far, oldest first.
func (g *Game) Moves() []Move {
	out := make([]Move, len(g.stack))
	for i, st := range g.stack {
		out[i] = st.move
	}
	return out
}

// Status classifies the current position under the game's rules, taking
// repetition history and claimed draws into account.
func (g *Game) Status() Status {
	if g.claimed != statusUnknown {
		return g.claimed
	}
	s := g.pos.ClassifyWith(g.rules)
	if s.IsTerminal() {
		return s
	}
	if g.rules.Repetition == DrawAutomatic && g.Repetitions() >= 3 {
		return DrawRepetition
	}
	return s
}

// Outcome returns the game result, NoOutcome while play continues.
func (g *Game) Outcome() Outcome { return g.Status().Winner(g.pos.sideToMove) }

// Repetitions counts how often the current position has occurred, itself
// included. Positions are compared by zobrist key.
func (g *Game) Repetitions() int {
	n := 0
	for _, k := range g.history {
		if k == g.pos.key {
			n++
		}
	}
	return n
}

// Apply plays m if it is legal. Illegal moves return an *IllegalMoveError
// and leave the game untouched; moves after the game ended return
// ErrGameOver.
func (g *Game) Apply(m Move) error {
	if s := g.Status(); s.IsTerminal() {
		return fmt.Errorf("%w: %v", ErrGameOver, s)
	}
	legal, ok := g.pos.findLegal(m.From(), m.To(), m.PromotionPieceType())
	if !ok {
		return &IllegalMoveError{Move: m, FEN: g.pos.FEN()}
	}
	g.push(legal)
	return nil
}

// ApplyUCI plays a move given in coordinate notation.
func (g *Game) ApplyUCI(s string) error {
	if st := g.Status(); st.IsTerminal() {
		return fmt.Errorf("%w: %v", ErrGameOver, st)
	}
	m, err := g.pos.ResolveMove(s)
	if err != nil {
		return err
	}
	g.push(m)
	return nil
}

// ApplySAN plays a move given in standard algebraic notation.
func (g *Game) ApplySAN(s string) error {
	if st := g.Status(); st.IsTerminal() {
		return fmt.Errorf("%w: %v", ErrGameOver, st)
	}
	m, err := g.pos.ParseSAN(s)
	if err != nil {
		return err
	}
	g.push(m)
	return nil
}

func (g *Game) push(m Move) {
	g.stack = append(g.stack, g.pos.MakeMove(m))
	g.history = append(g.history, g.pos.key)
	g.claimed = statusUnknown
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	n := len(g.stack)
	if n == 0 {
		return ErrNoMoveToUndo
	}
	g.pos.UnmakeMove(g.stack[n-1])
	g.stack = g.stack[:n-1]
	g.history = g.history[:len(g.history)-1]
	g.claimed = statusUnknown
	return nil
}

// CanClaimDraw reports whether the side to move may claim a draw under a
// claimable fifty-move or repetition rule.
func (g *Game) CanClaimDraw() bool {
	return g.claimableDraw() != statusUnknown
}

func (g *Game) claimableDraw() Status {
	if g.Status().IsTerminal() {
		return statusUnknown
	}
	if g.rules.FiftyMove == DrawClaimable && g.pos.halfmoveClock >= 100 {
		return DrawFiftyMove
	}
	if g.rules.Repetition == DrawClaimable && g.Repetitions() >= 3 {
		return DrawRepetition
	}
	return statusUnknown
}

// ClaimDraw ends the game as a draw when a claim is available.
func (g *Game) ClaimDraw() error {
	s := g.claimableDraw()
	if s == statusUnknown {
		return ErrDrawNotClaimable
	}
	g.claimed = s
	return nil
}
