package selfplay

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bitchess/chessmg"
)

// Result summarises a finished (or cut off) game.
type Result struct {
	GameID    string
	Status    chessmg.Status
	Outcome   chessmg.Outcome
	Plies     int
	Moves     []chessmg.Move
	SAN       []string
	FinalFEN  string
	Truncated bool // stopped by the ply limit, not by the rules
}

// Observer is called after every ply with the move just played.
type Observer func(ply int, m chessmg.Move, g *chessmg.Game)

// Runner plays games between a white and a black policy.
type Runner struct {
	white, black Policy
	logger       *zap.Logger
	maxPlies     int
	gameID       string
	rules        chessmg.Rules
	observer     Observer
	claimDraws   bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMaxPlies stops a game after n plies; n <= 0 means no limit.
func WithMaxPlies(n int) Option {
	return func(r *Runner) { r.maxPlies = n }
}

// WithGameID fixes the game ID instead of generating a UUID.
func WithGameID(id string) Option {
	return func(r *Runner) { r.gameID = id }
}

// WithRules sets the draw rules for games started by Run.
func WithRules(rules chessmg.Rules) Option {
	return func(r *Runner) { r.rules = rules }
}

// WithObserver registers a per-ply callback.
func WithObserver(o Observer) Option {
	return func(r *Runner) { r.observer = o }
}

// WithBlack gives Black its own policy; by default both sides share one.
func WithBlack(p Policy) Option {
	return func(r *Runner) { r.black = p }
}

// WithClaimDraws makes players claim a draw as soon as one is available.
func WithClaimDraws() Option {
	return func(r *Runner) { r.claimDraws = true }
}

// NewRunner returns a Runner in which policy plays both sides unless
// WithBlack says otherwise.
func NewRunner(policy Policy, opts ...Option) *Runner {
	r := &Runner{
		white:  policy,
		black:  policy,
		logger: zap.NewNop(),
		rules:  chessmg.DefaultRules,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays one game from the starting position.
func Run(ctx context.Context, policy Policy, opts ...Option) (Result, error) {
	r := NewRunner(policy, opts...)
	return r.Play(ctx, chessmg.NewGame(chessmg.WithRules(r.rules)))
}

// Play continues g until the rules end it, the ply limit is hit or ctx is
// done. The partial result is returned alongside any error.
func (r *Runner) Play(ctx context.Context, g *chessmg.Game) (Result, error) {
	res := Result{GameID: r.gameID}
	if res.GameID == "" {
		res.GameID = uuid.New().String()
	}
	log := r.logger.With(zap.String("game_id", res.GameID))
	log.Info("game started", zap.String("fen", g.FEN()))

	finish := func() {
		res.Status = g.Status()
		res.Outcome = g.Outcome()
		res.FinalFEN = g.FEN()
	}

	for {
		if err := ctx.Err(); err != nil {
			finish()
			log.Warn("game interrupted", zap.Int("plies", res.Plies), zap.Error(err))
			return res, err
		}
		if g.Status().IsTerminal() {
			break
		}
		if r.claimDraws && g.CanClaimDraw() {
			if err := g.ClaimDraw(); err != nil {
				finish()
				return res, fmt.Errorf("claim draw: %w", err)
			}
			log.Debug("draw claimed", zap.Int("ply", res.Plies))
			break
		}
		if r.maxPlies > 0 && res.Plies >= r.maxPlies {
			res.Truncated = true
			break
		}

		pos := g.Position()
		policy := r.white
		if pos.SideToMove() == chessmg.Black {
			policy = r.black
		}
		m, err := policy.Choose(&pos, g.LegalMoves())
		if err != nil {
			finish()
			return res, fmt.Errorf("ply %d: choose move: %w", res.Plies+1, err)
		}
		san := pos.SAN(m)
		if err := g.Apply(m); err != nil {
			finish()
			return res, fmt.Errorf("ply %d: %w", res.Plies+1, err)
		}
		res.Plies++
		res.Moves = append(res.Moves, m)
		res.SAN = append(res.SAN, san)
		log.Debug("move played",
			zap.Int("ply", res.Plies),
			zap.String("move", m.String()),
			zap.String("san", san),
		)
		if r.observer != nil {
			r.observer(res.Plies, m, g)
		}
	}

	finish()
	log.Info("game finished",
		zap.Int("plies", res.Plies),
		zap.String("status", res.Status.String()),
		zap.String("result", res.Outcome.String()),
		zap.Bool("truncated", res.Truncated),
	)
	return res, nil
}
