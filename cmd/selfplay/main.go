package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"

	"bitchess/chessmg"
	"bitchess/render"
	"bitchess/selfplay"
)

func main() {
	fen := flag.String("fen", chessmg.FENStartPos, "Starting position")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	games := flag.Int("games", 1, "Number of games to play")
	maxPlies := flag.Int("max-plies", 0, "Stop a game after N plies (0 = no limit)")
	captures := flag.Bool("captures", false, "Prefer captures over quiet moves")
	claim := flag.Bool("claim", false, "Claim draws as soon as they are available")
	show := flag.Bool("show", false, "Print the board after every game")
	compact := flag.Bool("compact", false, "Use the compact board diagram")
	showOnly := flag.Bool("board", false, "Print the starting board and exit")
	verbose := flag.Bool("verbose", false, "Log every move")
	flag.Parse()

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	start, err := chessmg.LoadGame(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if *showOnly {
		pos := start.Position()
		draw(&pos, *compact)
		return
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("self-play", zap.Int64("seed", *seed), zap.Int("games", *games))

	var policy selfplay.Policy = selfplay.NewSeededRandom(*seed)
	if *captures {
		policy = selfplay.PreferCaptures(policy)
	}
	opts := []selfplay.Option{selfplay.WithLogger(logger), selfplay.WithMaxPlies(*maxPlies)}
	if *claim {
		opts = append(opts, selfplay.WithClaimDraws())
	}
	runner := selfplay.NewRunner(policy, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tally := map[chessmg.Outcome]int{}
	for i := 0; i < *games; i++ {
		g, _ := chessmg.LoadGame(*fen)
		res, err := runner.Play(ctx, g)
		if err != nil {
			logger.Error("game aborted", zap.String("game_id", res.GameID), zap.Error(err))
			break
		}
		tally[res.Outcome]++
		fmt.Printf("%s %s (%s, %d plies)\n", res.Outcome, strings.Join(res.SAN, " "), res.Status, res.Plies)
		if *show {
			final := g.Position()
			draw(&final, *compact)
		}
	}
	if *games > 1 {
		fmt.Printf("white %d, black %d, draws %d, unfinished %d\n",
			tally[chessmg.WhiteWins], tally[chessmg.BlackWins], tally[chessmg.Draw], tally[chessmg.NoOutcome])
	}
}

func draw(p *chessmg.Position, compact bool) {
	if compact {
		fmt.Print(render.Compact(p))
		return
	}
	_ = render.Fprint(os.Stdout, p)
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
