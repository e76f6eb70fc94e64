package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"bitchess/chessmg"
	"bitchess/crosscheck"
)

func main() {
	fen := flag.String("fen", chessmg.FENStartPos, "Starting position of every walk")
	walks := flag.Int("walks", 100, "Number of random walks")
	plies := flag.Int("plies", 200, "Maximum plies per walk")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	san := flag.Bool("san", true, "Also compare SAN against corentings/chess")
	verbose := flag.Bool("verbose", false, "Debug logging")
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	if !*verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	start, err := chessmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	checks := []crosscheck.Check{crosscheck.LegalCheck(crosscheck.Dragontooth{}, crosscheck.Corentings{})}
	if *san {
		checks = append(checks, crosscheck.SANCheck(crosscheck.Corentings{}))
	}
	positions := 0
	check := crosscheck.All(append(checks, func(*chessmg.Position) error {
		positions++
		return nil
	})...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rng := rand.New(rand.NewSource(*seed))
	logger.Info("crosscheck started", zap.Int64("seed", *seed), zap.Int("walks", *walks))
	for i := 0; i < *walks; i++ {
		if err := crosscheck.Walk(ctx, start, rng, *plies, check); err != nil {
			logger.Error("walk failed", zap.Int("walk", i), zap.Error(err))
			os.Exit(1)
		}
		logger.Debug("walk ok", zap.Int("walk", i))
	}
	logger.Info("crosscheck passed", zap.Int("positions", positions))
}
