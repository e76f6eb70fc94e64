package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"bitchess/chessmg"
	"bitchess/crosscheck"
)

func main() {
	fen := flag.String("fen", chessmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	verify := flag.Bool("verify", false, "Compare the root divide against dragontoothmg")
	verbose := flag.Bool("verbose", false, "Debug logging")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := chessmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	logger.Debug("position loaded", zap.String("fen", pos.FEN()), zap.Int("depth", *depth))

	if *verify {
		ms, err := crosscheck.CompareDivide(pos, *depth, crosscheck.Dragontooth{})
		if err != nil {
			logger.Fatal("verify failed", zap.Error(err))
		}
		for _, m := range ms {
			fmt.Printf("MISMATCH %s: got %d want %d\n", m.Move, m.Got, m.Want)
		}
		if len(ms) > 0 {
			os.Exit(1)
		}
		fmt.Println("divide matches dragontoothmg")
		return
	}

	if *divide {
		printDivide(chessmg.PerftDivide(pos, *depth))
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += chessmg.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()
	logger.Debug("perft done", zap.Uint64("nodes", totalNodes), zap.Duration("elapsed", elapsed))

	// Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

type divideEntry struct {
	move  string
	nodes uint64
}

func printDivide(div map[chessmg.Move]uint64) {
	entries := make([]divideEntry, 0, len(div))
	var sum uint64
	for m, n := range div {
		entries = append(entries, divideEntry{m.String(), n})
		sum += n
	}
	slices.SortFunc(entries, func(a, b divideEntry) int { return strings.Compare(a.move, b.move) })
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.move, e.nodes)
	}
	fmt.Printf("Total: %d\n", sum)
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
