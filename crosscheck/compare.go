package crosscheck

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/exp/slices"

	"bitchess/chessmg"
)

// Diff lists the moves on which chessmg and a reference disagree.
type Diff struct {
	FEN       string
	Reference string
	Missing   []string // generated by the reference only
	Extra     []string // generated by chessmg only
}

func (d Diff) Empty() bool { return len(d.Missing) == 0 && len(d.Extra) == 0 }

func (d Diff) String() string {
	return fmt.Sprintf("%s vs %s in %q: missing %v, extra %v",
		"chessmg", d.Reference, d.FEN, d.Missing, d.Extra)
}

// setDiff returns the members of a not in b and of b not in a, sorted.
func setDiff(a, b []string) (onlyA, onlyB []string) {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	for _, s := range a {
		if _, found := slices.BinarySearch(b, s); !found {
			onlyA = append(onlyA, s)
		}
	}
	for _, s := range b {
		if _, found := slices.BinarySearch(a, s); !found {
			onlyB = append(onlyB, s)
		}
	}
	return onlyA, onlyB
}

// CompareLegal diffs the legal moves of p against ref.
func CompareLegal(p *chessmg.Position, ref Reference) (Diff, error) {
	fen := p.FEN()
	want, err := ref.LegalMoves(fen)
	if err != nil {
		return Diff{}, err
	}
	got := make([]string, 0, len(want))
	for _, m := range p.LegalMoves() {
		got = append(got, m.String())
	}
	extra, missing := setDiff(got, want)
	return Diff{FEN: fen, Reference: ref.Name(), Missing: missing, Extra: extra}, nil
}

// SANMismatch is one move whose SAN differs from the reference.
type SANMismatch struct {
	Move      string
	Got, Want string
}

// CompareSAN checks the SAN of every legal move of p against corentings/chess.
func CompareSAN(p *chessmg.Position, ref Corentings) ([]SANMismatch, error) {
	want, err := ref.SAN(p.FEN())
	if err != nil {
		return nil, err
	}
	var out []SANMismatch
	for _, m := range p.LegalMoves() {
		uci := m.String()
		got := p.SAN(m)
		if w, ok := want[uci]; !ok || w != got {
			out = append(out, SANMismatch{Move: uci, Got: got, Want: w})
		}
	}
	slices.SortFunc(out, func(a, b SANMismatch) int { return strings.Compare(a.Move, b.Move) })
	return out, nil
}

// DivideMismatch is a root move whose subtree count differs.
type DivideMismatch struct {
	Move      string
	Got, Want uint64
}

// CompareDivide runs perft divide on both generators and reports the root
// moves whose counts differ, including moves only one side generates.
func CompareDivide(p chessmg.Position, depth int, ref Dragontooth) ([]DivideMismatch, error) {
	want, err := ref.Divide(p.FEN(), depth)
	if err != nil {
		return nil, err
	}
	got := make(map[string]uint64)
	for m, n := range chessmg.PerftDivide(p, depth) {
		got[m.String()] = n
	}
	var out []DivideMismatch
	for mv, n := range got {
		if want[mv] != n {
			out = append(out, DivideMismatch{Move: mv, Got: n, Want: want[mv]})
		}
	}
	for mv, n := range want {
		if _, ok := got[mv]; !ok {
			out = append(out, DivideMismatch{Move: mv, Want: n})
		}
	}
	slices.SortFunc(out, func(a, b DivideMismatch) int { return strings.Compare(a.Move, b.Move) })
	return out, nil
}

// Check inspects one position of a walk.
type Check func(p *chessmg.Position) error

// Walk plays up to plies random legal moves from start, calling check on
// every position including the first. It stops early at a terminal
// position, on the first check error, or when ctx is done.
func Walk(ctx context.Context, start chessmg.Position, rng *rand.Rand, plies int, check Check) error {
	p := start
	for ply := 0; ; ply++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := check(&p); err != nil {
			return fmt.Errorf("ply %d: %w", ply, err)
		}
		if ply == plies {
			return nil
		}
		moves := p.LegalMoves()
		if len(moves) == 0 {
			return nil
		}
		p.MakeMove(moves[rng.Intn(len(moves))])
	}
}

// LegalCheck returns a Check that fails on any legal-move disagreement
// with refs.
func LegalCheck(refs ...Reference) Check {
	return func(p *chessmg.Position) error {
		for _, ref := range refs {
			d, err := CompareLegal(p, ref)
			if err != nil {
				return err
			}
			if !d.Empty() {
				return fmt.Errorf("legal moves differ: %v", d)
			}
		}
		return nil
	}
}

// SANCheck returns a Check that fails on any SAN disagreement.
func SANCheck(ref Corentings) Check {
	return func(p *chessmg.Position) error {
		ms, err := CompareSAN(p, ref)
		if err != nil {
			return err
		}
		if len(ms) > 0 {
			return fmt.Errorf("SAN differs in %q: %+v", p.FEN(), ms)
		}
		return nil
	}
}

// All combines checks, stopping at the first failure.
func All(checks ...Check) Check {
	return func(p *chessmg.Position) error {
		for _, c := range checks {
			if err := c(p); err != nil {
				return err
			}
		}
		return nil
	}
}
