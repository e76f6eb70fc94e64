// Package selfplay plays games between move-selection policies.
package selfplay

import (
	"errors"
	"math/rand"

	"bitchess/chessmg"
)

// ErrNoLegalMoves is returned by a policy asked to choose from nothing.
var ErrNoLegalMoves = errors.New("selfplay: no legal moves")

// Policy picks one of the legal moves of a position.
type Policy interface {
	Choose(pos *chessmg.Position, moves []chessmg.Move) (chessmg.Move, error)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(pos *chessmg.Position, moves []chessmg.Move) (chessmg.Move, error)

func (f PolicyFunc) Choose(pos *chessmg.Position, moves []chessmg.Move) (chessmg.Move, error) {
	return f(pos, moves)
}

// Random chooses uniformly among the legal moves. Its randomness comes
// from the *rand.Rand it was built with, so a fixed seed replays a game.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a uniform policy drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// NewSeededRandom is NewRandom over a fresh source with the given seed.
func NewSeededRandom(seed int64) *Random {
	return NewRandom(rand.New(rand.NewSource(seed)))
}

func (r *Random) Choose(_ *chessmg.Position, moves []chessmg.Move) (chessmg.Move, error) {
	if len(moves) == 0 {
		return chessmg.NullMove, ErrNoLegalMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// First always plays the first generated move.
var First Policy = PolicyFunc(func(_ *chessmg.Position, moves []chessmg.Move) (chessmg.Move, error) {
	if len(moves) == 0 {
		return chessmg.NullMove, ErrNoLegalMoves
	}
	return moves[0], nil
})

// PreferCaptures plays a capture when one exists and otherwise defers to
// fallback.
func PreferCaptures(fallback Policy) Policy {
	return PolicyFunc(func(pos *chessmg.Position, moves []chessmg.Move) (chessmg.Move, error) {
		var caps []chessmg.Move
		for _, m := range moves {
			if m.IsCapture() {
				caps = append(caps, m)
			}
		}
		if len(caps) > 0 {
			return fallback.Choose(pos, caps)
		}
		return fallback.Choose(pos, moves)
	})
}
