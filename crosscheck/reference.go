// Package crosscheck compares the chessmg generator with independent move
// generators.
package crosscheck

import (
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"
)

// Reference is an independent legal move generator. Moves are exchanged in
// lower-case coordinate notation ("e7e8q").
type Reference interface {
	Name() string
	LegalMoves(fen string) ([]string, error)
}

// Dragontooth wraps github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontoothmg" }

// board parses fen, turning the library's panics on malformed input into
// errors.
func (Dragontooth) board(fen string) (b dragontoothmg.Board, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dragontoothmg: parse %q: %v", fen, r)
		}
	}()
	return dragontoothmg.ParseFen(fen), nil
}

func (d Dragontooth) LegalMoves(fen string) ([]string, error) {
	b, err := d.board(fen)
	if err != nil {
		return nil, err
	}
	moves := b.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i := range moves {
		out[i] = strings.ToLower(moves[i].String())
	}
	return out, nil
}

// Perft counts leaf nodes depth plies below fen.
func (d Dragontooth) Perft(fen string, depth int) (uint64, error) {
	b, err := d.board(fen)
	if err != nil {
		return 0, err
	}
	return dragontoothPerft(&b, depth), nil
}

// Divide maps each root move to its perft(depth-1) count.
func (d Dragontooth) Divide(fen string, depth int) (map[string]uint64, error) {
	b, err := d.board(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	moves := b.GenerateLegalMoves()
	for i := range moves {
		undo := b.Apply(moves[i])
		out[strings.ToLower(moves[i].String())] = dragontoothPerft(&b, depth-1)
		undo()
	}
	return out, nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		undo := b.Apply(m)
		n += dragontoothPerft(b, depth-1)
		undo()
	}
	return n
}

// Corentings wraps github.com/corentings/chess/v2, which also provides the
// SAN reference.
type Corentings struct{}

func (Corentings) Name() string { return "corentings/chess" }

func (Corentings) game(fen string) (*chess.Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("corentings/chess: parse %q: %w", fen, err)
	}
	return chess.NewGame(opt), nil
}

func (c Corentings) LegalMoves(fen string) ([]string, error) {
	g, err := c.game(fen)
	if err != nil {
		return nil, err
	}
	pos := g.Position()
	moves := g.ValidMoves()
	out := make([]string, len(moves))
	for i := range moves {
		out[i] = chess.UCINotation{}.Encode(pos, &moves[i])
	}
	return out, nil
}

// SAN maps every legal move, in coordinate notation, to its SAN.
func (c Corentings) SAN(fen string) (map[string]string, error) {
	g, err := c.game(fen)
	if err != nil {
		return nil, err
	}
	pos := g.Position()
	moves := g.ValidMoves()
	out := make(map[string]string, len(moves))
	for i := range moves {
		out[chess.UCINotation{}.Encode(pos, &moves[i])] = chess.AlgebraicNotation{}.Encode(pos, &moves[i])
	}
	return out, nil
}
