// Package render draws chess positions as plain text.
package render

import (
	"io"
	"strings"

	"bitchess/chessmg"
)

// PieceReader is the read-only view the renderers need. *chessmg.Position
// and *chessmg.Board satisfy it.
type PieceReader interface {
	PieceAt(sq chessmg.Square) chessmg.Piece
}

type options struct {
	empty byte
	flip  bool
}

// Option adjusts how a board is drawn.
type Option func(*options)

// WithEmptySquare sets the character drawn on empty squares (default ' ').
func WithEmptySquare(c byte) Option {
	return func(o *options) { o.empty = c }
}

// WithFlip draws the board from Black's side: rank 1 on top, h-file left.
func WithFlip() Option {
	return func(o *options) { o.flip = true }
}

func buildOptions(opts []Option) options {
	o := options{empty: ' '}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

const (
	cellWidth = 7
	margin    = "  "
)

var borderLine = margin + strings.Repeat("#", 8*cellWidth) + "\n"

// order returns the ranks top to bottom and files left to right.
func (o options) order() (ranks, files [8]int) {
	for i := 0; i < 8; i++ {
		ranks[i], files[i] = 7-i, i
		if o.flip {
			ranks[i], files[i] = i, 7-i
		}
	}
	return ranks, files
}

func (o options) glyph(pc chessmg.Piece) byte {
	if pc == chessmg.NoPiece {
		return o.empty
	}
	return pc.String()[0]
}

// Board draws the framed board: every square is a 7x3 cell bordered with
// '#', the piece letter (upper-case White) in the middle, rank numbers on
// the left and file letters underneath.
func Board(r PieceReader, opts ...Option) string {
	o := buildOptions(opts)
	ranks, files := o.order()

	var sb strings.Builder
	blank := margin + strings.Repeat("#     #", 8) + "\n"
	sb.WriteString(borderLine)
	for _, rank := range ranks {
		sb.WriteString(blank)
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for _, file := range files {
			sb.WriteString("#  ")
			sb.WriteByte(o.glyph(r.PieceAt(chessmg.NewSquare(file, rank))))
			sb.WriteString("  #")
		}
		sb.WriteByte('\n')
		sb.WriteString(blank)
		sb.WriteString(borderLine)
	}
	sb.WriteString(margin)
	for i, file := range files {
		if i == 0 {
			sb.WriteString("   ")
		} else {
			sb.WriteString("      ")
		}
		sb.WriteByte('A' + byte(file))
	}
	sb.WriteString("\n\n")
	return sb.String()
}

// Compact draws one text line per rank ("8 rnbqkbnr") followed by a file
// legend.
func Compact(r PieceReader, opts ...Option) string {
	o := buildOptions(opts)
	ranks, files := o.order()

	var sb strings.Builder
	for _, rank := range ranks {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for _, file := range files {
			sb.WriteByte(o.glyph(r.PieceAt(chessmg.NewSquare(file, rank))))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for _, file := range files {
		sb.WriteByte('a' + byte(file))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Fprint writes the framed board to w.
func Fprint(w io.Writer, r PieceReader, opts ...Option) error {
	_, err := io.WriteString(w, Board(r, opts...))
	return err
}
