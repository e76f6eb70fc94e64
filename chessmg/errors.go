package chessmg

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrNoMoveToUndo     = errors.New("no move to undo")
	ErrDrawNotClaimable = errors.New("draw not claimable")
	ErrGameOver         = errors.New("game is over")
)

// IllegalMoveError reports a move that is not legal in the position
// described by FEN. The position is left unchanged.
type IllegalMoveError struct {
	Move Move
	FEN  string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %v in %q", e.Move, e.FEN)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }

// InvalidPositionError reports a FEN string that does not describe a
// reachable-looking position.
type InvalidPositionError struct {
	FEN    string
	Reason string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position %q: %s", e.FEN, e.Reason)
}

func (e *InvalidPositionError) Unwrap() error { return ErrInvalidPosition }
