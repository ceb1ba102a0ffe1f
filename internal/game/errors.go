package game

import (
	"errors"
	"fmt"

	"hanoi/internal/board"
	"hanoi/internal/core"
)

// Input rejections. None of them end the game.
var (
	ErrUnrecognized    = errors.New("input is not q or [from,to]")
	ErrArity           = errors.New("expected exactly two columns")
	ErrNotNumeric      = errors.New("column is not a number")
	ErrNoSuchColumn    = errors.New("column out of range")
	ErrPointless       = errors.New("source and destination are the same")
	ErrEmptySource     = board.ErrEmptyPeg
	ErrLargerOnSmaller = board.ErrLargerOnSmaller
	ErrGameOver        = errors.New("game is over")
)

// MoveError is returned by Move when the board refuses a transfer
type MoveError struct {
	From core.PegID
	To   core.PegID
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
