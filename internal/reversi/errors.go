package reversi

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
	ErrCannotPass  = errors.New("cannot pass while a legal move exists")
)

// InvalidInputError is returned when a move token cannot be parsed
// into a position on the board.
type InvalidInputError struct {
	Input  string
	Reason string
}

func NewInvalidInputError(input, reason string) error {
	return &InvalidInputError{Input: input, Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}
