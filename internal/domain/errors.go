package domain

import "errors"

var (
	// ErrBodyFull is returned when the body store cannot grow any further.
	ErrBodyFull = errors.New("snake body storage exhausted")

	// ErrBoardFull is returned when no free cell is left for food.
	ErrBoardFull = errors.New("no free cell left on the board")

	ErrInvalidConfig = errors.New("invalid game config")
)
