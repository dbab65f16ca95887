package mines

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("cell out of bounds")
	ErrInvalidTransition    = errors.New("invalid cell transition")
	ErrGameOver             = errors.New("game is over")
)
