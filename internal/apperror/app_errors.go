package apperror

import "errors"

var (
	ErrMoveOutOfRange = errors.New("move is out of range")
	ErrGameNotFound   = errors.New("game not found")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid command arguments")
)
