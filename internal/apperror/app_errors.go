package apperror

import "errors"

var (
	ErrMissingArgument            = errors.New("not enough arguments: expected path to words file")
	ErrResourceUnreadable         = errors.New("words file is unreadable")
	ErrEmptyWordList              = errors.New("there must be at least 1 word in the file")
	ErrRandomSelectionOutOfBounds = errors.New("random number generated was out of bounds")
	ErrInvalidGuessInput          = errors.New("guess must contain at least one character")

	ErrGameFinished = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")
	ErrInputClosed  = errors.New("input closed before a guess was read")
)
