package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrCorruptRecord    = errors.New("record file is not valid JSON")
	ErrBarRestartNeeded = errors.New("bar channels were recreated")
)
