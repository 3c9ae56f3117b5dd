package session

import "errors"

var (
	ErrTooManyAxes   = errors.New("axis capacity exceeded")
	ErrAlreadyLoaded = errors.New("session already has axes")
)
