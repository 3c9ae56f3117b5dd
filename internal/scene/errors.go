package scene

import "errors"

var (
	ErrInvalidScene  = errors.New("invalid scene")
	ErrUnknownObject = errors.New("unknown object")
)
