package syncctl

import "errors"

var (
	ErrAttached          = errors.New("controller already attached")
	ErrUnexpectedPayload = errors.New("unexpected event payload")
)
