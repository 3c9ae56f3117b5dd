package rawmove

import "errors"

var (
	ErrSamplerActive = errors.New("raw move sampling already in progress")
	ErrInvalidRange  = errors.New("frame range ends before it starts")
)
