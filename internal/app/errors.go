package app

import "errors"

var (
	ErrNoScenes       = errors.New("no scene files given")
	ErrDuplicateScene = errors.New("scene files share a name")
)
