package filestore

import "errors"

var ErrInvalidName = errors.New("output name must stay inside the project root")
