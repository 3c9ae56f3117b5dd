package export

import "errors"

var (
	ErrExportInProgress = errors.New("export already in progress")
	ErrUnknownFormat    = errors.New("unknown export format")
)
