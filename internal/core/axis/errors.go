package axis

import "errors"

var ErrUnknownComponent = errors.New("unknown axis component")
