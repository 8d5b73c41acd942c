package datefield

import "errors"

// ErrUnknownMode is returned when a validation mode name is not recognized.
var ErrUnknownMode = errors.New("unknown validation mode")
