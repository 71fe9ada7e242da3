package buffer

import "errors"

// Errors returned by buffer providers.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)
