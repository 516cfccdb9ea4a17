package activity

import "errors"

var (
	// ErrInvalidInput indicates an empty activity entry.
	ErrInvalidInput = errors.New("invalid activity input")
)
