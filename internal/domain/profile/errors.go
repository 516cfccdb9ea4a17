package profile

import "errors"

var (
	// ErrInvalidInput indicates an invalid profile value.
	ErrInvalidInput = errors.New("invalid profile input")
)
