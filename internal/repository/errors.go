package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrCorruptRecord is returned when a stored record cannot be decoded
	ErrCorruptRecord = errors.New("corrupt stored record")
)
