package timesheet

import "errors"

var (
	// ErrInvalidDate indicates a value that is not an ISO date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidDocument indicates a stored document that doesn't describe
	// valid weeks.
	ErrInvalidDocument = errors.New("invalid timesheet document")
)
