package workspace

import "errors"

var (
	// ErrNotReady indicates a mutation attempted before the initial load finished.
	ErrNotReady = errors.New("timesheet not loaded")
	// ErrAlreadyLoaded indicates a second Load on the same workspace.
	ErrAlreadyLoaded = errors.New("timesheet already loaded")
	// ErrLoadFailed wraps backend failures while loading.
	ErrLoadFailed = errors.New("loading timesheet failed")
	// ErrSaveFailed wraps backend failures while saving.
	ErrSaveFailed = errors.New("saving timesheet failed")
	// ErrWeekNotFound indicates the addressed week doesn't exist.
	ErrWeekNotFound = errors.New("week not found")
	// ErrConfirmationRequired indicates a delete of a week that still holds
	// recorded sessions without the caller's confirmation.
	ErrConfirmationRequired = errors.New("week has recorded hours; confirmation required")
	// ErrClosed indicates use of a workspace after Close.
	ErrClosed = errors.New("workspace closed")
)

// DeletePrompt is the question callers put to the user before confirming the
// deletion of a week with recorded hours.
const DeletePrompt = "Delete this week? You worked some hours here."
