package mcp

import (
	"errors"
	"fmt"

	"github.com/qanova/timesheet/internal/domain/profile"
	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/qanova/timesheet/internal/domain/workspace"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalidInput(message string) *APIError {
	return &APIError{Code: "INVALID_INPUT", Message: message}
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, workspace.ErrWeekNotFound):
		return &APIError{Code: "WEEK_NOT_FOUND", Message: "week not found", RecoveryHint: "Call list_weeks for valid keys"}
	case errors.Is(err, workspace.ErrConfirmationRequired):
		return &APIError{Code: "CONFIRMATION_REQUIRED", Message: workspace.DeletePrompt, RecoveryHint: "Ask the user, then call again with confirm=true"}
	case errors.Is(err, workspace.ErrNotReady):
		return &APIError{Code: "NOT_READY", Message: "timesheet is still loading", RecoveryHint: "Retry shortly"}
	case errors.Is(err, workspace.ErrLoadFailed):
		return &APIError{Code: "LOAD_FAILED", Message: err.Error()}
	case errors.Is(err, workspace.ErrSaveFailed):
		return &APIError{Code: "SAVE_FAILED", Message: err.Error(), RecoveryHint: "The change is kept in memory; the next edit retries the save"}
	case errors.Is(err, timesheet.ErrInvalidDate):
		return &APIError{Code: "INVALID_DATE", Message: err.Error(), RecoveryHint: "Use YYYY-MM-DD"}
	case errors.Is(err, profile.ErrInvalidInput):
		return invalidInput("display name must be 1-120 characters")
	default:
		return nil
	}
}

// toolError converts err into what a tool handler returns.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
