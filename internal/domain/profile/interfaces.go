package profile

import (
	"context"

	"github.com/qanova/timesheet/internal/domain/activity"
)

// Repository provides persistence for per-user preferences.
type Repository interface {
	GetDisplayName(ctx context.Context, userID string) (string, error)
	SetDisplayName(ctx context.Context, userID, name string) error
}

// ActivityRecorder receives audit events.
type ActivityRecorder interface {
	Record(ctx context.Context, userID string, typ activity.ActivityType, weekKey, summary string)
}
