package workspace

import (
	"context"

	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/domain/timesheet"
)

// Backend is the durable store behind a workspace: a local cache, a remote
// store, or both.
type Backend interface {
	Load(ctx context.Context, userID string) (timesheet.WeeklySessions, error)
	Save(ctx context.Context, userID string, ws timesheet.WeeklySessions) error
}

// ActivityRecorder receives audit events. Implementations must not block for
// long; they run inside workspace operations.
type ActivityRecorder interface {
	RecordDetails(ctx context.Context, userID string, typ activity.ActivityType, weekKey, summary string, details map[string]any)
}
