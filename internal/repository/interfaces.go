package repository

import (
	"context"

	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/domain/timesheet"
)

// TimesheetRepository persists the weekly sessions of a user. Load returns an
// empty map, not ErrNotFound, for a user with no stored record.
type TimesheetRepository interface {
	Load(ctx context.Context, userID string) (timesheet.WeeklySessions, error)
	Save(ctx context.Context, userID string, ws timesheet.WeeklySessions) error
}

// ProfileRepository manages per-user preferences kept on this machine
type ProfileRepository interface {
	GetDisplayName(ctx context.Context, userID string) (string, error)
	SetDisplayName(ctx context.Context, userID, name string) error
}

// ActivityRepository manages activity log persistence
type ActivityRepository interface {
	Log(ctx context.Context, userID string, entry *activity.ActivityEntry) error
	List(ctx context.Context, userID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}
