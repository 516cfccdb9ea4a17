package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeTimesheetLoaded    ActivityType = "timesheet_loaded"
	TypeTimesheetSaved     ActivityType = "timesheet_saved"
	TypeSaveFailed         ActivityType = "save_failed"
	TypeWeekCreated        ActivityType = "week_created"
	TypeWeekDeleted        ActivityType = "week_deleted"
	TypeDisplayNameChanged ActivityType = "display_name_changed"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	UserID       string       `json:"user_id"`
	WeekKey      *string      `json:"week_key,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
