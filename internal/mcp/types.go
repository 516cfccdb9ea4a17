package mcp

import (
	"github.com/qanova/timesheet/internal/domain/report"
)

type EmptyParams struct{}

type WeekParams struct {
	Week string `json:"week,omitempty" jsonschema:"Week key (Monday, YYYY-MM-DD); omit for the active week"`
}

type SelectWeekParams struct {
	Week string `json:"week,omitempty" jsonschema:"Existing week key (YYYY-MM-DD) to make active"`
	Date string `json:"date,omitempty" jsonschema:"Any date (YYYY-MM-DD); its week is created if needed"`
}

type NavigateWeekParams struct {
	Direction string `json:"direction" jsonschema:"older or newer"`
}

type AddSessionParams struct {
	Day int `json:"day" jsonschema:"Day of the week, 0 (Monday) to 4 (Friday)"`
}

type UpdateSessionParams struct {
	Day     int    `json:"day" jsonschema:"Day of the week, 0 (Monday) to 4 (Friday)"`
	Session int    `json:"session" jsonschema:"Index of the session within the day"`
	Field   string `json:"field" jsonschema:"start or end"`
	Value   string `json:"value" jsonschema:"Clock time HH:MM, or empty to clear"`
}

type RemoveSessionParams struct {
	Day     int `json:"day" jsonschema:"Day of the week, 0 (Monday) to 4 (Friday)"`
	Session int `json:"session" jsonschema:"Index of the session within the day"`
}

type DeleteWeekParams struct {
	Week    string `json:"week,omitempty" jsonschema:"Week key to delete; omit for the active week"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"Required when the week has recorded hours"`
}

type SetDisplayNameParams struct {
	Name string `json:"name" jsonschema:"Name used to sign the weekly report"`
}

type GetRecentActivityParams struct {
	Week  string `json:"week,omitempty" jsonschema:"Only entries for this week key"`
	Type  string `json:"type,omitempty" jsonschema:"Only entries of this activity type"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of entries (default 20)"`
}

type WeekList struct {
	Active string   `json:"active"`
	Weeks  []string `json:"weeks"`
}

type WeekView struct {
	Week      string          `json:"week"`
	Active    bool            `json:"active"`
	Days      []report.DayRow `json:"days"`
	Total     string          `json:"total"`
	SaveError string          `json:"save_error,omitempty"`
}

type NavigateResult struct {
	Week  string `json:"week"`
	Moved bool   `json:"moved"`
}

type DeleteWeekResult struct {
	Deleted   string `json:"deleted"`
	Active    string `json:"active"`
	SaveError string `json:"save_error,omitempty"`
}

type MonthView struct {
	Label string   `json:"label"`
	Hours float64  `json:"hours"`
	Pay   float64  `json:"pay"`
	Line  string   `json:"line"`
	Weeks []string `json:"weeks"`
}

type MonthlySummary struct {
	Currency   string      `json:"currency"`
	HourlyRate float64     `json:"hourly_rate"`
	Months     []MonthView `json:"months"`
}

type ReportResult struct {
	Week   string `json:"week"`
	Report string `json:"report"`
}

type DisplayNameResult struct {
	DisplayName string `json:"display_name"`
}

type ActivityItem struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Week      string `json:"week,omitempty"`
	Summary   string `json:"summary"`
	Details   string `json:"details,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ActivityList struct {
	Entries []ActivityItem `json:"entries"`
}
