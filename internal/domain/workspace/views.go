package workspace

import (
	"github.com/qanova/timesheet/internal/domain/report"
	"github.com/qanova/timesheet/internal/domain/timesheet"
)

// ActiveKey returns the week currently being viewed.
func (w *Workspace) ActiveKey() timesheet.WeekKey {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

// Snapshot returns a deep copy of all weeks and the active key.
func (w *Workspace) Snapshot() (timesheet.WeeklySessions, timesheet.WeekKey) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sessions.Clone(), w.active
}

// Week returns a copy of the week under key ("" means the active week).
func (w *Workspace) Week(key timesheet.WeekKey) (timesheet.WeekKey, timesheet.Week, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if key == "" {
		key = w.active
	}
	week, ok := w.sessions.Get(key)
	if !ok {
		return key, timesheet.Week{}, ErrWeekNotFound
	}
	return key, week.Clone(), nil
}

// Rows lays out the week under key ("" means the active week) as dated rows.
func (w *Workspace) Rows(key timesheet.WeekKey) (timesheet.WeekKey, []report.DayRow, error) {
	key, week, err := w.Week(key)
	if err != nil {
		return key, nil, err
	}
	rows, err := report.WeekRows(key, week)
	return key, rows, err
}

// Weeks lists the stored week keys, newest first.
func (w *Workspace) Weeks() []timesheet.WeekKey {
	w.mu.Lock()
	defer w.mu.Unlock()
	return timesheet.SortedKeys(w.sessions)
}

// Months groups the stored weeks by the month of their Monday.
func (w *Workspace) Months() []timesheet.MonthSummary {
	w.mu.Lock()
	defer w.mu.Unlock()
	return timesheet.MonthlyAggregate(w.sessions, w.hourlyRate)
}

// HourlyRate is the rate used for month pay totals.
func (w *Workspace) HourlyRate() float64 { return w.hourlyRate }

// Report renders the email report for the active week.
func (w *Workspace) Report(displayName string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	week, ok := w.sessions.Get(w.active)
	if !ok {
		week = timesheet.NewWeek()
	}
	return report.Generate(w.active, week, displayName, w.template)
}
