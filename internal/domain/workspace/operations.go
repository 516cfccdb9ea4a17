package workspace

import (
	"context"
	"time"

	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/domain/timesheet"
)

// SelectDate makes the week containing date active, creating it when absent.
// Dates after Monday select the week they fall in.
func (w *Workspace) SelectDate(ctx context.Context, date time.Time) (timesheet.WeekKey, error) {
	key := timesheet.NormalizeSelectedDate(date)
	created, err := w.open(key)
	if err != nil {
		return "", err
	}
	if created {
		w.record(ctx, activity.TypeWeekCreated, key.String(), "Started week "+key.String(), nil)
	}
	return key, nil
}

// NextWeek opens the week after the latest stored one, or the current week
// when nothing is stored.
func (w *Workspace) NextWeek(ctx context.Context) (timesheet.WeekKey, error) {
	w.mu.Lock()
	key := timesheet.NextWeekKey(w.sessions, w.now())
	w.mu.Unlock()

	created, err := w.open(key)
	if err != nil {
		return "", err
	}
	if created {
		w.record(ctx, activity.TypeWeekCreated, key.String(), "Started week "+key.String(), nil)
	}
	return key, nil
}

func (w *Workspace) open(key timesheet.WeekKey) (bool, error) {
	created := false
	err := w.mutate(func(ws timesheet.WeeklySessions, _ timesheet.WeekKey) (timesheet.WeeklySessions, timesheet.WeekKey, error) {
		if _, ok := ws[key]; ok {
			return nil, key, nil
		}
		created = true
		return timesheet.InsertWeek(ws, key, timesheet.NewWeek()), key, nil
	})
	return created, err
}

// SelectWeek makes an existing week active.
func (w *Workspace) SelectWeek(key timesheet.WeekKey) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.state != StateReady {
		return ErrNotReady
	}
	if _, ok := w.sessions[key]; !ok {
		return ErrWeekNotFound
	}
	w.active = key
	return nil
}

// OlderWeek moves to the next older stored week. It reports false when the
// active week is already the oldest.
func (w *Workspace) OlderWeek() (timesheet.WeekKey, bool, error) {
	return w.step(timesheet.OlderKey)
}

// NewerWeek moves to the next newer stored week. It reports false when the
// active week is already the newest.
func (w *Workspace) NewerWeek() (timesheet.WeekKey, bool, error) {
	return w.step(timesheet.NewerKey)
}

func (w *Workspace) step(pick func([]timesheet.WeekKey, timesheet.WeekKey) (timesheet.WeekKey, bool)) (timesheet.WeekKey, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return "", false, ErrClosed
	}
	if w.state != StateReady {
		return "", false, ErrNotReady
	}
	key, ok := pick(timesheet.SortedKeys(w.sessions), w.active)
	if !ok {
		return w.active, false, nil
	}
	w.active = key
	return key, true, nil
}

// AddSession appends an empty session to a day of the active week.
func (w *Workspace) AddSession(dayIndex int) error {
	return w.mutate(func(ws timesheet.WeeklySessions, active timesheet.WeekKey) (timesheet.WeeklySessions, timesheet.WeekKey, error) {
		return unlessNoop(ws, timesheet.AddSession(ws, active, dayIndex)), active, nil
	})
}

// UpdateSession sets the start or end of a session in the active week.
// Out-of-range addresses are ignored.
func (w *Workspace) UpdateSession(dayIndex, sessionIndex int, field timesheet.Field, value string) error {
	return w.mutate(func(ws timesheet.WeeklySessions, active timesheet.WeekKey) (timesheet.WeeklySessions, timesheet.WeekKey, error) {
		return unlessNoop(ws, timesheet.UpdateSession(ws, active, dayIndex, sessionIndex, field, value)), active, nil
	})
}

// RemoveSession drops a session from the active week. Out-of-range addresses
// are ignored.
func (w *Workspace) RemoveSession(dayIndex, sessionIndex int) error {
	return w.mutate(func(ws timesheet.WeeklySessions, active timesheet.WeekKey) (timesheet.WeeklySessions, timesheet.WeekKey, error) {
		return unlessNoop(ws, timesheet.RemoveSession(ws, active, dayIndex, sessionIndex)), active, nil
	})
}

// DeleteWeek removes the week under key ("" means the active week). A week
// with recorded sessions is only removed when confirmed is true; otherwise
// ErrConfirmationRequired is returned and nothing changes.
func (w *Workspace) DeleteWeek(ctx context.Context, key timesheet.WeekKey, confirmed bool) error {
	var deleted timesheet.WeekKey
	err := w.mutate(func(ws timesheet.WeeklySessions, active timesheet.WeekKey) (timesheet.WeeklySessions, timesheet.WeekKey, error) {
		if key == "" {
			key = active
		}
		week, ok := ws[key]
		if !ok {
			return nil, "", ErrWeekNotFound
		}
		if timesheet.HasRecordedEntries(week) && !confirmed {
			return nil, "", ErrConfirmationRequired
		}
		deleted = key
		return timesheet.DeleteWeek(ws, key), active, nil
	})
	if err != nil {
		return err
	}
	w.logger.Info("week deleted", "week", deleted)
	w.record(ctx, activity.TypeWeekDeleted, deleted.String(), "Deleted week "+deleted.String(), nil)
	return nil
}
