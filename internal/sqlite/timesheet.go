package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/qanova/timesheet/internal/repository"
)

// TimesheetRepository implements repository.TimesheetRepository for SQLite.
// It serves as the local cache of a user's weekly sessions.
type TimesheetRepository struct {
	db *DB
}

// NewTimesheetRepository creates a new TimesheetRepository
func NewTimesheetRepository(db *DB) *TimesheetRepository {
	return &TimesheetRepository{db: db}
}

// Load reads every stored week of userID. Unknown users yield an empty map.
func (r *TimesheetRepository) Load(ctx context.Context, userID string) (timesheet.WeeklySessions, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT week_key FROM weeks WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	ws := timesheet.WeeklySessions{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan week: %w", err)
		}
		ws[timesheet.WeekKey(key)] = timesheet.NewWeek()
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating week rows: %w", err)
	}
	rows.Close()

	rows, err = r.db.QueryContext(ctx, `
		SELECT week_key, day_index, start_time, end_time
		FROM work_sessions
		WHERE user_id = ?
		ORDER BY week_key, day_index, position
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key     string
			day     int
			session timesheet.Session
		)
		if err := rows.Scan(&key, &day, &session.Start, &session.End); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		week, ok := ws[timesheet.WeekKey(key)]
		if !ok || day < 0 || day >= timesheet.DaysPerWeek {
			return nil, fmt.Errorf("%w: session for week %s day %d", repository.ErrCorruptRecord, key, day)
		}
		week[day] = append(week[day], session)
		ws[timesheet.WeekKey(key)] = week
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return ws, nil
}

// Save replaces everything stored for userID with ws in one transaction.
func (r *TimesheetRepository) Save(ctx context.Context, userID string, ws timesheet.WeeklySessions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM weeks WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear weeks: %w", err)
	}

	now := time.Now()
	for key, week := range ws {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO weeks (user_id, week_key, updated_at) VALUES (?, ?, ?)`,
			userID, string(key), now,
		); err != nil {
			return fmt.Errorf("failed to insert week %s: %w", key, err)
		}
		if err := insertSessions(ctx, tx, userID, key, week); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertSessions(ctx context.Context, tx *sql.Tx, userID string, key timesheet.WeekKey, week timesheet.Week) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO work_sessions (user_id, week_key, day_index, position, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare session insert: %w", err)
	}
	defer stmt.Close()

	for day, sessions := range week {
		for pos, s := range sessions {
			if _, err := stmt.ExecContext(ctx, userID, string(key), day, pos, s.Start, s.End); err != nil {
				return fmt.Errorf("failed to insert session: %w", err)
			}
		}
	}
	return nil
}
