package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/qanova/timesheet/internal/repository"
)

// ProfileRepository implements repository.ProfileRepository for SQLite
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetDisplayName returns the stored display name of userID.
func (r *ProfileRepository) GetDisplayName(ctx context.Context, userID string) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx,
		`SELECT display_name FROM profiles WHERE user_id = ?`, userID,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get display name: %w", err)
	}
	return name, nil
}

// SetDisplayName stores or replaces the display name of userID.
func (r *ProfileRepository) SetDisplayName(ctx context.Context, userID, name string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, display_name, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET display_name = excluded.display_name, updated_at = excluded.updated_at
	`, userID, name, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set display name: %w", err)
	}
	return nil
}
