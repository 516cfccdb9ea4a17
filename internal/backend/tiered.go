// Package backend assembles the timesheet store a workspace persists to.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/qanova/timesheet/internal/repository"
)

// Tiered pairs a local cache with a remote store. Reads prefer the remote and
// refresh the cache; writes go to both.
type Tiered struct {
	local  repository.TimesheetRepository
	remote repository.TimesheetRepository
	logger *slog.Logger
}

// NewTiered creates a Tiered store.
func NewTiered(local, remote repository.TimesheetRepository, logger *slog.Logger) *Tiered {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tiered{local: local, remote: remote, logger: logger}
}

// Load reads from the remote store. When the remote is unreachable the local
// cache is served instead. An empty remote never overwrites a non-empty
// cache: the cache is served and the next Save pushes it to the remote.
func (t *Tiered) Load(ctx context.Context, userID string) (timesheet.WeeklySessions, error) {
	ws, err := t.remote.Load(ctx, userID)
	if err != nil {
		t.logger.Warn("remote load failed, using local cache", "user_id", userID, "error", err)
		cached, cacheErr := t.local.Load(ctx, userID)
		if cacheErr != nil {
			return nil, errors.Join(fmt.Errorf("remote: %w", err), fmt.Errorf("local: %w", cacheErr))
		}
		return cached, nil
	}
	if len(ws) == 0 {
		cached, err := t.local.Load(ctx, userID)
		switch {
		case err != nil:
			t.logger.Warn("read local cache", "user_id", userID, "error", err)
		case len(cached) > 0:
			t.logger.Warn("remote store is empty, using local cache", "user_id", userID, "weeks", len(cached))
			return cached, nil
		}
		return ws, nil
	}
	if err := t.local.Save(ctx, userID, ws); err != nil {
		t.logger.Warn("refresh local cache", "user_id", userID, "error", err)
	}
	return ws, nil
}

// Save writes the local cache first, then the remote store. Both are
// attempted; any failure is returned.
func (t *Tiered) Save(ctx context.Context, userID string, ws timesheet.WeeklySessions) error {
	var errs []error
	if err := t.local.Save(ctx, userID, ws); err != nil {
		errs = append(errs, fmt.Errorf("local: %w", err))
	}
	if err := t.remote.Save(ctx, userID, ws); err != nil {
		errs = append(errs, fmt.Errorf("remote: %w", err))
	}
	return errors.Join(errs...)
}
