package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
)

// Service handles activity log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// LogActivity logs an activity entry with the current timestamp if missing.
func (s *Service) LogActivity(ctx context.Context, userID string, entry *ActivityEntry) error {
	if entry == nil || entry.ActivityType == "" {
		return ErrInvalidInput
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	if err := s.repo.Log(ctx, userID, entry); err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}

// Record logs an event and only reports failures to the logger. Activity is
// an audit trail; losing an entry must not fail the operation it describes.
func (s *Service) Record(ctx context.Context, userID string, typ ActivityType, weekKey, summary string) {
	s.RecordDetails(ctx, userID, typ, weekKey, summary, nil)
}

// RecordDetails is Record with structured details stored as a JSON object.
// Nil or empty details leave the column empty.
func (s *Service) RecordDetails(ctx context.Context, userID string, typ ActivityType, weekKey, summary string, details map[string]any) {
	entry := &ActivityEntry{
		ActivityType: typ,
		Summary:      summary,
	}
	if weekKey != "" {
		entry.WeekKey = &weekKey
	}
	if len(details) > 0 {
		raw, err := json.Marshal(details)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("activity details dropped", "type", typ, "error", err)
			}
		} else {
			entry.Details = string(raw)
		}
	}
	if err := s.LogActivity(ctx, userID, entry); err != nil && s.logger != nil {
		s.logger.Warn("activity not recorded", "type", typ, "error", err)
	}
}

// GetRecentActivity lists activity entries with filtering.
func (s *Service) GetRecentActivity(ctx context.Context, userID string, opts ListActivityOptions) ([]ActivityEntry, error) {
	return s.repo.List(ctx, userID, opts)
}
