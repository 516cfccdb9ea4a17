package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/repository"
)

const maxDisplayNameLength = 120

// Service resolves the name that signs the weekly report.
type Service struct {
	repo        Repository
	activity    ActivityRecorder
	logger      *slog.Logger
	defaultName string
}

// NewService creates a profile service. defaultName is used until the user
// sets a name of their own.
func NewService(repo Repository, recorder ActivityRecorder, defaultName string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, activity: recorder, logger: logger, defaultName: defaultName}
}

// DisplayName returns the stored name for userID, falling back to the
// configured default.
func (s *Service) DisplayName(ctx context.Context, userID string) (string, error) {
	name, err := s.repo.GetDisplayName(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.defaultName, nil
		}
		return "", fmt.Errorf("getting display name: %w", err)
	}
	if name == "" {
		return s.defaultName, nil
	}
	return name, nil
}

// SetDisplayName stores a new name for userID.
func (s *Service) SetDisplayName(ctx context.Context, userID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxDisplayNameLength {
		return "", ErrInvalidInput
	}
	if err := s.repo.SetDisplayName(ctx, userID, name); err != nil {
		return "", fmt.Errorf("setting display name: %w", err)
	}
	s.logger.Info("display name changed", "user_id", userID)
	if s.activity != nil {
		s.activity.Record(ctx, userID, activity.TypeDisplayNameChanged, "", "Display name set to "+name)
	}
	return name, nil
}
