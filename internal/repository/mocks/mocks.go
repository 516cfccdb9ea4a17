package mocks

import (
	"context"

	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/stretchr/testify/mock"
)

// TimesheetRepository is a mock for repository.TimesheetRepository.
type TimesheetRepository struct {
	mock.Mock
}

func (m *TimesheetRepository) Load(ctx context.Context, userID string) (timesheet.WeeklySessions, error) {
	args := m.Called(ctx, userID)
	if ws, ok := args.Get(0).(timesheet.WeeklySessions); ok {
		return ws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TimesheetRepository) Save(ctx context.Context, userID string, ws timesheet.WeeklySessions) error {
	args := m.Called(ctx, userID, ws)
	return args.Error(0)
}

// ProfileRepository is a mock for repository.ProfileRepository.
type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) GetDisplayName(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *ProfileRepository) SetDisplayName(ctx context.Context, userID, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, userID string, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, userID, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, userID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, userID, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
