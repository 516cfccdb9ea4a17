package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogAndList(t *testing.T) {
	ctx := context.Background()
	userID := "user1"

	repo := &mocks.ActivityRepository{}
	entry := &activity.ActivityEntry{
		ActivityType: activity.TypeWeekCreated,
		Summary:      "created",
	}

	repo.On("Log", ctx, userID, entry).Return(nil)
	repo.On("List", ctx, userID, activity.ListActivityOptions{Limit: 10}).Return([]activity.ActivityEntry{}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, userID, entry))
	require.False(t, entry.CreatedAt.IsZero())
	_, err := svc.GetRecentActivity(ctx, userID, activity.ListActivityOptions{Limit: 10})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestActivityService_LogValidation(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	require.ErrorIs(t, svc.LogActivity(context.Background(), "user1", nil), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.LogActivity(context.Background(), "user1", &activity.ActivityEntry{}), activity.ErrInvalidInput)
}

func TestActivityService_RecordSwallowsErrors(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, "user1", mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeWeekDeleted && e.WeekKey != nil && *e.WeekKey == "2024-04-08"
	})).Return(errors.New("disk full"))

	svc := activity.NewService(repo, nil)
	svc.Record(ctx, "user1", activity.TypeWeekDeleted, "2024-04-08", "deleted week")
	repo.AssertExpectations(t)
}

func TestActivityService_RecordDetailsStoresJSON(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ActivityRepository{}
	var logged *activity.ActivityEntry
	repo.On("Log", ctx, "user1", mock.Anything).Run(func(args mock.Arguments) {
		logged = args.Get(2).(*activity.ActivityEntry)
	}).Return(nil).Twice()

	svc := activity.NewService(repo, nil)
	svc.RecordDetails(ctx, "user1", activity.TypeTimesheetSaved, "", "Saved 2 week(s)", map[string]any{"seq": 3, "weeks": 2})
	require.NotNil(t, logged)
	require.JSONEq(t, `{"seq":3,"weeks":2}`, logged.Details)
	require.Nil(t, logged.WeekKey)

	svc.Record(ctx, "user1", activity.TypeWeekCreated, "2024-04-08", "Started week 2024-04-08")
	require.Empty(t, logged.Details)
	repo.AssertExpectations(t)
}
