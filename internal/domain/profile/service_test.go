package profile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/qanova/timesheet/internal/domain/profile"
	"github.com/qanova/timesheet/internal/repository"
	"github.com/qanova/timesheet/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func TestProfileService_DisplayNameFallsBack(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProfileRepository{}
	repo.On("GetDisplayName", ctx, "user1").Return("", repository.ErrNotFound)

	svc := profile.NewService(repo, nil, "Jo Doe", nil)
	name, err := svc.DisplayName(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, "Jo Doe", name)
}

func TestProfileService_DisplayNameStored(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProfileRepository{}
	repo.On("GetDisplayName", ctx, "user1").Return("Sam Roe", nil)

	svc := profile.NewService(repo, nil, "Jo Doe", nil)
	name, err := svc.DisplayName(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, "Sam Roe", name)
}

func TestProfileService_DisplayNameError(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProfileRepository{}
	repo.On("GetDisplayName", ctx, "user1").Return("", errors.New("db locked"))

	svc := profile.NewService(repo, nil, "Jo Doe", nil)
	_, err := svc.DisplayName(ctx, "user1")
	require.ErrorContains(t, err, "db locked")
}

func TestProfileService_SetDisplayName(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProfileRepository{}
	repo.On("SetDisplayName", ctx, "user1", "Sam Roe").Return(nil)

	svc := profile.NewService(repo, nil, "", nil)
	name, err := svc.SetDisplayName(ctx, "user1", "  Sam Roe ")
	require.NoError(t, err)
	require.Equal(t, "Sam Roe", name)
	repo.AssertExpectations(t)

	_, err = svc.SetDisplayName(ctx, "user1", "   ")
	require.ErrorIs(t, err, profile.ErrInvalidInput)
}
