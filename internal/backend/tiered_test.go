package backend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/qanova/timesheet/internal/backend"
	"github.com/qanova/timesheet/internal/config"
	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/qanova/timesheet/internal/repository/mocks"
	"github.com/qanova/timesheet/internal/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTiered_LoadRefreshesCache(t *testing.T) {
	ctx := context.Background()
	ws := timesheet.WeeklySessions{"2024-04-08": timesheet.NewWeek()}

	local := &mocks.TimesheetRepository{}
	remote := &mocks.TimesheetRepository{}
	remote.On("Load", ctx, "user1").Return(ws, nil)
	local.On("Save", ctx, "user1", ws).Return(nil)

	got, err := backend.NewTiered(local, remote, nil).Load(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, ws, got)
	local.AssertExpectations(t)
}

func TestTiered_LoadFallsBackToCache(t *testing.T) {
	ctx := context.Background()
	cached := timesheet.WeeklySessions{"2024-04-01": timesheet.NewWeek()}

	local := &mocks.TimesheetRepository{}
	remote := &mocks.TimesheetRepository{}
	remote.On("Load", ctx, "user1").Return(nil, errors.New("no route to host"))
	local.On("Load", ctx, "user1").Return(cached, nil)

	got, err := backend.NewTiered(local, remote, nil).Load(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, cached, got)
	local.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestTiered_LoadEmptyRemoteKeepsCache(t *testing.T) {
	ctx := context.Background()
	cached := timesheet.WeeklySessions{"2024-04-01": {{{Start: "09:00", End: "10:00"}}, nil, nil, nil, nil}}

	local := &mocks.TimesheetRepository{}
	remote := &mocks.TimesheetRepository{}
	remote.On("Load", ctx, "user1").Return(timesheet.WeeklySessions{}, nil)
	local.On("Load", ctx, "user1").Return(cached, nil)

	got, err := backend.NewTiered(local, remote, nil).Load(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, cached, got)
	local.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestTiered_LoadEmptyEverywhere(t *testing.T) {
	ctx := context.Background()

	local := &mocks.TimesheetRepository{}
	remote := &mocks.TimesheetRepository{}
	remote.On("Load", ctx, "user1").Return(nil, nil)
	local.On("Load", ctx, "user1").Return(timesheet.WeeklySessions{}, nil)

	got, err := backend.NewTiered(local, remote, nil).Load(ctx, "user1")
	require.NoError(t, err)
	require.Empty(t, got)
	local.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestTiered_LoadBothFail(t *testing.T) {
	ctx := context.Background()

	local := &mocks.TimesheetRepository{}
	remote := &mocks.TimesheetRepository{}
	remote.On("Load", ctx, "user1").Return(nil, errors.New("no route to host"))
	local.On("Load", ctx, "user1").Return(nil, errors.New("database is locked"))

	_, err := backend.NewTiered(local, remote, nil).Load(ctx, "user1")
	require.ErrorContains(t, err, "no route to host")
	require.ErrorContains(t, err, "database is locked")
}

func TestTiered_SaveWritesBoth(t *testing.T) {
	ctx := context.Background()
	ws := timesheet.WeeklySessions{"2024-04-08": timesheet.NewWeek()}

	local := &mocks.TimesheetRepository{}
	remote := &mocks.TimesheetRepository{}
	local.On("Save", ctx, "user1", ws).Return(errors.New("disk full"))
	remote.On("Save", ctx, "user1", ws).Return(nil)

	err := backend.NewTiered(local, remote, nil).Save(ctx, "user1", ws)
	require.ErrorContains(t, err, "local: disk full")
	remote.AssertExpectations(t)
}

func TestOpen_SQLite(t *testing.T) {
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	cfg := config.Default().Storage
	h, err := backend.Open(context.Background(), cfg, db, nil)
	require.NoError(t, err)
	require.Equal(t, "sqlite", h.Name)

	ws := timesheet.WeeklySessions{"2024-04-08": timesheet.NewWeek()}
	require.NoError(t, h.Store.Save(context.Background(), "user1", ws))
	got, err := h.Store.Load(context.Background(), "user1")
	require.NoError(t, err)
	require.Equal(t, ws, got)
	require.NoError(t, h.Close(context.Background()))
}

func TestOpen_Errors(t *testing.T) {
	cfg := config.Default().Storage
	_, err := backend.Open(context.Background(), cfg, nil, nil)
	require.Error(t, err)

	cfg.Backend = "postgres"
	_, err = backend.Open(context.Background(), cfg, nil, nil)
	require.ErrorContains(t, err, "postgres")
}
