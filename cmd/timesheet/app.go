package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qanova/timesheet/internal/backend"
	"github.com/qanova/timesheet/internal/config"
	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/domain/profile"
	"github.com/qanova/timesheet/internal/domain/report"
	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/qanova/timesheet/internal/domain/workspace"
	"github.com/qanova/timesheet/internal/sqlite"
)

// app holds the wired services for one command invocation.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *sqlite.DB
	store     *backend.Handle
	activity  *activity.Service
	profiles  *profile.Service
	workspace *workspace.Workspace
	closeLog  func() error
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, closeLog, err := newLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	a := &app{cfg: cfg, logger: logger, closeLog: closeLog}

	if err := ensureParentDir(cfg.Storage.SQLite.Path); err != nil {
		a.close(ctx)
		return nil, fmt.Errorf("prepare database path: %w", err)
	}
	a.db, err = sqlite.New(cfg.Storage.SQLite.Path)
	if err != nil {
		a.close(ctx)
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := a.db.RunMigrations(); err != nil {
		a.close(ctx)
		return nil, err
	}

	a.store, err = backend.Open(ctx, cfg.Storage, a.db, logger)
	if err != nil {
		a.close(ctx)
		return nil, err
	}

	a.activity = activity.NewService(sqlite.NewActivityRepository(a.db), logger)
	a.profiles = profile.NewService(sqlite.NewProfileRepository(a.db), a.activity, cfg.User.DisplayName, logger)
	a.workspace = workspace.New(workspace.Options{
		UserID:     cfg.User.ID,
		Backend:    a.store.Store,
		Activity:   a.activity,
		Logger:     logger,
		HourlyRate: cfg.Report.HourlyRate,
		Template: report.Template{
			Greeting: cfg.Report.Greeting,
			Company:  cfg.Report.Company,
		},
		SaveTimeout: cfg.Storage.SaveTimeout,
	})
	if err := a.workspace.Load(ctx); err != nil {
		a.close(ctx)
		return nil, err
	}
	return a, nil
}

// selectWeek makes the week containing the ISO date value active.
func (a *app) selectWeek(ctx context.Context, value string) (timesheet.WeekKey, error) {
	date, err := timesheet.ParseDate(value)
	if err != nil {
		return "", err
	}
	return a.workspace.SelectDate(ctx, date)
}

// close waits for pending saves and releases every resource. Save failures
// are returned so the command exits non-zero.
func (a *app) close(ctx context.Context) error {
	var errs []error
	if a.workspace != nil {
		if err := a.workspace.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.closeLog != nil {
		if err := a.closeLog(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
