package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/qanova/timesheet/internal/config"
	"github.com/qanova/timesheet/internal/mongo"
	"github.com/qanova/timesheet/internal/redis"
	"github.com/qanova/timesheet/internal/repository"
	"github.com/qanova/timesheet/internal/sqlite"
)

// Handle is an opened store together with the connections it owns.
type Handle struct {
	Store   repository.TimesheetRepository
	Name    string
	closers []func(ctx context.Context) error
}

// Close releases remote connections. The SQLite database is owned by the
// caller and stays open.
func (h *Handle) Close(ctx context.Context) error {
	var errs []error
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open builds the store selected by cfg. db backs the local cache and is
// required for the sqlite and tiered backends.
func Open(ctx context.Context, cfg config.StorageConfig, db *sqlite.DB, logger *slog.Logger) (*Handle, error) {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handle{Name: cfg.Backend}

	switch cfg.Backend {
	case config.BackendSQLite:
		if db == nil {
			return nil, errors.New("sqlite backend requires a database")
		}
		h.Store = sqlite.NewTimesheetRepository(db)
	case config.BackendMongo, config.BackendRedis:
		remote, err := h.openRemote(ctx, cfg.Backend, cfg)
		if err != nil {
			return nil, err
		}
		h.Store = remote
	case config.BackendTiered:
		if db == nil {
			return nil, errors.New("tiered backend requires a database")
		}
		remote, err := h.openRemote(ctx, cfg.Remote, cfg)
		if err != nil {
			return nil, err
		}
		h.Store = NewTiered(sqlite.NewTimesheetRepository(db), remote, logger)
		h.Name = cfg.Backend + "+" + cfg.Remote
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	logger.Info("storage backend opened", "backend", h.Name)
	return h, nil
}

func (h *Handle) openRemote(ctx context.Context, kind string, cfg config.StorageConfig) (repository.TimesheetRepository, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	switch kind {
	case config.BackendMongo:
		store, err := mongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
		if err != nil {
			return nil, err
		}
		h.closers = append(h.closers, store.Close)
		return store, nil
	case config.BackendRedis:
		store, client, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix)
		if err != nil {
			return nil, err
		}
		h.closers = append(h.closers, func(context.Context) error { return client.Close() })
		return store, nil
	default:
		return nil, fmt.Errorf("unknown remote backend %q", kind)
	}
}
