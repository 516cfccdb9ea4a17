package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/domain/report"
	"github.com/qanova/timesheet/internal/domain/timesheet"
)

// State is the load state of a workspace.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// defaultSaveTimeout bounds a single backend save.
const defaultSaveTimeout = 30 * time.Second

// Options configures a Workspace.
type Options struct {
	UserID     string
	Backend    Backend
	Activity   ActivityRecorder
	Logger     *slog.Logger
	Now        func() time.Time
	HourlyRate float64
	Template   report.Template
	// SaveTimeout bounds each backend save; zero means defaultSaveTimeout.
	SaveTimeout time.Duration
}

// Workspace holds one user's weekly sessions in memory, tracks the active
// week and mirrors every change to the backend. All methods are safe for
// concurrent use; mutations are applied one at a time.
type Workspace struct {
	id         string
	userID     string
	backend    Backend
	activity   ActivityRecorder
	logger     *slog.Logger
	now        func() time.Time
	hourlyRate float64
	template   report.Template

	mu       sync.Mutex
	state    State
	closed   bool
	sessions timesheet.WeeklySessions
	active   timesheet.WeekKey
	skipSave bool

	queue *saveQueue
}

// New creates an uninitialized workspace. Call Load before mutating it and
// Close when done.
func New(opts Options) *Workspace {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rate := opts.HourlyRate
	if rate <= 0 {
		rate = timesheet.DefaultHourlyRate
	}
	tmpl := opts.Template
	if tmpl == (report.Template{}) {
		tmpl = report.DefaultTemplate()
	}

	w := &Workspace{
		id:         uuid.NewString(),
		userID:     opts.UserID,
		backend:    opts.Backend,
		activity:   opts.Activity,
		now:        now,
		hourlyRate: rate,
		template:   tmpl,
		sessions:   timesheet.WeeklySessions{},
	}
	w.logger = logger.With("workspace_id", w.id, "user_id", opts.UserID)
	timeout := opts.SaveTimeout
	if timeout <= 0 {
		timeout = defaultSaveTimeout
	}
	w.queue = newSaveQueue(timeout, w.runSave)
	return w
}

// ID identifies this workspace instance in logs.
func (w *Workspace) ID() string { return w.id }

// UserID returns the owner of the sessions.
func (w *Workspace) UserID() string { return w.userID }

// State reports the current load state.
func (w *Workspace) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Load reads the user's sessions from the backend and makes the workspace
// ready. An empty result is seeded with the current week. The commit of the
// loaded data is not written back.
func (w *Workspace) Load(ctx context.Context) error {
	w.mu.Lock()
	switch {
	case w.closed:
		w.mu.Unlock()
		return ErrClosed
	case w.state == StateReady:
		w.mu.Unlock()
		return ErrAlreadyLoaded
	case w.state == StateLoading:
		w.mu.Unlock()
		return ErrNotReady
	}
	w.state = StateLoading
	w.mu.Unlock()

	started := time.Now()
	loaded, err := w.backend.Load(ctx, w.userID)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state = StateUninitialized
		w.logger.Error("load timesheet", "error", err)
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	seeded := false
	if len(loaded) == 0 {
		loaded = timesheet.EnsureWeek(loaded, timesheet.MondayOf(w.now()))
		seeded = true
	}

	w.state = StateReady
	w.skipSave = true
	w.commit(loaded, "")

	w.logger.Info("timesheet loaded", "weeks", len(w.sessions), "active", w.active, "seeded", seeded, "duration", time.Since(started))
	w.record(ctx, activity.TypeTimesheetLoaded, "", fmt.Sprintf("Loaded %d week(s)", len(w.sessions)), map[string]any{
		"weeks":  len(w.sessions),
		"seeded": seeded,
	})
	if seeded {
		w.record(ctx, activity.TypeWeekCreated, w.active.String(), "Started week "+w.active.String(), nil)
	}
	return nil
}

// commit installs next as the current state, re-resolves the active week and
// hands a snapshot to the save queue. Callers hold w.mu.
func (w *Workspace) commit(next timesheet.WeeklySessions, active timesheet.WeekKey) {
	if active == "" {
		active = w.active
	}
	w.sessions = next
	w.active = timesheet.ResolveActive(next, active, w.now())
	w.persist()
}

func (w *Workspace) persist() {
	if w.skipSave {
		w.skipSave = false
		return
	}
	w.queue.enqueue(w.sessions.Clone())
}

func (w *Workspace) runSave(ctx context.Context, job saveJob) error {
	started := time.Now()
	err := w.backend.Save(ctx, w.userID, job.snapshot)
	// Audit entries must land even when the save ran out of time.
	recordCtx := context.WithoutCancel(ctx)
	if err != nil {
		w.logger.Error("save timesheet", "seq", job.seq, "error", err)
		w.record(recordCtx, activity.TypeSaveFailed, "", err.Error(), map[string]any{
			"seq":   job.seq,
			"weeks": len(job.snapshot),
		})
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	elapsed := time.Since(started)
	w.logger.Debug("timesheet saved", "seq", job.seq, "weeks", len(job.snapshot), "duration", elapsed)
	w.record(recordCtx, activity.TypeTimesheetSaved, "", fmt.Sprintf("Saved %d week(s)", len(job.snapshot)), map[string]any{
		"seq":         job.seq,
		"weeks":       len(job.snapshot),
		"duration_ms": elapsed.Milliseconds(),
	})
	return nil
}

// mutate applies fn to the current state. fn returns the next sessions and
// the preferred active key ("" keeps the current one). A nil result means no
// data changed: only the active key moves and nothing is saved.
func (w *Workspace) mutate(fn func(ws timesheet.WeeklySessions, active timesheet.WeekKey) (timesheet.WeeklySessions, timesheet.WeekKey, error)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.state != StateReady {
		return ErrNotReady
	}
	next, active, err := fn(w.sessions, w.active)
	if err != nil {
		return err
	}
	if next == nil {
		if active != "" {
			w.active = active
		}
		return nil
	}
	w.commit(next, active)
	return nil
}

// unlessNoop returns nil when next is prev itself. The store functions hand
// back their input unchanged on no-ops.
func unlessNoop(prev, next timesheet.WeeklySessions) timesheet.WeeklySessions {
	if reflect.ValueOf(prev).UnsafePointer() == reflect.ValueOf(next).UnsafePointer() {
		return nil
	}
	return next
}

func (w *Workspace) record(ctx context.Context, typ activity.ActivityType, weekKey, summary string, details map[string]any) {
	if w.activity == nil {
		return
	}
	w.activity.RecordDetails(ctx, w.userID, typ, weekKey, summary, details)
}

// Flush waits until every save issued so far has finished. It returns the
// failures among them that no later successful save has replaced, so
// concurrent callers get the same answer.
func (w *Workspace) Flush(ctx context.Context) error {
	return w.queue.flush(ctx)
}

// Close drains the save queue and stops the worker. Pending saves complete
// before Close returns.
func (w *Workspace) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	err := w.queue.flush(ctx)
	w.queue.close()
	return err
}
