package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/domain/timesheet"
)

// Workspace defines the timesheet operations needed by MCP.
type Workspace interface {
	UserID() string
	ActiveKey() timesheet.WeekKey
	Weeks() []timesheet.WeekKey
	Week(key timesheet.WeekKey) (timesheet.WeekKey, timesheet.Week, error)
	SelectWeek(key timesheet.WeekKey) error
	SelectDate(ctx context.Context, date time.Time) (timesheet.WeekKey, error)
	NextWeek(ctx context.Context) (timesheet.WeekKey, error)
	OlderWeek() (timesheet.WeekKey, bool, error)
	NewerWeek() (timesheet.WeekKey, bool, error)
	AddSession(dayIndex int) error
	UpdateSession(dayIndex, sessionIndex int, field timesheet.Field, value string) error
	RemoveSession(dayIndex, sessionIndex int) error
	DeleteWeek(ctx context.Context, key timesheet.WeekKey, confirmed bool) error
	Months() []timesheet.MonthSummary
	HourlyRate() float64
	Report(displayName string) string
	Flush(ctx context.Context) error
}

// ProfileService defines display name operations needed by MCP.
type ProfileService interface {
	DisplayName(ctx context.Context, userID string) (string, error)
	SetDisplayName(ctx context.Context, userID, name string) (string, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, userID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains everything the tools call into.
type Services struct {
	Workspace Workspace
	Profiles  ProfileService
	Activity  ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Currency string
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "timesheet",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(userMiddleware(cfg.Services.Workspace.UserID()))
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	t := &tools{svc: cfg.Services, currency: cfg.Currency}
	if t.currency == "" {
		t.currency = "CHF"
	}
	t.register(server)

	return server
}
