package mcp

import (
	"context"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/domain/report"
	"github.com/qanova/timesheet/internal/domain/timesheet"
)

const defaultActivityLimit = 20

type tools struct {
	svc      Services
	currency string
}

func (t *tools) register(server *sdkmcp.Server) {
	// Weeks
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_weeks",
		Description: "List stored week keys, newest first, and the active week",
	}, t.listWeeks)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_week",
		Description: "Show the sessions and daily totals of a week",
	}, t.getWeek)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "select_week",
		Description: "Make a week active, by existing key or by any date inside it",
	}, t.selectWeek)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "next_week",
		Description: "Open the week after the latest stored week",
	}, t.nextWeek)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "navigate_week",
		Description: "Move the active week to the next older or newer stored week",
	}, t.navigateWeek)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_week",
		Description: "Delete a week; weeks with recorded hours need confirm=true",
	}, t.deleteWeek)

	// Sessions
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_session",
		Description: "Append an empty session to a day of the active week",
	}, t.addSession)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_session",
		Description: "Set the start or end time of a session in the active week",
	}, t.updateSession)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_session",
		Description: "Remove a session from a day of the active week",
	}, t.removeSession)

	// Reporting
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "monthly_summary",
		Description: "Total hours and pay per month",
	}, t.monthlySummary)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "generate_report",
		Description: "Render the email report for the active week",
	}, t.generateReport)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_display_name",
		Description: "Set the name that signs the weekly report",
	}, t.setDisplayName)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "List recent timesheet activity (loads, saves, week changes)",
	}, t.getRecentActivity)
}

func (t *tools) listWeeks(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, WeekList, error) {
	keys := t.svc.Workspace.Weeks()
	out := WeekList{Active: t.svc.Workspace.ActiveKey().String(), Weeks: make([]string, 0, len(keys))}
	for _, k := range keys {
		out.Weeks = append(out.Weeks, k.String())
	}
	return nil, out, nil
}

func (t *tools) getWeek(ctx context.Context, _ *sdkmcp.CallToolRequest, in WeekParams) (*sdkmcp.CallToolResult, WeekView, error) {
	view, err := t.weekView(timesheet.WeekKey(in.Week))
	return nil, view, err
}

func (t *tools) selectWeek(ctx context.Context, _ *sdkmcp.CallToolRequest, in SelectWeekParams) (*sdkmcp.CallToolResult, WeekView, error) {
	switch {
	case in.Date != "":
		date, err := timesheet.ParseDate(in.Date)
		if err != nil {
			return nil, WeekView{}, toolError(err)
		}
		if _, err := t.svc.Workspace.SelectDate(ctx, date); err != nil {
			return nil, WeekView{}, toolError(err)
		}
	case in.Week != "":
		if err := t.svc.Workspace.SelectWeek(timesheet.WeekKey(in.Week)); err != nil {
			return nil, WeekView{}, toolError(err)
		}
	default:
		return nil, WeekView{}, invalidInput("week or date is required")
	}
	return t.afterEdit(ctx)
}

func (t *tools) nextWeek(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, WeekView, error) {
	if _, err := t.svc.Workspace.NextWeek(ctx); err != nil {
		return nil, WeekView{}, toolError(err)
	}
	return t.afterEdit(ctx)
}

func (t *tools) navigateWeek(ctx context.Context, _ *sdkmcp.CallToolRequest, in NavigateWeekParams) (*sdkmcp.CallToolResult, NavigateResult, error) {
	var (
		key   timesheet.WeekKey
		moved bool
		err   error
	)
	switch strings.ToLower(in.Direction) {
	case "older":
		key, moved, err = t.svc.Workspace.OlderWeek()
	case "newer":
		key, moved, err = t.svc.Workspace.NewerWeek()
	default:
		return nil, NavigateResult{}, invalidInput("direction must be older or newer")
	}
	if err != nil {
		return nil, NavigateResult{}, toolError(err)
	}
	return nil, NavigateResult{Week: key.String(), Moved: moved}, nil
}

func (t *tools) deleteWeek(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteWeekParams) (*sdkmcp.CallToolResult, DeleteWeekResult, error) {
	key := timesheet.WeekKey(in.Week)
	if key == "" {
		key = t.svc.Workspace.ActiveKey()
	}
	if err := t.svc.Workspace.DeleteWeek(ctx, key, in.Confirm); err != nil {
		return nil, DeleteWeekResult{}, toolError(err)
	}
	out := DeleteWeekResult{Deleted: key.String(), Active: t.svc.Workspace.ActiveKey().String()}
	if err := t.svc.Workspace.Flush(ctx); err != nil {
		out.SaveError = err.Error()
	}
	return nil, out, nil
}

func (t *tools) addSession(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddSessionParams) (*sdkmcp.CallToolResult, WeekView, error) {
	if err := checkDay(in.Day); err != nil {
		return nil, WeekView{}, err
	}
	if err := t.svc.Workspace.AddSession(in.Day); err != nil {
		return nil, WeekView{}, toolError(err)
	}
	return t.afterEdit(ctx)
}

func (t *tools) updateSession(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateSessionParams) (*sdkmcp.CallToolResult, WeekView, error) {
	if err := checkDay(in.Day); err != nil {
		return nil, WeekView{}, err
	}
	field := timesheet.Field(strings.ToLower(in.Field))
	if !field.Valid() {
		return nil, WeekView{}, invalidInput("field must be start or end")
	}
	if err := t.svc.Workspace.UpdateSession(in.Day, in.Session, field, strings.TrimSpace(in.Value)); err != nil {
		return nil, WeekView{}, toolError(err)
	}
	return t.afterEdit(ctx)
}

func (t *tools) removeSession(ctx context.Context, _ *sdkmcp.CallToolRequest, in RemoveSessionParams) (*sdkmcp.CallToolResult, WeekView, error) {
	if err := checkDay(in.Day); err != nil {
		return nil, WeekView{}, err
	}
	if err := t.svc.Workspace.RemoveSession(in.Day, in.Session); err != nil {
		return nil, WeekView{}, toolError(err)
	}
	return t.afterEdit(ctx)
}

func (t *tools) monthlySummary(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, MonthlySummary, error) {
	months := t.svc.Workspace.Months()
	out := MonthlySummary{
		Currency:   t.currency,
		HourlyRate: t.svc.Workspace.HourlyRate(),
		Months:     make([]MonthView, 0, len(months)),
	}
	for _, m := range months {
		weeks := make([]string, 0, len(m.Weeks))
		for _, k := range m.Weeks {
			weeks = append(weeks, k.String())
		}
		out.Months = append(out.Months, MonthView{
			Label: m.Label,
			Hours: m.TotalHours,
			Pay:   m.TotalPay,
			Line:  report.MonthLine(m, t.currency),
			Weeks: weeks,
		})
	}
	return nil, out, nil
}

func (t *tools) generateReport(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ReportResult, error) {
	name, err := t.svc.Profiles.DisplayName(ctx, getUserID(ctx))
	if err != nil {
		return nil, ReportResult{}, toolError(err)
	}
	return nil, ReportResult{
		Week:   t.svc.Workspace.ActiveKey().String(),
		Report: t.svc.Workspace.Report(name),
	}, nil
}

func (t *tools) setDisplayName(ctx context.Context, _ *sdkmcp.CallToolRequest, in SetDisplayNameParams) (*sdkmcp.CallToolResult, DisplayNameResult, error) {
	name, err := t.svc.Profiles.SetDisplayName(ctx, getUserID(ctx), in.Name)
	if err != nil {
		return nil, DisplayNameResult{}, toolError(err)
	}
	return nil, DisplayNameResult{DisplayName: name}, nil
}

func (t *tools) getRecentActivity(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetRecentActivityParams) (*sdkmcp.CallToolResult, ActivityList, error) {
	opts := activity.ListActivityOptions{Limit: in.Limit}
	if opts.Limit <= 0 {
		opts.Limit = defaultActivityLimit
	}
	if in.Week != "" {
		opts.WeekKey = &in.Week
	}
	if in.Type != "" {
		typ := activity.ActivityType(in.Type)
		opts.ActivityType = &typ
	}
	entries, err := t.svc.Activity.GetRecentActivity(ctx, getUserID(ctx), opts)
	if err != nil {
		return nil, ActivityList{}, toolError(err)
	}
	out := ActivityList{Entries: make([]ActivityItem, 0, len(entries))}
	for _, e := range entries {
		item := ActivityItem{
			ID:        e.ID,
			Type:      string(e.ActivityType),
			Summary:   e.Summary,
			Details:   e.Details,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
		if e.WeekKey != nil {
			item.Week = *e.WeekKey
		}
		out.Entries = append(out.Entries, item)
	}
	return nil, out, nil
}

// afterEdit waits for the save an edit triggered and returns the active week.
// A failed save is reported alongside the edited week; the edit stays in
// memory either way.
func (t *tools) afterEdit(ctx context.Context) (*sdkmcp.CallToolResult, WeekView, error) {
	saveErr := t.svc.Workspace.Flush(ctx)
	view, err := t.weekView("")
	if err != nil {
		return nil, WeekView{}, err
	}
	if saveErr != nil {
		view.SaveError = saveErr.Error()
	}
	return nil, view, nil
}

func (t *tools) weekView(key timesheet.WeekKey) (WeekView, error) {
	active := t.svc.Workspace.ActiveKey()
	if key == "" {
		key = active
	}
	key, week, err := t.svc.Workspace.Week(key)
	if err != nil {
		// The active week may not exist yet after every week was deleted.
		if key != active {
			return WeekView{}, toolError(err)
		}
		week = timesheet.NewWeek()
	}
	rows, err := report.WeekRows(key, week)
	if err != nil {
		return WeekView{}, toolError(err)
	}
	return WeekView{
		Week:   key.String(),
		Active: key == active,
		Days:   rows,
		Total:  timesheet.FormatDuration(timesheet.WeekTotal(week)),
	}, nil
}

func checkDay(day int) error {
	if day < 0 || day >= timesheet.DaysPerWeek {
		return invalidInput("day must be between 0 (Monday) and 4 (Friday)")
	}
	return nil
}
