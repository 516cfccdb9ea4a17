package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qanova/timesheet/internal/domain/workspace"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TIMESHEET_ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("TIMESHEET_CONFIG_PATH", "")
	t.Setenv("TIMESHEET_BACKEND", "sqlite")
	t.Setenv("TIMESHEET_DB_PATH", filepath.Join(dir, "data", "timesheet.db"))
	t.Setenv("TIMESHEET_USER_ID", "tester")
	t.Setenv("TIMESHEET_DISPLAY_NAME", "Jo Doe")
	t.Setenv("TIMESHEET_EXPORT_DIR", "")
	t.Setenv("TIMESHEET_LOG_FILE", filepath.Join(dir, "logs", "timesheet.log"))
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, "", args...)
	require.NoError(t, err, out)
	return out
}

func TestCLIRecordAndReport(t *testing.T) {
	dir := setupEnv(t)

	out := mustRun(t, "--week", "2024-04-10", "add", "mon")
	require.Contains(t, out, "Added session 0 to Monday of week 2024-04-08")

	mustRun(t, "--week", "2024-04-08", "set", "monday", "0", "start", "09:00")
	out = mustRun(t, "--week", "2024-04-08", "set", "0", "0", "end", "12:00")
	require.Contains(t, out, "[0] 09:00-12:00")
	require.Contains(t, out, "Total: 3h 00m 00s")

	exportDir := filepath.Join(dir, "out")
	out = mustRun(t, "--week", "2024-04-08", "report", "--out", exportDir)
	require.Contains(t, out, "\t[Monday       3h 00m 00s]")
	require.Contains(t, out, "Total: 3h 00m 00s")
	require.Contains(t, out, "Jo Doe")

	data, err := os.ReadFile(filepath.Join(exportDir, "timesheet-tester-2024-04-08.txt"))
	require.NoError(t, err)
	require.Contains(t, string(data), "QanovaTech - 3h 00m 00s")

	out = mustRun(t, "weeks")
	require.Contains(t, out, "2024-04-08  3h 00m 00s")

	out = mustRun(t, "months")
	require.Contains(t, out, "April 2024  3 h - CHF 67.50")
	require.Contains(t, out, "08 Apr")
}

func TestCLIDeleteAsksForConfirmation(t *testing.T) {
	setupEnv(t)

	mustRun(t, "--week", "2024-04-08", "add", "tue")
	mustRun(t, "--week", "2024-04-08", "set", "tue", "0", "start", "08:00")

	out, err := run(t, "n\n", "delete", "2024-04-08")
	require.NoError(t, err)
	require.Contains(t, out, workspace.DeletePrompt)
	require.Contains(t, out, "Kept")
	require.Contains(t, mustRun(t, "weeks"), "2024-04-08")

	out, err = run(t, "y\n", "delete", "2024-04-08")
	require.NoError(t, err)
	require.Contains(t, out, "Deleted")
	require.NotContains(t, mustRun(t, "weeks"), "2024-04-08")

	out = mustRun(t, "activity", "--type", "week_deleted")
	require.Contains(t, out, "Deleted week 2024-04-08")
}

func TestCLIDeleteUnknownWeek(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "", "delete", "2001-01-01", "--yes")
	require.ErrorIs(t, err, workspace.ErrWeekNotFound)
}

func TestCLIDisplayName(t *testing.T) {
	setupEnv(t)

	require.Equal(t, "Jo Doe\n", mustRun(t, "name"))
	require.Equal(t, "Sam Roe\n", mustRun(t, "name", "  Sam Roe "))
	require.Equal(t, "Sam Roe\n", mustRun(t, "name"))
}

func TestCLIRejectsBadArguments(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "", "add", "saturday")
	require.Error(t, err)
	_, err = run(t, "", "set", "mon", "0", "middle", "09:00")
	require.Error(t, err)
	_, err = run(t, "", "--week", "04/08/2024", "show")
	require.Error(t, err)
	_, err = run(t, "", "serve", "--transport", "pigeon")
	require.Error(t, err)
}

func TestParseDay(t *testing.T) {
	cases := map[string]int{"0": 0, "4": 4, "mon": 0, "Tuesday": 1, "WED": 2, "thurs": 3, "fri": 4}
	for in, want := range cases {
		got, err := parseDay(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, in := range []string{"5", "-1", "mo", "sat", ""} {
		_, err := parseDay(in)
		require.Error(t, err, in)
	}
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	require.Equal(t, slog.LevelError, parseLogLevel("error"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	require.Equal(t, slog.LevelWarn, parseLogLevel(""))
}

func TestLogFileWriterKeepsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	w, err := newLogFileWriter(path)
	require.NoError(t, err)
	w.limit = 16
	w.keep = 8

	_, err = w.Write([]byte("0123456789"))
	require.NoError(t, err)
	_, err = w.Write([]byte("abcdefghij"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "cdefghij", string(data))
}
