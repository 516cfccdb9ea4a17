package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qanova/timesheet/internal/domain/timesheet"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var week string

	root := &cobra.Command{
		Use:           "timesheet",
		Short:         "Track weekly working hours and send the weekly report",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&week, "week", "", "any date (YYYY-MM-DD) in the week to work on; defaults to the newest week")

	root.AddCommand(newWeeksCmd(&week))
	root.AddCommand(newMonthsCmd())
	root.AddCommand(newShowCmd(&week))
	root.AddCommand(newSelectCmd())
	root.AddCommand(newNextCmd())
	root.AddCommand(newOlderCmd(&week))
	root.AddCommand(newNewerCmd(&week))
	root.AddCommand(newAddCmd(&week))
	root.AddCommand(newSetCmd(&week))
	root.AddCommand(newRemoveCmd(&week))
	root.AddCommand(newDeleteCmd(&week))
	root.AddCommand(newReportCmd(&week))
	root.AddCommand(newNameCmd())
	root.AddCommand(newActivityCmd(&week))
	root.AddCommand(newServeCmd())
	return root
}

// withApp opens the app, makes the week containing the date week active when
// set, runs fn and closes the app. Pending saves are waited for before the
// command returns.
func withApp(cmd *cobra.Command, week string, fn func(ctx context.Context, a *app) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.close(ctx))
	}()

	if week != "" {
		if _, err := a.selectWeek(ctx, week); err != nil {
			return err
		}
	}
	return fn(ctx, a)
}

// parseDay accepts a day index (0 = Monday) or a weekday name, abbreviated to
// at least three letters.
func parseDay(value string) (int, error) {
	if i, err := strconv.Atoi(value); err == nil {
		if i < 0 || i >= timesheet.DaysPerWeek {
			return 0, fmt.Errorf("day index %d out of range 0-%d", i, timesheet.DaysPerWeek-1)
		}
		return i, nil
	}
	v := strings.ToLower(strings.TrimSpace(value))
	if len(v) >= 3 {
		for i, name := range timesheet.DayNames {
			if strings.HasPrefix(strings.ToLower(name), v) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown day %q: use 0-4 or monday to friday", value)
}

func parseIndex(value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid session index %q", value)
	}
	return i, nil
}
