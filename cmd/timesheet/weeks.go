package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/qanova/timesheet/internal/domain/report"
	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/qanova/timesheet/internal/domain/workspace"
)

func newWeeksCmd(week *string) *cobra.Command {
	return &cobra.Command{
		Use:   "weeks",
		Short: "List stored weeks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *week, func(_ context.Context, a *app) error {
				out := cmd.OutOrStdout()
				active := a.workspace.ActiveKey()
				for _, key := range a.workspace.Weeks() {
					_, w, err := a.workspace.Week(key)
					if err != nil {
						return err
					}
					marker := " "
					if key == active {
						marker = "*"
					}
					fmt.Fprintf(out, "%s %s  %s\n", marker, key, timesheet.FormatDuration(timesheet.WeekTotal(w)))
				}
				return nil
			})
		},
	}
}

func newMonthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "Summarize hours and pay per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, "", func(_ context.Context, a *app) error {
				out := cmd.OutOrStdout()
				for _, m := range a.workspace.Months() {
					fmt.Fprintln(out, report.MonthLine(m, a.cfg.Report.Currency))
					labels := make([]string, 0, len(m.Weeks))
					for _, key := range m.Weeks {
						labels = append(labels, report.WeekLabel(key))
					}
					fmt.Fprintf(out, "  %s\n", strings.Join(labels, ", "))
				}
				return nil
			})
		},
	}
}

func newShowCmd(week *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the sessions of the active week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *week, func(_ context.Context, a *app) error {
				return printWeek(cmd.OutOrStdout(), a)
			})
		},
	}
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <date>",
		Short: "Open the week containing date, creating it when needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, "", func(ctx context.Context, a *app) error {
				key, err := a.selectWeek(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Week of %s\n", key)
				return nil
			})
		},
	}
}

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Start the week after the newest stored week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, "", func(ctx context.Context, a *app) error {
				key, err := a.workspace.NextWeek(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Week of %s\n", key)
				return nil
			})
		},
	}
}

func newOlderCmd(week *string) *cobra.Command {
	return newStepCmd(week, "older", "Print the stored week before the active one", func(w *workspace.Workspace) (timesheet.WeekKey, bool, error) {
		return w.OlderWeek()
	})
}

func newNewerCmd(week *string) *cobra.Command {
	return newStepCmd(week, "newer", "Print the stored week after the active one", func(w *workspace.Workspace) (timesheet.WeekKey, bool, error) {
		return w.NewerWeek()
	})
}

func newStepCmd(week *string, use, short string, step func(*workspace.Workspace) (timesheet.WeekKey, bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *week, func(_ context.Context, a *app) error {
				key, ok, err := step(a.workspace)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "No %s week\n", use)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Week of %s\n", key)
				return nil
			})
		},
	}
}

func newAddCmd(week *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <day>",
		Short: "Append an empty session to a day of the active week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, *week, func(_ context.Context, a *app) error {
				if err := a.workspace.AddSession(day); err != nil {
					return err
				}
				key, w, err := a.workspace.Week("")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added session %d to %s of week %s\n", len(w[day])-1, timesheet.DayNames[day], key)
				return nil
			})
		},
	}
}

func newSetCmd(week *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <day> <session> <start|end> <HH:MM|->",
		Short: "Set the start or end of a session; - clears it",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			idx, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			field := timesheet.Field(strings.ToLower(args[2]))
			if !field.Valid() {
				return fmt.Errorf("unknown field %q: use start or end", args[2])
			}
			value := args[3]
			if value == "-" {
				value = ""
			}
			return withApp(cmd, *week, func(_ context.Context, a *app) error {
				if err := a.workspace.UpdateSession(day, idx, field, value); err != nil {
					return err
				}
				return printWeek(cmd.OutOrStdout(), a)
			})
		},
	}
}

func newRemoveCmd(week *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <day> <session>",
		Short: "Remove a session from a day of the active week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			idx, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return withApp(cmd, *week, func(_ context.Context, a *app) error {
				if err := a.workspace.RemoveSession(day, idx); err != nil {
					return err
				}
				return printWeek(cmd.OutOrStdout(), a)
			})
		},
	}
}

func newDeleteCmd(week *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [date]",
		Short: "Delete a week; asks first when it holds recorded hours",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := *week
			if len(args) == 1 {
				target = args[0]
			}
			var key timesheet.WeekKey
			if target != "" {
				k, err := timesheet.ParseWeekKey(target)
				if err != nil {
					return err
				}
				key = k
			}
			return withApp(cmd, "", func(ctx context.Context, a *app) error {
				err := a.workspace.DeleteWeek(ctx, key, yes)
				if errors.Is(err, workspace.ErrConfirmationRequired) {
					if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), workspace.DeletePrompt) {
						fmt.Fprintln(cmd.OutOrStdout(), "Kept")
						return nil
					}
					err = a.workspace.DeleteWeek(ctx, key, true)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func printWeek(out io.Writer, a *app) error {
	key, w, err := a.workspace.Week("")
	switch {
	case errors.Is(err, workspace.ErrWeekNotFound):
		// Every week was deleted; the active one comes back on the next edit.
		w = timesheet.NewWeek()
	case err != nil:
		return err
	}
	rows, err := report.WeekRows(key, w)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Week of %s\n", key)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Name, row.Date, formatSessions(row.Sessions), row.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Total: %s\n", timesheet.FormatDuration(timesheet.WeekTotal(w)))
	return nil
}

func formatSessions(sessions []timesheet.Session) string {
	if len(sessions) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(sessions))
	for i, s := range sessions {
		parts = append(parts, fmt.Sprintf("[%d] %s-%s", i, clockOrBlank(s.Start), clockOrBlank(s.End)))
	}
	return strings.Join(parts, " ")
}

func clockOrBlank(v string) string {
	if v == "" {
		return "--:--"
	}
	return v
}
