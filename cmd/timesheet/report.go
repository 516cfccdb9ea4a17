package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qanova/timesheet/internal/domain/activity"
	"github.com/qanova/timesheet/internal/domain/timesheet"
	"github.com/qanova/timesheet/internal/export"
)

func newReportCmd(week *string) *cobra.Command {
	var (
		copyIt bool
		outDir string
		upload bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the weekly report email for the active week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *week, func(ctx context.Context, a *app) error {
				name, err := a.profiles.DisplayName(ctx, a.cfg.User.ID)
				if err != nil {
					return err
				}
				text := a.workspace.Report(name)
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, text)

				var sinks []export.Sink
				if copyIt {
					sinks = append(sinks, export.NewClipboard())
				}
				dir := outDir
				if dir == "" {
					dir = a.cfg.Export.Dir
				}
				if dir != "" {
					sinks = append(sinks, export.NewFile(dir))
				}
				if upload {
					if !a.cfg.Export.Minio.Enabled() {
						return fmt.Errorf("upload: no object store configured")
					}
					m, err := export.NewMinio(a.cfg.Export.Minio)
					if err != nil {
						return err
					}
					sinks = append(sinks, m)
				}

				fileName := export.FileName(a.cfg.User.ID, a.workspace.ActiveKey())
				for _, sink := range sinks {
					where, err := sink.Export(ctx, fileName, text)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Report exported to %s\n", where)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&copyIt, "copy", false, "copy the report to the clipboard")
	cmd.Flags().StringVar(&outDir, "out", "", "write the report into this directory (default export.dir)")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload the report to the configured object store")
	return cmd
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name [display name]",
		Short: "Show or change the name the report is signed with",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, "", func(ctx context.Context, a *app) error {
				var (
					name string
					err  error
				)
				if len(args) == 1 {
					name, err = a.profiles.SetDisplayName(ctx, a.cfg.User.ID, args[0])
				} else {
					name, err = a.profiles.DisplayName(ctx, a.cfg.User.ID)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			})
		},
	}
}

func newActivityCmd(week *string) *cobra.Command {
	var (
		limit int
		typ   string
	)

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List recent timesheet events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := activity.ListActivityOptions{Limit: limit}
			if *week != "" {
				key, err := timesheet.ParseWeekKey(*week)
				if err != nil {
					return err
				}
				k := key.String()
				opts.WeekKey = &k
			}
			if typ != "" {
				t := activity.ActivityType(typ)
				opts.ActivityType = &t
			}
			return withApp(cmd, "", func(ctx context.Context, a *app) error {
				entries, err := a.activity.GetRecentActivity(ctx, a.cfg.User.ID, opts)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, e := range entries {
					fmt.Fprintf(out, "%s  %-20s %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.ActivityType, e.Summary)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of events")
	cmd.Flags().StringVar(&typ, "type", "", "only events of this type")
	return cmd
}
