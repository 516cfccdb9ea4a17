package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/qanova/timesheet/internal/mcp"
	"github.com/qanova/timesheet/internal/transport"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the timesheet as MCP tools over stdio or HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mode != "stdio" && mode != "http" {
				return fmt.Errorf("unknown transport %q: use stdio or http", mode)
			}
			return withApp(cmd, "", func(ctx context.Context, a *app) error {
				server := mcp.NewServer(mcp.Config{
					Services: mcp.Services{
						Workspace: a.workspace,
						Profiles:  a.profiles,
						Activity:  a.activity,
					},
					Currency: a.cfg.Report.Currency,
					Version:  version,
					Logger:   a.logger,
				})

				ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				if mode == "stdio" {
					return runStdio(ctx, a.logger, server)
				}
				addr := net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port))
				return runHTTP(ctx, a, server, addr)
			})
		},
	}
	cmd.Flags().StringVar(&mode, "transport", "stdio", "stdio or http")
	return cmd
}

func runStdio(ctx context.Context, logger *slog.Logger, server *sdkmcp.Server) error {
	logger.Info("starting stdio transport")
	// Run returns when stdin closes or ctx is canceled.
	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func runHTTP(ctx context.Context, a *app, server *sdkmcp.Server, addr string) error {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           transport.NewServer(mcpHandler, a.workspace, a.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	a.logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
