package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/qanova/timesheet/internal/domain/workspace"
)

// StateReporter reports whether the timesheet has finished loading.
type StateReporter interface {
	State() workspace.State
}

// NewServer creates the HTTP router: the MCP endpoint under /mcp and a
// readiness probe under /health.
func NewServer(mcpHandler http.Handler, state StateReporter, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Handle("/mcp", mcpHandler)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		s := state.State()
		if s != workspace.StateReady {
			http.Error(w, s.String(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(started))
		})
	}
}
