package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qanova/timesheet/internal/domain/workspace"
)

type fixedState workspace.State

func (s fixedState) State() workspace.State { return workspace.State(s) }

func TestHTTPServer_MCPRoute(t *testing.T) {
	var hit string
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = r.Method
		w.WriteHeader(http.StatusAccepted)
	})
	server := httptest.NewServer(NewServer(mcpHandler, fixedState(workspace.StateReady), nil))
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL+"/mcp", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, http.MethodPost, hit)
}

func TestHTTPServer_Health(t *testing.T) {
	server := httptest.NewServer(NewServer(http.NotFoundHandler(), fixedState(workspace.StateReady), nil))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, "ok", string(body))
}

func TestHTTPServer_HealthWhileLoading(t *testing.T) {
	server := httptest.NewServer(NewServer(http.NotFoundHandler(), fixedState(workspace.StateLoading), nil))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(body), "loading")
}
