package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qanova/timesheet/internal/config"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TIMESHEET_ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("TIMESHEET_CONFIG_PATH", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
	require.Equal(t, "timesheet.db", cfg.Storage.SQLite.Path)
	require.Equal(t, 30*time.Second, cfg.Storage.SaveTimeout)
	require.Equal(t, "local", cfg.User.ID)
	require.Equal(t, 22.5, cfg.Report.HourlyRate)
	require.Equal(t, "CHF", cfg.Report.Currency)
	require.Equal(t, "Hi Rita, Simone,", cfg.Report.Greeting)
	require.False(t, cfg.Export.Minio.Enabled())
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
user:
  id: jo
storage:
  backend: tiered
  remote: redis
  connect_timeout: 3s
  redis:
    addr: cache:6379
report:
  company: Acme
  hourly_rate: 30
log:
  level: debug
`), 0o600))
	t.Setenv("TIMESHEET_CONFIG_PATH", path)
	t.Setenv("TIMESHEET_REPORT_COMPANY", "Acme Ltd")
	t.Setenv("TIMESHEET_REDIS_DB", "2")
	t.Setenv("TIMESHEET_SAVE_TIMEOUT", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "jo", cfg.User.ID)
	require.Equal(t, config.BackendTiered, cfg.Storage.Backend)
	require.Equal(t, "redis", cfg.Storage.Remote)
	require.Equal(t, 3*time.Second, cfg.Storage.ConnectTimeout)
	require.Equal(t, 5*time.Second, cfg.Storage.SaveTimeout)
	require.Equal(t, "cache:6379", cfg.Storage.Redis.Addr)
	require.Equal(t, 2, cfg.Storage.Redis.DB)
	require.Equal(t, "Acme Ltd", cfg.Report.Company)
	require.Equal(t, 30.0, cfg.Report.HourlyRate)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvFile(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TIMESHEET_TEST_ONLY_CURRENCY=EUR\n"), 0o600))
	t.Setenv("TIMESHEET_ENV_FILE", envFile)
	t.Cleanup(func() { os.Unsetenv("TIMESHEET_TEST_ONLY_CURRENCY") })

	_, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "EUR", os.Getenv("TIMESHEET_TEST_ONLY_CURRENCY"))
}

func TestLoadInvalid(t *testing.T) {
	isolate(t)

	t.Setenv("TIMESHEET_SERVER_PORT", "eighty")
	_, err := config.Load()
	require.ErrorContains(t, err, "TIMESHEET_SERVER_PORT")

	t.Setenv("TIMESHEET_SERVER_PORT", "")
	t.Setenv("TIMESHEET_BACKEND", "postgres")
	_, err = config.Load()
	require.ErrorContains(t, err, "invalid config")
}

func TestValidateBackendRequirements(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMongo
	require.ErrorContains(t, cfg.Validate(), "storage.mongo.uri")

	cfg.Storage.Mongo.URI = "mongodb://localhost:27017"
	require.NoError(t, cfg.Validate())

	cfg.Storage.Backend = config.BackendTiered
	require.ErrorContains(t, cfg.Validate(), "storage.remote")

	cfg.Storage.Remote = config.BackendMongo
	require.NoError(t, cfg.Validate())

	cfg.Report.HourlyRate = 0
	require.Error(t, cfg.Validate())
}
