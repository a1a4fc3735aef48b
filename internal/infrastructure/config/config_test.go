package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/civicdesk/civicdesk/internal/shared/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite
  path: /tmp/civic.db
issues:
  strict_transitions: true
`)

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/civic.db", cfg.Database.GetDSN())
	assert.True(t, cfg.Issues.StrictTransitions)
	assert.Equal(t, 50, cfg.Issues.DefaultListLimit)
	assert.Equal(t, 500, cfg.Issues.MaxListLimit)
	assert.InDelta(t, 2.3, cfg.Analytics.FallbackAvgResolutionDays, 0.0001)
	assert.Equal(t, "2.5 days", cfg.Analytics.FallbackDepartmentResolution)
	assert.Equal(t, 30, cfg.Analytics.DefaultTrendDays)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: sqlite\n")
	t.Setenv("CIVICDESK_SERVER_PORT", "7070")
	t.Setenv("CIVICDESK_RATE_LIMIT_REQUESTS", "5")

	cfg, err := Load("production", path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, "production", cfg.Server.Mode)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load("", filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: oracle\n")
		_, err := Load("", path)
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("list limits out of order", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: sqlite\nissues:\n  default_list_limit: 600\n")
		_, err := Load("", path)
		assert.ErrorContains(t, err, "default_list_limit")
	})

	t.Run("zero rate limit window with redis", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: sqlite\nredis:\n  enabled: true\nrate_limit:\n  window_seconds: 0\n")
		_, err := Load("", path)
		assert.ErrorContains(t, err, "rate_limit.window_seconds")
	})

	t.Run("zero rate limit requests with redis", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: sqlite\nredis:\n  enabled: true\nrate_limit:\n  requests: 0\n")
		_, err := Load("", path)
		assert.ErrorContains(t, err, "rate_limit.requests")
	})
}

func TestLoad_RateLimitIgnoredWithoutRedis(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: sqlite\nrate_limit:\n  window_seconds: 0\n")
	cfg, err := Load("", path)
	require.NoError(t, err)
	assert.False(t, cfg.Redis.Enabled)
}
