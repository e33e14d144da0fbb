package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, DriverFile, cfg.ReportLogDriver)
	assert.Equal(t, "reports.csv", cfg.ReportLogPath)
	assert.False(t, cfg.AlertsEnabled)
	assert.Equal(t, 5*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, time.Second, cfg.WebhookBaseDelay)
	assert.Equal(t, 500.0, cfg.DefaultRadiusMeters)
	assert.Equal(t, 50, cfg.SeedCrimes)
	assert.Equal(t, 15, cfg.SeedReports)
	assert.Zero(t, cfg.SeedRandom)
}

func TestLoadConfig_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPORT_LOG_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/reports.db")
	t.Setenv("ALERTS_ENABLED", "true")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("WEBHOOK_MAX_RETRIES", "5")
	t.Setenv("WEBHOOK_BASE_DELAY", "250ms")
	t.Setenv("DEFAULT_RADIUS_METERS", "1200.5")
	t.Setenv("SEED_RANDOM", "42")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.ReportLogDriver)
	assert.Equal(t, "/tmp/reports.db", cfg.SQLitePath)
	assert.True(t, cfg.AlertsEnabled)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 5, cfg.WebhookMaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.WebhookBaseDelay)
	assert.Equal(t, 1200.5, cfg.DefaultRadiusMeters)
	assert.Equal(t, int64(42), cfg.SeedRandom)
}

func TestLoadConfig_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("REPORT_LOG_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("REPORT_LOG_DRIVER", "s3")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_LOG_DRIVER")
}

func TestLoadConfig_NegativeRadius(t *testing.T) {
	t.Setenv("DEFAULT_RADIUS_METERS", "-10")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_RADIUS_METERS")
}
