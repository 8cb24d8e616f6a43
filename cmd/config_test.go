package cmd_test

import (
	"log/slog"
	"testing"

	"orderdesk/cmd"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnv(t *testing.T) {
	env := map[string]string{
		"DB_HOST":            "db",
		"DB_PORT":            "5432",
		"DB_USER":            "orderdesk",
		"DB_PASSWORD":        "secret",
		"DB_NAME":            "orderdesk",
		"LOG_LEVEL":          "debug",
		"BOOTSTRAP_ADMIN_ID": "7d0b2c4e-9d3f-4e55-9a61-0a9c1f7b3e21",
	}

	config := cmd.ConfigFromEnv(func(key string) string { return env[key] })

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "@every 1m", config.StatsSchedule)
	assert.Equal(t, "host=db port=5432 user=orderdesk password=secret dbname=orderdesk sslmode=disable", config.DSN())
	assert.Equal(t, slog.LevelDebug, config.SlogLevel())
	assert.Equal(t, "7d0b2c4e-9d3f-4e55-9a61-0a9c1f7b3e21", config.BootstrapAdminID)
}

func TestConfig_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for raw, want := range cases {
		assert.Equal(t, want, cmd.Config{LogLevel: raw}.SlogLevel(), raw)
	}
}
