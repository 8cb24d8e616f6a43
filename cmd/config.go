package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	defaultHTTPPort      = "8080"
	defaultStatsSchedule = "@every 1m"
)

// Config is the process configuration. Database fields map one to one onto
// the DB_* environment variables.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string
	// StatsSchedule is the cron schedule of the status stats job.
	StatsSchedule string
	// BootstrapAdminID and BootstrapAdminName seed the first approved admin
	// when no approved admin exists yet. Both empty disables seeding.
	BootstrapAdminID   string
	BootstrapAdminName string
}

// ConfigFromEnv reads the configuration through getenv, usually os.Getenv
// after godotenv has loaded .env.
func ConfigFromEnv(getenv func(string) string) Config {
	return Config{
		HTTPPort:           withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:             getenv("DB_HOST"),
		DBPort:             getenv("DB_PORT"),
		DBUser:             getenv("DB_USER"),
		DBPassword:         getenv("DB_PASSWORD"),
		DBName:             getenv("DB_NAME"),
		DBSslMode:          withDefault(getenv("DB_SSLMODE"), "disable"),
		LogLevel:           getenv("LOG_LEVEL"),
		StatsSchedule:      withDefault(getenv("STATS_SCHEDULE"), defaultStatsSchedule),
		BootstrapAdminID:   getenv("BOOTSTRAP_ADMIN_ID"),
		BootstrapAdminName: getenv("BOOTSTRAP_ADMIN_NAME"),
	}
}

// DSN is the postgres connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error"). Anything
// else, including empty, means info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
