package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at start-up. It is built once by
// Load and never mutated afterwards.
type Config struct {
	AppPort        string
	AllowedOrigins []string
	LogLevel       string

	DBDriver   string
	DBName     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string

	Mail MailConfig

	SnowflakeNode int64
}

// MailConfig is the SMTP account used to notify suppliers.
type MailConfig struct {
	Username   string
	Password   string
	From       string
	FromName   string
	Host       string
	Port       int
	SkipVerify bool
}

// ErrMissingKey is returned by Load when a required key has no value.
var ErrMissingKey = errors.New("missing required configuration key")

// Load reads the .env file if present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	email, err := requireEnv("EMAIL")
	if err != nil {
		return nil, err
	}
	password, err := requireEnv("PASSWORD")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppPort:        envOr("APP_PORT", "8000"),
		AllowedOrigins: splitList(envOr("ALLOWED_ORIGIN", "http://localhost:3000")),
		LogLevel:       strings.ToLower(envOr("LOG_LEVEL", "info")),

		DBDriver:   envOr("DB_DRIVER", "sqlite"),
		DBName:     envOr("DB_NAME", "database.sqlite3"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", ""),
		DBUser:     envOr("DB_USER", ""),
		DBPassword: envOr("DB_PASSWORD", ""),

		Mail: MailConfig{
			Username:   email,
			Password:   password,
			From:       email,
			FromName:   envOr("MAIL_FROM_NAME", "John D. Industries"),
			Host:       envOr("MAIL_HOST", "smtp.gmail.com"),
			Port:       envInt("MAIL_PORT", 587),
			SkipVerify: envBool("MAIL_SKIP_VERIFY", false),
		},

		SnowflakeNode: int64(envInt("SNOWFLAKE_NODE", 1)),
	}
	return cfg, nil
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func requireEnv(key string) (string, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return value, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// envInt falls back when the key is unset or unparsable; the latter is logged.
func envInt(key string, fallback int) int {
	raw := envOr(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("ignoring non-integer config value", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	raw := envOr(key, "")
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("ignoring non-boolean config value", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
