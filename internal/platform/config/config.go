package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"newsletter/pkg/email"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr    string
	BaseURL string
}

// Database configures the PostgreSQL pool. An empty URL selects the
// in-memory store.
type Database struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// Email configures outbound delivery. An empty ResendAPIKey selects the
// logging no-op sender.
type Email struct {
	ResendAPIKey string
	Sender       string
	Timeout      time.Duration
}

// Config is the whole process configuration.
type Config struct {
	Server        Server
	Database      Database
	Email         Email
	LogLevel      string
	TracingStdout bool
}

// FromEnv builds a Config from environment variables so main stays lean.
// Defaults suit local development.
func FromEnv() (Config, error) {
	cfg := Config{
		Server: Server{
			Addr:    getenv("NEWSLETTER_ADDR", ":8000"),
			BaseURL: getenv("APP_BASE_URL", "http://127.0.0.1:8000"),
		},
		Database: Database{
			URL: os.Getenv("DATABASE_URL"),
		},
		Email: Email{
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			Sender:       getenv("EMAIL_SENDER", "newsletter@example.com"),
		},
		LogLevel: getenv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Database.MaxOpenConns, err = intFromEnv("DB_MAX_OPEN_CONNS", 10); err != nil {
		return Config{}, err
	}
	if cfg.Database.MaxIdleConns, err = intFromEnv("DB_MAX_IDLE_CONNS", 5); err != nil {
		return Config{}, err
	}
	if cfg.Database.ConnMaxLifetime, err = durationFromEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.Database.AutoMigrate, err = boolFromEnv("DB_AUTO_MIGRATE", true); err != nil {
		return Config{}, err
	}
	if cfg.Email.Timeout, err = durationFromEnv("EMAIL_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.TracingStdout, err = boolFromEnv("TRACING_STDOUT", false); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("APP_BASE_URL must be an absolute url, got %q", c.Server.BaseURL)
	}
	if !email.IsValidAddress(c.Email.Sender) {
		return fmt.Errorf("EMAIL_SENDER must be a valid address, got %q", c.Email.Sender)
	}
	if c.Email.Timeout <= 0 {
		return errors.New("EMAIL_TIMEOUT must be positive")
	}
	if c.Database.MaxOpenConns < 1 {
		return errors.New("DB_MAX_OPEN_CONNS must be at least 1")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func boolFromEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
