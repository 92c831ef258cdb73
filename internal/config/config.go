// Package config provides environment-driven configuration for genenet.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Default upstream endpoints.
const (
	DefaultIntactURL = "http://www.ebi.ac.uk/Tools/webservices/psicquic/intact/webservices/current"
	DefaultTogowsURL = "http://togows.org"
)

// Config holds all application configuration values.
type Config struct {
	DatabaseURL   Secret
	DBMaxConns    int32
	Port          string
	ListenHost    string
	CORSOrigins   []string
	LogLevel      string
	IntactURL     string
	IntactSpecies string
	TogowsURL     string
	Quality       float64
	Workers       int
	HTTPTimeout   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// DATABASE_URL is optional; without it runs are kept in memory.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   Secret(envOrDefault("DATABASE_URL", "")),
		Port:          envOrDefault("PORT", "3030"),
		ListenHost:    envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		IntactURL:     envOrDefault("INTACT_URL", DefaultIntactURL),
		IntactSpecies: envOrDefault("INTACT_SPECIES", "arabidopsis"),
		TogowsURL:     envOrDefault("TOGOWS_URL", DefaultTogowsURL),
	}

	quality, err := strconv.ParseFloat(envOrDefault("QUALITY", "0.4"), 64)
	if err != nil {
		return nil, fmt.Errorf("QUALITY must be a number: %w", err)
	}
	cfg.Quality = quality

	workers, err := strconv.Atoi(envOrDefault("WORKERS", "4"))
	if err != nil || workers < 1 || workers > 16 {
		return nil, fmt.Errorf("WORKERS must be an integer between 1 and 16")
	}
	cfg.Workers = workers

	maxConns, err := strconv.Atoi(envOrDefault("DB_MAX_CONNS", "10"))
	if err != nil || maxConns < 1 || maxConns > 100 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be an integer between 1 and 100")
	}
	cfg.DBMaxConns = int32(maxConns) //nolint:gosec // bounded above.

	timeout, err := time.ParseDuration(envOrDefault("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be a duration: %w", err)
	}
	cfg.HTTPTimeout = timeout

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3002")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// PersistenceEnabled reports whether runs are stored in PostgreSQL.
func (c *Config) PersistenceEnabled() bool {
	return c.DatabaseURL.Value() != ""
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
