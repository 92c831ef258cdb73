package config

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (c *Config) validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateNetwork(); err != nil {
		return err
	}

	if err := c.validateUpstreams(); err != nil {
		return err
	}

	if err := c.validatePipeline(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	return nil
}

func (c *Config) validateDatabase() error {
	if c.DatabaseURL.Value() == "" {
		return nil
	}

	dbURL, err := url.Parse(c.DatabaseURL.Value())
	if err != nil {
		return fmt.Errorf("DATABASE_URL is not a valid URL: %w", err)
	}

	if dbURL.Scheme != "postgres" && dbURL.Scheme != "postgresql" {
		return fmt.Errorf("DATABASE_URL scheme must be postgres:// or postgresql://")
	}

	if dbURL.Hostname() == "" {
		return fmt.Errorf("DATABASE_URL must include a host")
	}

	if !isLocalHost(dbURL.Hostname()) && dbURL.Query().Get("sslmode") == "disable" {
		return fmt.Errorf("DATABASE_URL sslmode=disable is not allowed for non-local host %q", dbURL.Hostname())
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Loopback for local use; 0.0.0.0/:: for containers behind an external boundary.
	validHosts := map[string]bool{
		"127.0.0.1": true,
		"::1":       true,
		"localhost": true,
		"0.0.0.0":   true,
		"::":        true,
	}
	if !validHosts[c.ListenHost] {
		return fmt.Errorf("LISTEN_HOST must be a loopback address or 0.0.0.0/:: for containers (got %q)", c.ListenHost)
	}

	return nil
}

func (c *Config) validateUpstreams() error {
	for name, raw := range map[string]string{"INTACT_URL": c.IntactURL, "TOGOWS_URL": c.TogowsURL} {
		u, err := url.ParseRequestURI(raw)
		if err != nil {
			return fmt.Errorf("%s is not a valid URL: %w", name, err)
		}

		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s must use http or https, got %q", name, u.Scheme)
		}
	}

	if strings.TrimSpace(c.IntactSpecies) == "" {
		return fmt.Errorf("INTACT_SPECIES must not be empty")
	}

	return nil
}

func (c *Config) validatePipeline() error {
	if math.IsNaN(c.Quality) || c.Quality < 0 || c.Quality > 1 {
		return fmt.Errorf("QUALITY must be between 0 and 1, got %v", c.Quality)
	}

	if c.HTTPTimeout < time.Second || c.HTTPTimeout > 10*time.Minute {
		return fmt.Errorf("HTTP_TIMEOUT must be between 1s and 10m, got %s", c.HTTPTimeout)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard '*'")
		}
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("CORS_ORIGINS must not contain glob characters (*?[]), got %q", origin)
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}

func isLocalHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
