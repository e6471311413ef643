// Package config provides configuration loading and validation for the bot.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultSessionTTL = time.Hour
)

// Config holds the bot's runtime configuration, loaded from the environment.
// A .env file, when present, is loaded by the entrypoint before this runs.
type Config struct {
	// Token is the bot credential used by the Telegram transport.
	Token string

	// SessionTTL is how long an abandoned collection session is kept before
	// it is discarded.
	SessionTTL time.Duration

	// LogFile, when set, adds a rotated JSON log file alongside console
	// output.
	LogFile string

	// Verbose enables debug-level console logging.
	Verbose bool
}

// FromEnv loads configuration from environment variables.
// Returns an error if a set variable cannot be parsed.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Token:      os.Getenv("API_TOKEN"),
		SessionTTL: DefaultSessionTTL,
		LogFile:    os.Getenv("LOG_FILE"),
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse SESSION_TTL %q: %w", raw, err)
		}
		cfg.SessionTTL = ttl
	}

	if raw := os.Getenv("VERBOSE"); raw != "" {
		verbose, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse VERBOSE %q: %w", raw, err)
		}
		cfg.Verbose = verbose
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values. The token is only
// required by the Telegram transport; commands that never talk to Telegram
// skip this check.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("config error: API_TOKEN is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config error: session TTL must be positive")
	}
	return nil
}
