package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// SessionConfig holds configuration for wizard sessions and their bearer tokens.
type SessionConfig struct {
	Secret     string
	TTLMinutes int
}

// NewSessionConfig creates a session configuration from environment variables.
// It reads SESSION_SECRET (required) and SESSION_TTL_MINUTES (default: 120).
func NewSessionConfig() (*SessionConfig, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required but not set")
	}

	ttlStr := os.Getenv("SESSION_TTL_MINUTES")
	if ttlStr == "" {
		ttlStr = "120" // default
	}

	ttl, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %v", err)
	}

	config := &SessionConfig{
		Secret:     secret,
		TTLMinutes: ttl,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// TTL returns the idle lifetime of a session and its token.
func (c *SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// normalize validates the configuration.
func (c *SessionConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("SESSION_SECRET cannot be empty")
	}
	if len(c.Secret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	if c.TTLMinutes < 1 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be at least 1 minute, got: %d", c.TTLMinutes)
	}
	return nil
}
