package config

import (
	"errors"
	"fmt"
)

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.MaxAttempts < 1 {
		return errors.New("api.max_attempts must be >= 1")
	}
	if c.API.RetryDelay < 0 {
		return errors.New("api.retry_delay must not be negative")
	}
	if c.API.Timeout <= 0 {
		return errors.New("api.timeout must be positive")
	}

	switch c.Output.Format {
	case "table", "csv", "json":
	default:
		return fmt.Errorf("output.format must be table, csv or json, got %q", c.Output.Format)
	}

	return nil
}
