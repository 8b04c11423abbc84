package config

import "time"

// Config is the root configuration for the history CLI.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Output OutputConfig `yaml:"output"`
}

// APIConfig holds TSETMC CDN API settings.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	UserAgent   string        `yaml:"user_agent"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxAttempts int           `yaml:"max_attempts"` // Total attempts, not extra retries
	RetryDelay  time.Duration `yaml:"retry_delay"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "table", "csv" or "json"
}
