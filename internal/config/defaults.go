package config

import "github.com/pmoradi/tsetmc-data/api"

// DefaultFormat is the output format when none is configured.
const DefaultFormat = "table"

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = api.DefaultBaseURL
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = api.DefaultUserAgent
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = api.DefaultTimeout
	}
	if c.API.MaxAttempts == 0 {
		c.API.MaxAttempts = api.DefaultMaxAttempts
	}
	if c.API.RetryDelay == 0 {
		c.API.RetryDelay = api.DefaultRetryDelay
	}

	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
}

// Default returns a configuration with every field at its default value, for
// runs without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
