package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pmoradi/tsetmc-data/api"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tsehistory.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoad tests YAML parsing and env expansion.
func TestLoad(t *testing.T) {
	t.Run("parses fields", func(t *testing.T) {
		path := writeConfig(t, `
api:
  base_url: "https://example.com/api"
  max_attempts: 5
  retry_delay: 1000000000
output:
  format: csv
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.API.BaseURL != "https://example.com/api" {
			t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, "https://example.com/api")
		}
		if cfg.API.MaxAttempts != 5 {
			t.Errorf("MaxAttempts = %d, want 5", cfg.API.MaxAttempts)
		}
		if cfg.API.RetryDelay != time.Second {
			t.Errorf("RetryDelay = %v, want 1s", cfg.API.RetryDelay)
		}
		if cfg.Output.Format != "csv" {
			t.Errorf("Format = %q, want %q", cfg.Output.Format, "csv")
		}
	})

	t.Run("expands environment variables", func(t *testing.T) {
		t.Setenv("TSE_TEST_UA", "env-agent/2.0")
		path := writeConfig(t, `
api:
  user_agent: "${TSE_TEST_UA}"
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.API.UserAgent != "env-agent/2.0" {
			t.Errorf("UserAgent = %q, want %q", cfg.API.UserAgent, "env-agent/2.0")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "api: [not a mapping")
		_, err := Load(path)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

// TestDefaults tests default application.
func TestDefaults(t *testing.T) {
	t.Run("empty config gets all defaults", func(t *testing.T) {
		cfg := Default()
		if cfg.API.BaseURL != api.DefaultBaseURL {
			t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
		}
		if cfg.API.UserAgent != api.DefaultUserAgent {
			t.Errorf("UserAgent = %q, want default", cfg.API.UserAgent)
		}
		if cfg.API.Timeout != api.DefaultTimeout {
			t.Errorf("Timeout = %v, want %v", cfg.API.Timeout, api.DefaultTimeout)
		}
		if cfg.API.MaxAttempts != api.DefaultMaxAttempts {
			t.Errorf("MaxAttempts = %d, want %d", cfg.API.MaxAttempts, api.DefaultMaxAttempts)
		}
		if cfg.API.RetryDelay != api.DefaultRetryDelay {
			t.Errorf("RetryDelay = %v, want %v", cfg.API.RetryDelay, api.DefaultRetryDelay)
		}
		if cfg.Output.Format != DefaultFormat {
			t.Errorf("Format = %q, want %q", cfg.Output.Format, DefaultFormat)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("default config should validate, got %v", err)
		}
	})

	t.Run("explicit values survive defaulting", func(t *testing.T) {
		path := writeConfig(t, `
api:
  max_attempts: 1
`)
		cfg, err := LoadWithDefaults(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.API.MaxAttempts != 1 {
			t.Errorf("MaxAttempts = %d, want 1", cfg.API.MaxAttempts)
		}
		if cfg.API.BaseURL != api.DefaultBaseURL {
			t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
		}
	})
}

// TestValidate tests configuration validation.
func TestValidate(t *testing.T) {
	valid := func() *Config { return Default() }

	t.Run("negative attempts", func(t *testing.T) {
		cfg := valid()
		cfg.API.MaxAttempts = -1
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "max_attempts") {
			t.Errorf("expected max_attempts error, got %v", err)
		}
	})

	t.Run("negative retry delay", func(t *testing.T) {
		cfg := valid()
		cfg.API.RetryDelay = -time.Second
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "retry_delay") {
			t.Errorf("expected retry_delay error, got %v", err)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		cfg := valid()
		cfg.Output.Format = "xml"
		if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "output.format") {
			t.Errorf("expected output.format error, got %v", err)
		}
	})

	t.Run("LoadAndValidate rejects bad config", func(t *testing.T) {
		path := writeConfig(t, `
output:
  format: xml
`)
		if _, err := LoadAndValidate(path); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
