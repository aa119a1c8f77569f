package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 || cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server addr = %s", cfg.Addr())
	}
	if cfg.Server.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout = %v, want 60s", cfg.Server.RequestTimeout)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if !cfg.Model.UseMockResponse {
		t.Errorf("UseMockResponse should default to true")
	}
	if cfg.Model.Name != "gpt-4o" || cfg.Model.Temperature != 0.8 || cfg.Model.MaxOutputTokens != 1500 {
		t.Errorf("model defaults = %+v", cfg.Model)
	}
	if cfg.ModelEnabled() {
		t.Errorf("model must be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestModelEnabled(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mock bool
		key  string
		want bool
	}{
		{true, "", false},
		{true, "sk-x", false},
		{false, "", false},
		{false, "sk-x", true},
	}
	for _, tc := range cases {
		cfg := defaultConfig()
		cfg.Model.UseMockResponse = tc.mock
		cfg.Model.APIKey = tc.key
		if got := cfg.ModelEnabled(); got != tc.want {
			t.Fatalf("mock=%v key=%q: got %v", tc.mock, tc.key, got)
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PORT", "9001")
	t.Setenv("USE_MOCK_RESPONSE", "false")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("TEMPERATURE", "0.3")
	t.Setenv("MAX_TOKENS", "800")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if !cfg.ModelEnabled() || cfg.Model.Name != "gpt-4o-mini" {
		t.Errorf("model = %+v", cfg.Model)
	}
	if cfg.Model.Temperature != 0.3 || cfg.Model.MaxOutputTokens != 800 {
		t.Errorf("model params = %+v", cfg.Model)
	}
	if cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.Server.RequestTimeout)
	}
	if strings.Join(cfg.Server.CORSOrigins, "|") != "https://a.example|https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if !cfg.Server.RateLimitDisabled {
		t.Errorf("rate limit should be disabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 7000
  rate_limit_requests: 5
model:
  name: from-file
  breaker_cooldown: 2m
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("OPENAI_MODEL", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7000 || cfg.Server.RateLimitRequests != 5 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Model.Name != "from-env" {
		t.Errorf("env should win over file, got %q", cfg.Model.Name)
	}
	if cfg.Model.BreakerCooldown != 2*time.Minute {
		t.Errorf("BreakerCooldown = %v", cfg.Model.BreakerCooldown)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("TEMPERATURE", "3.5")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "TEMPERATURE") {
		t.Fatalf("expected temperature error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "PORT"},
		{"timeout", func(c *Config) { c.Server.RequestTimeout = 0 }, "REQUEST_TIMEOUT"},
		{"rate limit", func(c *Config) { c.Server.RateLimitRequests = 0 }, "RATE_LIMIT_REQUESTS"},
		{"max tokens", func(c *Config) { c.Model.MaxOutputTokens = 0 }, "MAX_TOKENS"},
		{"breaker", func(c *Config) { c.Model.BreakerFailures = 0 }, "MODEL_BREAKER_FAILURES"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}
	for _, tc := range cases {
		cfg := defaultConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: err=%v", tc.name, err)
		}
	}

	cfg := defaultConfig()
	cfg.Server.RateLimitDisabled = true
	cfg.Server.RateLimitRequests = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled rate limit should skip its checks: %v", err)
	}
}
