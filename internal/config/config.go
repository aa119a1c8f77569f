// Package config loads service configuration from defaults, an optional YAML file,
// and the environment, in that order of precedence (last wins).
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/theimaginaryfoundation/bookllm/internal/logging"
)

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Model   ModelConfig   `koanf:"model"`
	Logging LoggingConfig `koanf:"logging"`
}

type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	RequestTimeout    time.Duration `koanf:"request_timeout"` // bounds one analysis, model call included
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// ModelConfig configures the external model. UseMockResponse keeps the service on
// template synthesis even when a key is present.
type ModelConfig struct {
	UseMockResponse bool          `koanf:"use_mock_response"`
	APIKey          string        `koanf:"api_key"`
	Name            string        `koanf:"name"`
	BaseURL         string        `koanf:"base_url"`
	Temperature     float64       `koanf:"temperature"`
	MaxOutputTokens int64         `koanf:"max_output_tokens"`
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerCooldown time.Duration `koanf:"breaker_cooldown"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ModelEnabled reports whether analyses should attempt the external model.
func (c *Config) ModelEnabled() bool {
	return !c.Model.UseMockResponse && c.Model.APIKey != ""
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// LogConfig converts the logging section for logging.Init. Output stays at its default.
func (c *Config) LogConfig() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Format = c.Logging.Format
	lc.Caller = c.Logging.Caller
	return lc
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateModel(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	timeouts := []struct {
		name string
		d    time.Duration
	}{
		{"REQUEST_TIMEOUT", c.Server.RequestTimeout},
		{"READ_TIMEOUT", c.Server.ReadTimeout},
		{"WRITE_TIMEOUT", c.Server.WriteTimeout},
		{"SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout},
	}
	for _, tm := range timeouts {
		if tm.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", tm.name, tm.d)
		}
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.RateLimitRequests < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Server.RateLimitRequests)
		}
		if c.Server.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Server.RateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateModel() error {
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		return fmt.Errorf("TEMPERATURE must be between 0 and 2, got %v", c.Model.Temperature)
	}
	if c.Model.MaxOutputTokens < 1 {
		return fmt.Errorf("MAX_TOKENS must be positive, got %d", c.Model.MaxOutputTokens)
	}
	if c.Model.Name == "" {
		return fmt.Errorf("OPENAI_MODEL must not be empty")
	}
	if c.Model.BreakerFailures < 1 {
		return fmt.Errorf("MODEL_BREAKER_FAILURES must be at least 1")
	}
	if c.Model.BreakerCooldown <= 0 {
		return fmt.Errorf("MODEL_BREAKER_COOLDOWN must be positive, got %s", c.Model.BreakerCooldown)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
