package main

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/theimaginaryfoundation/bookllm/internal/logging"
)

type Config struct {
	InPath string
	OutDir string
	Model  string
	APIKey string

	// UseModel enables the external model; without it every review gets template synthesis.
	UseModel    bool
	Temperature float64
	MaxTokens   int64

	Concurrency int
	Timeout     time.Duration

	Pretty    bool
	Overwrite bool
	LogLevel  string
}

func (c Config) Validate() error {
	if c.InPath == "" {
		return errors.New("missing -in")
	}
	if c.OutDir == "" {
		return errors.New("missing -out")
	}
	if c.UseModel && c.Model == "" {
		return errors.New("missing -model")
	}
	if c.Concurrency < 1 {
		return errors.New("concurrency must be >= 1")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be > 0")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("temperature must be within [0, 2]")
	}
	if c.MaxTokens < 1 {
		return errors.New("max-tokens must be >= 1")
	}
	if !logging.ValidLevel(c.LogLevel) {
		return errors.New("unknown -log-level")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		InPath:      filepath.FromSlash("reviews"),
		OutDir:      filepath.FromSlash("reviews/analysis"),
		Model:       "gpt-4o",
		Temperature: 0.8,
		MaxTokens:   1500,
		Concurrency: 4,
		Timeout:     60 * time.Second,
		LogLevel:    "info",
	}
}
