// Package batch processes directories of PDF files into per-document
// outline JSON with bounded concurrency. Failures are isolated per file:
// a document that cannot be processed produces an error payload in its
// output slot and never stops the run.
package batch

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/outliner"
)

// Config controls a batch run. Zero values are replaced by defaults.
type Config struct {
	// InputDir is scanned non-recursively for .pdf files.
	InputDir string `yaml:"input_dir"`

	// OutputDir receives one <stem>.json per input file.
	OutputDir string `yaml:"output_dir"`

	// Workers bounds concurrent document processing.
	Workers int `yaml:"workers"`

	// MaxPages and Budget are passed through to the per-document guards.
	MaxPages int           `yaml:"max_pages"`
	Budget   time.Duration `yaml:"budget"`

	// MaxRetries bounds re-attempts for transient per-file failures.
	MaxRetries int `yaml:"max_retries"`
}

// Load builds a Config from environment variables over defaults.
func Load() Config {
	cfg := Config{
		InputDir:   envOr("OUTLINER_INPUT_DIR", "input"),
		OutputDir:  envOr("OUTLINER_OUTPUT_DIR", "output"),
		Workers:    envInt("OUTLINER_WORKERS", 0),
		MaxPages:   envInt("OUTLINER_MAX_PAGES", 0),
		Budget:     envDuration("OUTLINER_BUDGET", 0),
		MaxRetries: envInt("OUTLINER_MAX_RETRIES", 0),
	}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file. Environment variables take
// precedence over file values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.InputDir = envOr("OUTLINER_INPUT_DIR", cfg.InputDir)
	cfg.OutputDir = envOr("OUTLINER_OUTPUT_DIR", cfg.OutputDir)
	cfg.Workers = envInt("OUTLINER_WORKERS", cfg.Workers)
	cfg.MaxPages = envInt("OUTLINER_MAX_PAGES", cfg.MaxPages)
	cfg.Budget = envDuration("OUTLINER_BUDGET", cfg.Budget)
	cfg.MaxRetries = envInt("OUTLINER_MAX_RETRIES", cfg.MaxRetries)

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = "input"
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
		if c.Workers > 8 {
			c.Workers = 8
		}
	}
	if c.MaxPages <= 0 {
		c.MaxPages = outliner.DefaultMaxPages
	}
	if c.Budget <= 0 {
		c.Budget = outliner.DefaultBudget
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = MaxRetries
	}
}

// Validate reports configuration problems that would fail the whole run.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
