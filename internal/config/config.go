// Package config loads orgctl settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/orgtrace/internal/logger"
	"github.com/joshuapare/orgtrace/internal/recordtext"
	"github.com/joshuapare/orgtrace/org/printer"
	"github.com/joshuapare/orgtrace/org/search"
)

// Environment variables that override file settings.
const (
	EnvLogLevel  = "ORGCTL_LOG_LEVEL"
	EnvMaskStart = "ORGCTL_MASK_START"
)

// Config holds all orgctl configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Cipher  CipherConfig  `yaml:"cipher"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig configures the mask search.
type SearchConfig struct {
	MaskStart int `yaml:"mask_start"`
	Span      int `yaml:"span"`
}

// CipherConfig configures cipher decoding. The line count is fixed at one
// line per fingerprint byte.
type CipherConfig struct {
	Strict bool `yaml:"strict"`
}

// InputConfig configures record stream decoding.
type InputConfig struct {
	Encoding string `yaml:"encoding"` // "", UTF-8, UTF-16LE, WINDOWS-1252
}

// OutputConfig configures rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, tree
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaskStart: 0,
			Span:      search.DefaultSpan,
		},
		Output: OutputConfig{
			Format: string(printer.FormatText),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing file
// yields defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Return defaults if config file doesn't exist
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if start := os.Getenv(EnvMaskStart); start != "" {
		n, err := strconv.Atoi(start)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaskStart, start, err)
		}
		c.Search.MaskStart = n
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Search.Span < 0 {
		return fmt.Errorf("search.span must not be negative, got %d", c.Search.Span)
	}
	if !recordtext.ValidEncoding(c.Input.Encoding) {
		return fmt.Errorf("invalid input.encoding: %q", c.Input.Encoding)
	}
	if !printer.ValidFormat(printer.Format(c.Output.Format)) {
		return fmt.Errorf("invalid output.format: %q", c.Output.Format)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
