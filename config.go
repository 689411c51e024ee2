package schemaguard

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/zero-day-ai/schemaguard/kind"
	"gopkg.in/yaml.v3"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 64

// Config represents a validator configuration file.
//
//	classification: loose
//	max_depth: 32
//	log_level: debug
type Config struct {
	// Classification selects how structural objects and arrays are recognised:
	// "strict" (default) or "loose".
	Classification string `yaml:"classification,omitempty"`

	// MaxDepth bounds how deeply sub-schemas may nest during one validation.
	// Default: 64
	MaxDepth int `yaml:"max_depth,omitempty"`

	// LogLevel is used to build a stderr logger when no logger is supplied
	// with WithLogger. One of debug, info, warn, error. Empty disables logging.
	LogLevel string `yaml:"log_level,omitempty"`
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigurationError("LoadConfig", fmt.Errorf("read %s: %w", path, err))
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, NewConfigurationError("LoadConfig", fmt.Errorf("%s: %w", path, err))
	}
	return cfg, nil
}

// ParseConfig parses YAML configuration data and validates it.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := kind.ByName(c.Classification); err != nil {
		return fmt.Errorf("classification: %w: %w", ErrInvalidConfig, err)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d: %w", c.MaxDepth, ErrInvalidConfig)
	}
	if _, _, err := parseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// GetClassifier returns the configured classifier, kind.Strict if unset or invalid.
func (c *Config) GetClassifier() kind.Classifier {
	if c == nil {
		return kind.Strict
	}
	classifier, err := kind.ByName(c.Classification)
	if err != nil {
		return kind.Strict
	}
	return classifier
}

// GetMaxDepth returns the configured nesting limit, DefaultMaxDepth if unset.
func (c *Config) GetMaxDepth() int {
	if c == nil || c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

// GetLogLevel returns the configured log level and whether logging is enabled.
func (c *Config) GetLogLevel() (slog.Level, bool) {
	if c == nil {
		return slog.LevelInfo, false
	}
	level, enabled, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo, false
	}
	return level, enabled
}

func parseLogLevel(s string) (slog.Level, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, false, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, false, err
	}
	return level, true, nil
}
