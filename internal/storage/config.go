package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file in the
	// workspace root.
	userConfigFile = ".rosterconfig.yaml"

	// Default configuration values
	DefaultDataFile  = "data/data.txt"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
	DefaultColor     = ColorAuto
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user configuration from .rosterconfig.yaml.
// This file is user-managed and never written by roster.
type Config struct {
	// DataFile is the roster file, relative to the workspace root unless absolute.
	DataFile string `yaml:"data_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is console or json.
	LogFormat string `yaml:"log_format"`

	// LogFile redirects logs to a file. The terminal editor discards logs
	// when this is empty.
	LogFile string `yaml:"log_file"`

	// Color is auto, always or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile:  DefaultDataFile,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Color:     DefaultColor,
	}
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("invalid %s: data_file must not be empty", userConfigFile)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid %s: color must be %s, %s or %s, got %q",
			userConfigFile, ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	return nil
}

// LoadConfig loads .rosterconfig.yaml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Parse YAML and merge with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
