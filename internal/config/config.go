// Package config loads tool defaults from an optional YAML file and
// XLTOOLS_* environment variables. Precedence: environment over file over
// built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is consulted when no --config path is given.
const DefaultConfigFile = "xltools.yaml"

// Config carries the tool defaults a user can persist instead of passing
// flags on every run.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults" envconfig:"DEFAULTS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// DefaultsConfig mirrors the merge flag surface.
type DefaultsConfig struct {
	DestMatchColumn   string `yaml:"dest_match_column" envconfig:"DEST_MATCH_COLUMN" validate:"required,alpha,max=3"`
	SourceMatchColumn string `yaml:"source_match_column" envconfig:"SOURCE_MATCH_COLUMN" validate:"required,alpha,max=3"`
	DestValueColumn   string `yaml:"dest_value_column" envconfig:"DEST_VALUE_COLUMN" validate:"required,alpha,max=3"`
	SourceValueColumn string `yaml:"source_value_column" envconfig:"SOURCE_VALUE_COLUMN" validate:"required,alpha,max=3"`
	DestMinRow        int    `yaml:"dest_min_row" envconfig:"DEST_MIN_ROW" validate:"gte=1"`
	SourceMinRow      int    `yaml:"source_min_row" envconfig:"SOURCE_MIN_ROW" validate:"gte=1"`
	Threshold         int    `yaml:"threshold" envconfig:"THRESHOLD" validate:"gte=0,lte=100"`
	Highlight         string `yaml:"highlight" envconfig:"HIGHLIGHT" validate:"omitempty,len=6,hexadecimal"`
	Workers           int    `yaml:"workers" envconfig:"WORKERS" validate:"gte=0"`
}

// LoggingConfig controls the slog level.
type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration: the historical column and row
// defaults of the tool.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			DestMatchColumn:   "B",
			SourceMatchColumn: "W",
			DestValueColumn:   "G",
			SourceValueColumn: "AE",
			DestMinRow:        2,
			SourceMinRow:      2,
			Threshold:         90,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the effective configuration. An explicit path must exist; the
// default file is loaded only when present.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := envconfig.Process("XLTOOLS", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	return validator.New().Struct(c)
}
