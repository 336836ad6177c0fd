package cronexpr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that can be supplied from a file or the
// environment rather than from code.
//
// A config file is plain YAML:
//
//	max_search_years: 10
//	output: yaml
//	verbose: true
//
// Environment variables (CRONEXPR_MAX_SEARCH_YEARS, CRONEXPR_OUTPUT,
// CRONEXPR_VERBOSE) override values read from the file.
type Config struct {
	// MaxSearchYears is the search horizon for Next and Prev.
	MaxSearchYears int `yaml:"max_search_years" env:"CRONEXPR_MAX_SEARCH_YEARS"`

	// Output is the preferred rendering of command line results
	// (text, yaml or array).
	Output string `yaml:"output" env:"CRONEXPR_OUTPUT"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" env:"CRONEXPR_VERBOSE"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		MaxSearchYears: DefaultMaxSearchYears,
		Output:         "text",
	}
}

// LoadConfig reads the YAML file at path (skipped when path is empty) on top
// of DefaultConfig, then applies environment overrides. Unknown keys in the
// file are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot be used.
func (c *Config) Validate() error {
	if c.MaxSearchYears < 1 {
		return fmt.Errorf("config: max_search_years must be at least 1, got %d", c.MaxSearchYears)
	}
	return nil
}

// Options converts the configuration into Schedule options.
func (c *Config) Options() []Option {
	return []Option{WithMaxSearchYears(c.MaxSearchYears)}
}
