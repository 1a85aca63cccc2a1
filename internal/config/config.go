// Package config loads the optional converter options file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Run modes.
const (
	ModeStream = "stream"
	ModeBatch  = "batch"
)

// DefaultProgressInterval is the record count between progress lines.
const DefaultProgressInterval = 100000

// Config holds converter options that can come from a YAML file.
// CLI flags override anything set here.
type Config struct {
	// Verbose enables progress and timing output.
	Verbose bool `yaml:"verbose"`
	// Mode selects "stream" (default, preserves interleaving) or
	// "batch" (comments grouped first).
	Mode string `yaml:"mode"`
	// ProgressInterval is the number of records between progress
	// lines in verbose runs.
	ProgressInterval int `yaml:"progress_interval"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:             ModeStream,
		ProgressInterval: DefaultProgressInterval,
	}
}

// LoadFile loads and parses an options file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse options YAML: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.Mode != ModeStream && cfg.Mode != ModeBatch {
		return nil, fmt.Errorf("invalid mode %q: expected %q or %q", cfg.Mode, ModeStream, ModeBatch)
	}

	return &cfg, nil
}

// applyDefaults fills in default values for omitted fields.
func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = ModeStream
	}

	if cfg.ProgressInterval == 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}
}
