// Package config loads CLI defaults from environment variables.
// Flags always override what the environment provides.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-provided defaults for the CLI.
type Config struct {
	// Database is the default path for --db.
	Database string `env:"SEQGEN_DB"`

	// Format is the default output format (text|json|yaml).
	Format string `env:"SEQGEN_FORMAT" envDefault:"text"`

	// Verbose enables debug logging by default.
	Verbose bool `env:"SEQGEN_VERBOSE"`
}

// FromEnv parses configuration from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
