// SPDX-License-Identifier: MIT

// Package config reads lvunit's command-line configuration from the
// environment. Flags override the parsed values in cmd/lvunit.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/lvunit/format"
	"github.com/katalvlaran/lvunit/internal/logger"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid config")

// Config holds the CLI settings.
type Config struct {
	Catalog   string `env:"LVUNIT_CATALOG"`
	Debug     bool   `env:"LVUNIT_DEBUG"     envDefault:"false"`
	LogDir    string `env:"LVUNIT_LOG_DIR"`
	Precision int    `env:"LVUNIT_PRECISION" envDefault:"15"`
	DimStyle  string `env:"LVUNIT_DIM_STYLE" envDefault:"plain"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Parse reads the environment into a Config without validating it, so that
// callers can apply overrides first.
func Parse() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the precision range and the dimension style name.
func (c Config) Validate() error {
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("%w: precision %d out of [1, 17]", ErrInvalidConfig, c.Precision)
	}
	if _, ok := dimStyles[c.DimStyle]; !ok {
		return fmt.Errorf("%w: dim style %q (want plain or fraction)", ErrInvalidConfig, c.DimStyle)
	}

	return nil
}

var dimStyles = map[string]format.DimStyle{
	"plain":    format.DimPlain,
	"fraction": format.DimFraction,
}

// FormatOptions maps c onto formatter options. c must be valid.
func (c Config) FormatOptions() []format.Option {
	return []format.Option{
		format.WithPrecision(c.Precision),
		format.WithDimStyle(dimStyles[c.DimStyle]),
	}
}

// Logger maps c onto the logger configuration.
func (c Config) Logger() logger.Config {
	return logger.Config{Dir: c.LogDir, Debug: c.Debug}
}
