// Package config loads lvlalg CLI settings.
//
// Precedence (highest to lowest): explicitly set flags, LVLALG_* environment
// variables, the YAML config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/internal/problem"
)

// Defaults.
const (
	DefaultFile     = "lvlalg.yaml"
	DefaultField    = problem.FieldRational
	DefaultOutput   = "table"
	DefaultLogLevel = "warn"
	DefaultWorkers  = 4
	EnvPrefix       = "LVLALG_"
)

// Outputs lists the accepted output formats.
var Outputs = []string{"table", "plain"}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all CLI settings.
type Config struct {
	Field    string  `koanf:"field"`
	Modulus  uint64  `koanf:"modulus"`
	Epsilon  float64 `koanf:"epsilon"`
	Output   string  `koanf:"output"`
	LogLevel string  `koanf:"log_level"`
	Workers  int     `koanf:"workers"`

	// File is the config file that was read, empty when none.
	File string `koanf:"-"`
}

// Load reads configuration. cfgFile may be empty, in which case
// ./lvlalg.yaml is used when present. flags may be nil; only flags the user
// changed are applied, with kebab-case names mapped to snake_case keys.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"field":     DefaultField,
		"modulus":   0,
		"epsilon":   field.DefaultEpsilon,
		"output":    DefaultOutput,
		"log_level": DefaultLogLevel,
		"workers":   DefaultWorkers,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgFile = DefaultFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}

	// LVLALG_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = cfgFile
	cfg.Field = strings.ToLower(cfg.Field)
	cfg.Output = strings.ToLower(cfg.Output)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if !slices.Contains(problem.Fields, c.Field) {
		return fmt.Errorf("%w: field %q (want one of %s)", ErrInvalid, c.Field, strings.Join(problem.Fields, ", "))
	}
	if c.Field == problem.FieldModP {
		if _, err := field.NewModulus(c.Modulus); err != nil {
			return fmt.Errorf("%w: modulus: %w", ErrInvalid, err)
		}
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon %v", ErrInvalid, c.Epsilon)
	}
	if !slices.Contains(Outputs, c.Output) {
		return fmt.Errorf("%w: output %q (want one of %s)", ErrInvalid, c.Output, strings.Join(Outputs, ", "))
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

// Defaults returns the problem settings used when a problem file omits them.
func (c *Config) Defaults() problem.Defaults {
	return problem.Defaults{Field: c.Field, Modulus: c.Modulus, Epsilon: c.Epsilon}
}
