// SPDX-License-Identifier: MIT

// Package config describes a full armviz run in a YAML file and converts it
// into component options.
//
//	input: rules.json.zst
//	compound: true
//	optimizer:
//	  max_iterations: 1000
//	  seed: 7
//	  workers: 4
//	layout:
//	  mode: categorical
//	output:
//	  dir: out
//	  gexf: rules.gexf
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/armviz/bucket"
	"github.com/katalvlaran/armviz/layout"
	"github.com/katalvlaran/armviz/metric"
	"github.com/katalvlaran/armviz/optimize"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the run description.
type Config struct {
	// Input is the rule file; empty selects the bundled shopping rules.
	Input string `yaml:"input"`

	// Compound keeps rules with several antecedents in the axis layouts.
	Compound bool `yaml:"compound"`

	// CanonicalOrder sorts antecedents before bucketing.
	CanonicalOrder bool `yaml:"canonical_order"`

	Optimizer Optimizer `yaml:"optimizer"`
	Layout    Layout    `yaml:"layout"`
	Output    Output    `yaml:"output"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Optimizer configures the axis optimizer.
type Optimizer struct {
	MaxIterations int   `yaml:"max_iterations"`
	Seed          int64 `yaml:"seed"`
	Workers       int   `yaml:"workers"`
}

// Layout configures the axis layout.
type Layout struct {
	Mode string `yaml:"mode"`
}

// Output configures where artifacts go.
type Output struct {
	Dir    string `yaml:"dir"`
	GEXF   string `yaml:"gexf"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Compound:       true,
		CanonicalOrder: true,
		Optimizer: Optimizer{
			MaxIterations: optimize.DefaultMaxIterations,
			Seed:          1,
			Workers:       1,
		},
		Layout:   Layout{Mode: layout.Positional.String()},
		Output:   Output{Dir: ".", Width: 800, Height: 500},
		LogLevel: "info",
	}
}

// Load reads path over Default, so a file only needs the keys it changes.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Optimizer.MaxIterations < 1 {
		return fmt.Errorf("%w: optimizer.max_iterations must be >= 1, got %d", ErrInvalid, c.Optimizer.MaxIterations)
	}
	if c.Optimizer.Workers < 1 {
		return fmt.Errorf("%w: optimizer.workers must be >= 1, got %d", ErrInvalid, c.Optimizer.Workers)
	}
	if _, err := layout.ParseMode(c.Layout.Mode); err != nil {
		return fmt.Errorf("%w: layout.mode: %w", ErrInvalid, err)
	}
	if c.Output.Width < 1 || c.Output.Height < 1 {
		return fmt.Errorf("%w: output size must be positive, got %dx%d", ErrInvalid, c.Output.Width, c.Output.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	return l, nil
}

// Mode returns the parsed layout mode. Call after Validate.
func (c Config) Mode() layout.Mode {
	m, _ := layout.ParseMode(c.Layout.Mode)
	return m
}

// BucketOptions converts the bucketing settings.
func (c Config) BucketOptions(l *slog.Logger, m *metric.Metrics) []bucket.Option {
	return []bucket.Option{
		bucket.WithCompound(c.Compound),
		bucket.WithCanonicalOrder(c.CanonicalOrder),
		bucket.WithLogger(l),
		bucket.WithMetrics(m),
	}
}

// OptimizeOptions converts the optimizer settings. Call after Validate.
func (c Config) OptimizeOptions(l *slog.Logger, m *metric.Metrics) []optimize.Option {
	return []optimize.Option{
		optimize.WithMaxIterations(c.Optimizer.MaxIterations),
		optimize.WithSeed(c.Optimizer.Seed),
		optimize.WithWorkers(c.Optimizer.Workers),
		optimize.WithLogger(l),
		optimize.WithMetrics(m),
	}
}
