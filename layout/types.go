// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/armviz/rule"
)

// Sentinel errors returned by Build.
var (
	// ErrUnknownEntity indicates a rule references an entity absent from the ordering.
	ErrUnknownEntity = errors.New("layout: entity not in ordering")

	// ErrDuplicateEntity indicates the ordering lists an entity twice.
	ErrDuplicateEntity = errors.New("layout: duplicate entity in ordering")

	// ErrUnknownMode indicates a Mode value outside Positional and Categorical.
	ErrUnknownMode = errors.New("layout: unknown mode")
)

// ConsequentLabel names the last axis of every diagram.
const ConsequentLabel = "Consequent"

// Mode selects how axis values are encoded.
type Mode int

const (
	// Positional encodes entities by their index in the ordering.
	Positional Mode = iota

	// Categorical encodes entities by their label.
	Categorical
)

// String names the mode.
func (m Mode) String() string {
	switch m {
	case Positional:
		return "positional"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "positional":
		return Positional, nil
	case "categorical":
		return Categorical, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Value is one rule's value on one axis.
type Value struct {
	// Index is the entity's position in the ordering (Positional mode).
	Index int

	// Label is the entity itself. Set in both modes.
	Label string

	// Missing marks a rule with no entity at this axis.
	Missing bool
}

// Axis describes one vertical axis of a diagram.
type Axis struct {
	Label string

	// Range, TickVals and TickText are only set in Positional mode:
	// Range is [0, N], TickVals is 0..N−1 and TickText is the ordering.
	Range    [2]int
	TickVals []int
	TickText []string

	// Values holds one entry per rule, in bucket order.
	Values []Value

	// Missing counts the Missing entries in Values.
	Missing int
}

// Diagram bundles the axes of one bucket with per-rule line colors.
type Diagram struct {
	AxisCount int
	Mode      Mode
	Axes      []Axis

	// Colors holds each rule's confidence rounded to two decimals.
	Colors []rule.Metric

	// Rules are the rule labels, aligned with every Axis.Values.
	Rules []string
}

// Missing is the total number of missing values across all axes.
func (d Diagram) Missing() int {
	n := 0
	for _, a := range d.Axes {
		n += a.Missing
	}
	return n
}

// Option customizes Build.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// WithLogger sets the logger used to report missing values.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
