// SPDX-License-Identifier: MIT

package optimize

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/armviz/metric"
)

// DefaultMaxIterations caps the number of distinct permutations evaluated.
const DefaultMaxIterations = 1000

// Option customizes an optimizer run. Option constructors panic on
// meaningless values; Optimize itself never panics.
type Option func(*config)

type config struct {
	maxIterations int
	rng           *rand.Rand
	workers       int
	logger        *slog.Logger
	metrics       *metric.Metrics
}

func newConfig(opts ...Option) config {
	cfg := config{maxIterations: DefaultMaxIterations, workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// WithMaxIterations sets the cap on distinct permutations. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("optimize: WithMaxIterations(n<1)")
	}
	return func(c *config) { c.maxIterations = n }
}

// WithSeed seeds a fresh deterministic source. seed==0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand uses r as the random source. Panics on nil.
// r is advanced by the run and must not be shared with concurrent callers.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("optimize: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWorkers scores candidates on up to n goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("optimize: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger routes run diagnostics to l. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics records each run in m.
func WithMetrics(m *metric.Metrics) Option {
	return func(c *config) { c.metrics = m }
}
