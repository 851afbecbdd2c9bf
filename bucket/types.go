// SPDX-License-Identifier: MIT

package bucket

import (
	"log/slog"

	"github.com/katalvlaran/armviz/metric"
	"github.com/katalvlaran/armviz/rule"
)

// MinAxisCount is the axis count of the smallest layoutable rule (one
// antecedent, one consequent); bucket index i holds AxisCount i+MinAxisCount.
const MinAxisCount = 2

// Reason explains why a rule was kept out of every bucket.
type Reason int

const (
	// MultiConsequent marks a rule with more than one consequent entity.
	MultiConsequent Reason = iota + 1

	// CompoundDisallowed marks a rule with several antecedents while
	// compound rules are disabled (WithCompound(false)).
	CompoundDisallowed

	// NoAntecedent marks a rule without antecedents. Only reachable through
	// a zero-value rule.Rule, since rule.New rejects empty sides.
	NoAntecedent
)

// String names the reason.
func (r Reason) String() string {
	switch r {
	case MultiConsequent:
		return "multiple consequents"
	case CompoundDisallowed:
		return "compound rule disallowed"
	case NoAntecedent:
		return "no antecedent"
	default:
		return "unknown"
	}
}

// Drop records one rule excluded from bucketing.
type Drop struct {
	Index  int // position in the input slice
	Rule   rule.Rule
	Reason Reason
}

// Bucket is the transient group of same-shape rules laid out on one diagram.
type Bucket struct {
	// AxisCount is K = antecedent length + 1.
	AxisCount int

	// Rules holds the bucket's rules in input order.
	Rules []rule.Rule

	// Entities is the union of all lhs and rhs values, in first-seen order.
	Entities []string
}

// Empty reports whether the bucket holds no rules.
func (b Bucket) Empty() bool { return len(b.Rules) == 0 }

// Result is the outcome of Bucketize.
type Result struct {
	// Buckets is dense; Buckets[i].AxisCount == i+MinAxisCount.
	Buckets []Bucket

	// Dropped lists excluded rules in input order.
	Dropped []Drop
}

// Bucket returns the bucket for axis count k.
func (r Result) Bucket(k int) (Bucket, bool) {
	i := k - MinAxisCount
	if i < 0 || i >= len(r.Buckets) {
		return Bucket{}, false
	}
	return r.Buckets[i], true
}

// NonEmpty returns the buckets holding at least one rule, in axis-count order.
func (r Result) NonEmpty() []Bucket {
	out := make([]Bucket, 0, len(r.Buckets))
	for _, b := range r.Buckets {
		if !b.Empty() {
			out = append(out, b)
		}
	}
	return out
}

// Option customizes Bucketize.
type Option func(*config)

type config struct {
	compound  bool
	canonical bool
	logger    *slog.Logger
	metrics   *metric.Metrics
}

func newConfig(opts ...Option) config {
	cfg := config{compound: true, canonical: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// WithCompound allows (default) or disallows rules with several antecedents.
func WithCompound(allow bool) Option {
	return func(c *config) { c.compound = allow }
}

// WithCanonicalOrder sorts each rule's antecedent lexicographically before
// bucketing (default true). Crossing counts compare antecedents position by
// position, so they are only meaningful when every rule orders its
// antecedents the same way.
func WithCanonicalOrder(enabled bool) Option {
	return func(c *config) { c.canonical = enabled }
}

// WithLogger routes drop diagnostics to l. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics counts dropped rules by reason.
func WithMetrics(m *metric.Metrics) Option {
	return func(c *config) { c.metrics = m }
}
