// SPDX-License-Identifier: MIT

package rulegraph

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/katalvlaran/armviz/core"
	"github.com/katalvlaran/armviz/metric"
	"github.com/katalvlaran/armviz/rule"
)

// Vertex attribute keys and values.
const (
	AttrType   = "type"
	AttrWeight = "weight"
	AttrLabel  = "label"

	TypeRule   = "Association_Rule"
	TypeEntity = "Entity"

	// DefaultRulePrefix prefixes the positional index of rule vertices.
	DefaultRulePrefix = "rule:"

	entityWeight int64 = 1
	weightScale        = 10
)

// ErrIDCollision indicates an entity whose ID equals a generated rule vertex ID.
var ErrIDCollision = errors.New("rulegraph: entity collides with a rule vertex ID")

// Network is the built graph with its vertex partition.
type Network struct {
	Graph *core.Graph

	// RuleNodes[i] is the vertex of rules[i].
	RuleNodes []string

	// EntityNodes lists entities in first-seen order.
	EntityNodes []string
}

// Option customizes Build.
type Option func(*config)

type config struct {
	prefix  string
	logger  *slog.Logger
	metrics *metric.Metrics
}

// WithRulePrefix replaces DefaultRulePrefix. Panics on an empty prefix.
func WithRulePrefix(p string) Option {
	if p == "" {
		panic("rulegraph: WithRulePrefix requires a non-empty prefix")
	}
	return func(c *config) { c.prefix = p }
}

// WithLogger sets the logger (nil means slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics reports the vertex count of every built network.
func WithMetrics(m *metric.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// Build creates the rule network of rules.
//
// Implementation:
//   - Stage 1: add one rule vertex per rule, in input order.
//   - Stage 2: add entity vertices on first sight and link them; an entity
//     listed twice on the same side yields one edge.
//   - Stage 3: reject entities equal to a rule vertex ID.
//
// Errors: ErrIDCollision; core errors are wrapped.
// Complexity: O(Σ|rule|).
func Build(rules []rule.Rule, opts ...Option) (*Network, error) {
	cfg := config{prefix: DefaultRulePrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	net := &Network{Graph: g, RuleNodes: make([]string, len(rules))}
	ruleIDs := make(map[string]struct{}, len(rules))

	for i, r := range rules {
		id := cfg.prefix + strconv.Itoa(i)
		net.RuleNodes[i] = id
		ruleIDs[id] = struct{}{}
		if err := g.AddVertex(id,
			core.WithAttr(AttrType, TypeRule),
			core.WithAttr(AttrWeight, scaled(r.Confidence())),
			core.WithAttr(AttrLabel, r.Label()),
		); err != nil {
			return nil, fmt.Errorf("rulegraph: rule %d: %w", i, err)
		}
	}

	seen := make(map[string]struct{})
	addEntity := func(e string) error {
		if _, ok := seen[e]; ok {
			return nil
		}
		if _, clash := ruleIDs[e]; clash {
			return fmt.Errorf("%w: %q", ErrIDCollision, e)
		}
		seen[e] = struct{}{}
		net.EntityNodes = append(net.EntityNodes, e)
		return g.AddVertex(e,
			core.WithAttr(AttrType, TypeEntity),
			core.WithAttr(AttrWeight, entityWeight),
			core.WithAttr(AttrLabel, e),
		)
	}
	link := func(from, to string, w int64) error {
		if g.HasEdge(from, to) {
			return nil
		}
		_, err := g.AddEdge(from, to, w)
		return err
	}

	for i, r := range rules {
		id := net.RuleNodes[i]
		w := scaled(r.Lift())
		for _, e := range r.Lhs() {
			if err := addEntity(e); err != nil {
				return nil, err
			}
			if err := link(e, id, w); err != nil {
				return nil, fmt.Errorf("rulegraph: rule %d: %w", i, err)
			}
		}
		for _, e := range r.Rhs() {
			if err := addEntity(e); err != nil {
				return nil, err
			}
			if err := link(id, e, w); err != nil {
				return nil, fmt.Errorf("rulegraph: rule %d: %w", i, err)
			}
		}
	}

	cfg.logger.Debug("generated rule network",
		"rules", len(rules), "nodes", g.VertexCount(), "edges", g.EdgeCount())
	cfg.metrics.ObserveGraph(g.VertexCount())

	return net, nil
}

// IsRule reports whether id is one of the network's rule vertices.
func (n *Network) IsRule(id string) bool {
	v, err := n.Graph.Vertex(id)
	if err != nil {
		return false
	}
	t, _ := v.Attr(AttrType)
	return t == TypeRule
}

// Weight returns the weight attribute of vertex id (0 if absent).
func (n *Network) Weight(id string) int64 {
	v, err := n.Graph.Vertex(id)
	if err != nil {
		return 0
	}
	w, _ := v.Attr(AttrWeight)
	i, _ := w.(int64)
	return i
}

func scaled(m rule.Metric) int64 {
	v, ok := m.Value()
	if !ok {
		return 0
	}
	return int64(math.Round(v * weightScale))
}
