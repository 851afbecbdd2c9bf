// SPDX-License-Identifier: MIT

package rulegraph_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/armviz/metric"
	"github.com/katalvlaran/armviz/rule"
	"github.com/katalvlaran/armviz/rulegraph"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = rulegraph.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func shopping() []rule.Rule {
	return []rule.Rule{
		rule.MustNew([]string{"milk"}, []string{"bread"}, rule.Counts{Full: 30, Lhs: 50, Rhs: 40, Transactions: 100}),
		rule.MustNew([]string{"milk"}, []string{"eggs"}, rule.Counts{Full: 20, Lhs: 50, Rhs: 30, Transactions: 100}),
	}
}

// TestBuild_Structure checks vertices, edges, weights and direction.
func TestBuild_Structure(t *testing.T) {
	m := metric.NewMetrics()
	net, err := rulegraph.Build(shopping(), quiet, rulegraph.WithMetrics(m))
	require.NoError(t, err)

	g := net.Graph
	assert.Equal(t, []string{"rule:0", "rule:1"}, net.RuleNodes)
	assert.Equal(t, []string{"milk", "bread", "eggs"}, net.EntityNodes)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 5.0, testutil.ToFloat64(m.GraphNodes))

	assert.True(t, g.HasEdge("milk", "rule:0"))
	assert.True(t, g.HasEdge("rule:0", "bread"))
	assert.False(t, g.HasEdge("rule:0", "milk"))
	assert.True(t, g.HasEdge("rule:1", "eggs"))

	assert.True(t, net.IsRule("rule:0"))
	assert.False(t, net.IsRule("milk"))
	assert.Equal(t, int64(6), net.Weight("rule:0"))
	assert.Equal(t, int64(4), net.Weight("rule:1"))
	assert.Equal(t, int64(1), net.Weight("milk"))

	weights := map[string]int64{}
	for _, e := range g.Edges() {
		weights[e.From+">"+e.To] = e.Weight
	}
	assert.Equal(t, map[string]int64{
		"milk>rule:0":  15,
		"rule:0>bread": 15,
		"milk>rule:1":  13,
		"rule:1>eggs":  13,
	}, weights)

	v, err := g.Vertex("rule:0")
	require.NoError(t, err)
	assert.Equal(t, "{milk} -> {bread}", v.Metadata[rulegraph.AttrLabel])
	assert.Equal(t, rulegraph.TypeRule, v.Metadata[rulegraph.AttrType])
}

// TestBuild_Weights rounds half away from zero and zeroes unavailable metrics.
func TestBuild_Weights(t *testing.T) {
	net, err := rulegraph.Build([]rule.Rule{
		rule.MustNew([]string{"a"}, []string{"b"}, rule.Counts{Full: 1, Lhs: 4, Rhs: 4, Transactions: 4}),
		rule.MustNew([]string{"c"}, []string{"d"}, rule.Counts{Full: 1}),
	}, quiet)
	require.NoError(t, err)

	assert.Equal(t, int64(3), net.Weight("rule:0"), "confidence 0.25 -> 3")
	assert.Equal(t, int64(0), net.Weight("rule:1"))
	for _, e := range net.Graph.Edges() {
		if e.From == "c" {
			assert.Zero(t, e.Weight)
		}
	}
}

// TestBuild_Compound fans compound sides out and collapses repeated entities.
func TestBuild_Compound(t *testing.T) {
	net, err := rulegraph.Build([]rule.Rule{
		rule.MustNew([]string{"a", "b", "a"}, []string{"c", "d"}, rule.Counts{}),
	}, quiet)
	require.NoError(t, err)

	in, out, _, err := net.Graph.Degree("rule:0")
	require.NoError(t, err)
	assert.Equal(t, 2, in)
	assert.Equal(t, 2, out)
}

// TestBuild_Collision rejects entities that shadow rule vertex IDs.
func TestBuild_Collision(t *testing.T) {
	_, err := rulegraph.Build([]rule.Rule{
		rule.MustNew([]string{"rule:0"}, []string{"b"}, rule.Counts{}),
	}, quiet)
	assert.ErrorIs(t, err, rulegraph.ErrIDCollision)

	net, err := rulegraph.Build([]rule.Rule{
		rule.MustNew([]string{"rule:0"}, []string{"b"}, rule.Counts{}),
	}, quiet, rulegraph.WithRulePrefix("#"))
	require.NoError(t, err)
	assert.Equal(t, []string{"#0"}, net.RuleNodes)

	assert.Panics(t, func() { rulegraph.WithRulePrefix("") })
}

// TestBuild_Empty yields an empty graph.
func TestBuild_Empty(t *testing.T) {
	net, err := rulegraph.Build(nil, quiet)
	require.NoError(t, err)
	assert.Zero(t, net.Graph.VertexCount())
	assert.Empty(t, net.RuleNodes)
}
