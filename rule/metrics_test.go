// SPDX-License-Identifier: MIT

package rule_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/armviz/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// abc is the reference rule {a, b} -> {c} with counts 50/100/150/200.
func abc(t *testing.T) rule.Rule {
	t.Helper()
	r, err := rule.New([]string{"a", "b"}, []string{"c"}, rule.Counts{Full: 50, Lhs: 100, Rhs: 150, Transactions: 200})
	require.NoError(t, err)
	return r
}

// TestMetrics_Reference checks every metric on the reference rule.
func TestMetrics_Reference(t *testing.T) {
	r := abc(t)

	conf, ok := r.Confidence().Value()
	require.True(t, ok)
	assert.Equal(t, 0.5, conf, "confidence must be exact")

	supp, ok := r.Support().Value()
	require.True(t, ok)
	assert.Equal(t, 0.25, supp, "support must be exact")

	lift, ok := r.Lift().Value()
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, lift, 1e-9)

	conv, ok := r.Conviction().Value()
	require.True(t, ok)
	assert.InDelta(t, 0.5, conv, 1e-6)

	rpf, ok := r.RPF().Value()
	require.True(t, ok)
	assert.Equal(t, 0.125, rpf)
}

// TestMetrics_ZeroDivisors verifies every zero divisor yields Unavailable.
func TestMetrics_ZeroDivisors(t *testing.T) {
	cases := []struct {
		name   string
		counts rule.Counts
		check  func(rule.Rule) rule.Metric
	}{
		{"confidence lhs=0", rule.Counts{Full: 5, Lhs: 0, Rhs: 5, Transactions: 10}, rule.Rule.Confidence},
		{"support N=0", rule.Counts{Full: 5, Lhs: 5, Rhs: 5}, rule.Rule.Support},
		{"lift N=0", rule.Counts{Full: 5, Lhs: 5, Rhs: 5}, rule.Rule.Lift},
		{"lift rhs=0", rule.Counts{Full: 5, Lhs: 5, Rhs: 0, Transactions: 10}, rule.Rule.Lift},
		{"conviction N=0", rule.Counts{Full: 5, Lhs: 5, Rhs: 5}, rule.Rule.Conviction},
		{"conviction lhs=0", rule.Counts{Full: 5, Rhs: 5, Transactions: 10}, rule.Rule.Conviction},
		{"rpf lhs=0", rule.Counts{Full: 5, Rhs: 5, Transactions: 10}, rule.Rule.RPF},
		{"all zero", rule.Counts{}, rule.Rule.Confidence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := rule.MustNew([]string{"x"}, []string{"y"}, tc.counts)
			m := tc.check(r)
			assert.False(t, m.Valid())
			v, ok := m.Value()
			assert.False(t, ok)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "no NaN/Inf must leak")
			assert.Equal(t, "n/a", m.String())
		})
	}
}

// TestMetrics_PerfectConfidence keeps conviction finite when confidence is 1.
func TestMetrics_PerfectConfidence(t *testing.T) {
	r := rule.MustNew([]string{"x"}, []string{"y"}, rule.Counts{Full: 10, Lhs: 10, Rhs: 20, Transactions: 40})
	conv, ok := r.Conviction().Value()
	require.True(t, ok)
	assert.False(t, math.IsInf(conv, 0))
	assert.InDelta(t, 0.5/1e-9, conv, 1)
}

// TestMetric_Formatting locks the three-decimal rendering.
func TestMetric_Formatting(t *testing.T) {
	assert.Equal(t, "0.500", rule.Available(0.5).String())
	assert.Equal(t, "0.667", rule.Available(2.0/3.0).String())
	assert.Equal(t, "n/a", rule.Unavailable().String())
	assert.Equal(t, 7.0, rule.Unavailable().Or(7))
	assert.Equal(t, 0.25, rule.Available(0.25).Or(7))

	b, err := rule.Unavailable().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
	b, err = rule.Available(0.25).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "0.25", string(b))
}
