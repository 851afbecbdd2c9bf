// SPDX-License-Identifier: MIT

package rule_test

import (
	"testing"

	"github.com/katalvlaran/armviz/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation verifies constructor sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := rule.New(nil, []string{"c"}, rule.Counts{})
	assert.ErrorIs(t, err, rule.ErrEmptyLhs)

	_, err = rule.New([]string{"a"}, nil, rule.Counts{})
	assert.ErrorIs(t, err, rule.ErrEmptyRhs)

	_, err = rule.New([]string{"a", ""}, []string{"c"}, rule.Counts{})
	assert.ErrorIs(t, err, rule.ErrEmptyEntity)

	_, err = rule.New([]string{"a"}, []string{"c"}, rule.Counts{Full: -1})
	assert.ErrorIs(t, err, rule.ErrNegativeCount)

	assert.Panics(t, func() { rule.MustNew(nil, nil, rule.Counts{}) })
}

// TestRule_Immutable checks that caller slices are copied in and out.
func TestRule_Immutable(t *testing.T) {
	lhs := []string{"a", "b"}
	r := rule.MustNew(lhs, []string{"c"}, rule.Counts{})
	lhs[0] = "z"
	assert.Equal(t, []string{"a", "b"}, r.Lhs())

	out := r.Lhs()
	out[0] = "z"
	assert.Equal(t, []string{"a", "b"}, r.Lhs())
}

// TestRule_Equality verifies order- and duplicate-insensitive equality and
// that Hash is consistent with it.
func TestRule_Equality(t *testing.T) {
	r1 := rule.MustNew([]string{"a", "b"}, []string{"c"}, rule.Counts{Full: 1})
	r2 := rule.MustNew([]string{"b", "a"}, []string{"c"}, rule.Counts{Full: 9})
	r3 := rule.MustNew([]string{"a", "b", "a"}, []string{"c", "c"}, rule.Counts{})
	r4 := rule.MustNew([]string{"a"}, []string{"b", "c"}, rule.Counts{})

	assert.True(t, r1.Equal(r2))
	assert.True(t, r2.Equal(r1), "equality is symmetric")
	assert.True(t, r1.Equal(r3))
	assert.Equal(t, r1.Hash(), r2.Hash())
	assert.Equal(t, r1.Key(), r3.Key())

	assert.False(t, r1.Equal(r4))
	assert.Equal(t, r1.Key(), r4.Key(), "same union shares a key without being equal")
}

// TestRule_Formatting locks String/Label/Len rendering.
func TestRule_Formatting(t *testing.T) {
	r := abc(t)
	assert.Equal(t, "{a, b} -> {c}", r.Label())
	assert.Equal(t, "{a, b} -> {c} (conf: 0.500, supp: 0.250, lift: 0.667, conv: 0.500)", r.String())
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.IsCompound())

	empty := rule.MustNew([]string{"a"}, []string{"b"}, rule.Counts{})
	assert.Equal(t, "{a} -> {b} (conf: n/a, supp: n/a, lift: n/a, conv: n/a)", empty.String())
	assert.False(t, empty.IsCompound())
}

// TestRule_Accessors covers positional access and canonical ordering.
func TestRule_Accessors(t *testing.T) {
	r := rule.MustNew([]string{"b", "a"}, []string{"c"}, rule.Counts{Full: 3})

	v, ok := r.LhsAt(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = r.LhsAt(2)
	assert.False(t, ok)
	_, ok = r.RhsAt(-1)
	assert.False(t, ok)

	c := r.Canonical()
	assert.Equal(t, []string{"a", "b"}, c.Lhs())
	assert.Equal(t, []string{"b", "a"}, r.Lhs(), "receiver untouched")
	assert.True(t, r.Equal(c))
	assert.Equal(t, r.Counts(), c.Counts())
	assert.Equal(t, []string{"b", "a", "c"}, r.Entities())
}

// TestDedupe keeps the first occurrence of each equal rule.
func TestDedupe(t *testing.T) {
	rules := []rule.Rule{
		rule.MustNew([]string{"a", "b"}, []string{"c"}, rule.Counts{Full: 1}),
		rule.MustNew([]string{"a"}, []string{"b", "c"}, rule.Counts{}),
		rule.MustNew([]string{"b", "a"}, []string{"c"}, rule.Counts{Full: 2}),
	}
	out := rule.Dedupe(rules)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Counts().Full)
	assert.Equal(t, []string{"b", "c"}, out[1].Rhs())
}

// TestSummarize skips unavailable metrics.
func TestSummarize(t *testing.T) {
	rules := []rule.Rule{
		rule.MustNew([]string{"a"}, []string{"b"}, rule.Counts{Full: 1, Lhs: 2, Rhs: 2, Transactions: 4}),
		rule.MustNew([]string{"a"}, []string{"c"}, rule.Counts{Full: 3, Lhs: 4, Rhs: 3, Transactions: 4}),
		rule.MustNew([]string{"x"}, []string{"y"}, rule.Counts{}),
	}
	s := rule.Summarize(rules)
	assert.Equal(t, 3, s.Rules)
	assert.Equal(t, 2, s.Confidence.Count)
	assert.Equal(t, 1, s.Confidence.Missing)
	assert.Equal(t, 0.5, s.Confidence.Min)
	assert.Equal(t, 0.75, s.Confidence.Max)
	assert.InDelta(t, 0.625, s.Confidence.Mean, 1e-12)

	empty := rule.Summarize(nil)
	assert.Zero(t, empty.Lift.Count)
	assert.Zero(t, empty.Lift.Mean)
}
