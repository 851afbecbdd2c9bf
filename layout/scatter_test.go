// SPDX-License-Identifier: MIT

package layout_test

import (
	"testing"

	"github.com/katalvlaran/armviz/layout"
	"github.com/katalvlaran/armviz/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shoppingRules() []rule.Rule {
	return []rule.Rule{
		rule.MustNew([]string{"milk"}, []string{"bread"}, rule.Counts{Full: 30, Lhs: 50, Rhs: 40, Transactions: 100}),
		rule.MustNew([]string{"milk", "eggs"}, []string{"bread"}, rule.Counts{Full: 10, Lhs: 20, Rhs: 40, Transactions: 100}),
		rule.MustNew([]string{"jam"}, []string{"bread"}, rule.Counts{Full: 0, Lhs: 0, Rhs: 40, Transactions: 100}),
	}
}

// TestMetadataScatter filters compound rules unless allowed.
func TestMetadataScatter(t *testing.T) {
	s := layout.MetadataScatter(shoppingRules(), false)
	require.Equal(t, 2, s.Len())

	supp, _ := s.Support[0].Value()
	conf, _ := s.Confidence[0].Value()
	lift, _ := s.Lift[0].Value()
	assert.InDelta(t, 0.3, supp, 1e-12)
	assert.InDelta(t, 0.6, conf, 1e-12)
	assert.InDelta(t, 1.5, lift, 1e-12)
	assert.Equal(t, "{milk} -> {bread}, Lift: 1.500", s.Text[0])

	assert.False(t, s.Confidence[1].Valid(), "count_lhs=0 leaves confidence unavailable")

	all := layout.MetadataScatter(shoppingRules(), true)
	assert.Equal(t, 3, all.Len())
}

// TestAdjacencyScatter places consequents on X and antecedents on Y.
func TestAdjacencyScatter(t *testing.T) {
	s := layout.AdjacencyScatter(shoppingRules())
	require.Equal(t, 3, s.Len())

	assert.Equal(t, []string{"{bread}", "{bread}", "{bread}"}, s.X)
	assert.Equal(t, []string{"{milk}", "{milk, eggs}", "{jam}"}, s.Y)

	size, ok := s.Size[0].Value()
	assert.True(t, ok)
	assert.InDelta(t, 12.0, size, 1e-12)
	assert.False(t, s.Size[2].Valid())

	assert.Equal(t, []string{"{bread}", "{milk}", "{milk, eggs}", "{jam}"}, s.Categories())
}
