// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/armviz/rule"
)

// adjacencySizeScale converts confidence into a marker size.
const adjacencySizeScale = 20

// MetadataSeries is the strength distribution of a rule set: one point per
// rule at (support, confidence), colored by lift.
type MetadataSeries struct {
	Support    []rule.Metric
	Confidence []rule.Metric
	Lift       []rule.Metric

	// Text is the hover text, "{a} -> {b}, Lift: 1.200".
	Text []string
}

// Len is the number of points.
func (s MetadataSeries) Len() int { return len(s.Text) }

// MetadataScatter builds the strength distribution of rules. Unless
// allowCompound is set, rules with more than one entity on either side are
// skipped.
func MetadataScatter(rules []rule.Rule, allowCompound bool) MetadataSeries {
	var s MetadataSeries
	for _, r := range rules {
		if !allowCompound && r.IsCompound() {
			continue
		}
		lift := r.Lift()
		s.Support = append(s.Support, r.Support())
		s.Confidence = append(s.Confidence, r.Confidence())
		s.Lift = append(s.Lift, lift)
		s.Text = append(s.Text, fmt.Sprintf("%s, Lift: %s", r.Label(), lift))
	}
	return s
}

// AdjacencySeries places each rule on a grid of consequent (X) against
// antecedent (Y) labels with a confidence-sized marker.
type AdjacencySeries struct {
	X    []string
	Y    []string
	Size []rule.Metric
	Text []string
}

// Len is the number of points.
func (s AdjacencySeries) Len() int { return len(s.X) }

// Categories returns the distinct labels of both sides in first-seen order,
// consequents and antecedents interleaved per rule.
func (s AdjacencySeries) Categories() []string {
	seen := make(map[string]struct{}, 2*len(s.X))
	var out []string
	for i := range s.X {
		for _, l := range [...]string{s.X[i], s.Y[i]} {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	return out
}

// AdjacencyScatter builds the antecedent/consequent strength grid. Every
// rule contributes a point; marker size is 20·confidence.
func AdjacencyScatter(rules []rule.Rule) AdjacencySeries {
	s := AdjacencySeries{
		X:    make([]string, len(rules)),
		Y:    make([]string, len(rules)),
		Size: make([]rule.Metric, len(rules)),
		Text: make([]string, len(rules)),
	}
	for i, r := range rules {
		s.X[i] = braces(r.Rhs())
		s.Y[i] = braces(r.Lhs())
		if c, ok := r.Confidence().Value(); ok {
			s.Size[i] = rule.Available(adjacencySizeScale * c)
		}
		s.Text[i] = r.String()
	}
	return s
}

func braces(s []string) string { return "{" + strings.Join(s, ", ") + "}" }
