// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/armviz/bucket"
	"github.com/katalvlaran/armviz/rule"
)

// Build lays out the rules of b on b.AxisCount axes using order.
//
// In Positional mode order must list every entity used by the rules exactly
// once (typically optimize.Result.Order or b.Entities). Categorical mode does
// not read order.
//
// An empty bucket yields K axes with no values; a bucket with fewer than two
// axes yields no axes at all.
//
// Errors: ErrUnknownMode, ErrDuplicateEntity, ErrUnknownEntity.
// Complexity: O(N + K·R).
func Build(b bucket.Bucket, order []string, mode Mode, opts ...Option) ([]Axis, error) {
	cfg := newConfig(opts...)
	if mode != Positional && mode != Categorical {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	k := b.AxisCount
	if k < bucket.MinAxisCount {
		return nil, nil
	}

	var index map[string]int
	if mode == Positional {
		index = make(map[string]int, len(order))
		for i, e := range order {
			if _, dup := index[e]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateEntity, e)
			}
			index[e] = i
		}
	}

	axes := make([]Axis, k)
	for i := range axes {
		ax := &axes[i]
		ax.Label = AxisLabel(i, k)
		if mode == Positional {
			ax.Range = [2]int{0, len(order)}
			ax.TickVals = make([]int, len(order))
			for j := range ax.TickVals {
				ax.TickVals[j] = j
			}
			ax.TickText = append([]string(nil), order...)
		}

		ax.Values = make([]Value, len(b.Rules))
		for ri, r := range b.Rules {
			var (
				e  string
				ok bool
			)
			if i < k-1 {
				e, ok = r.LhsAt(i)
			} else {
				e, ok = r.RhsAt(0)
			}
			if !ok {
				ax.Values[ri] = Value{Missing: true}
				ax.Missing++
				continue
			}

			v := Value{Label: e}
			if mode == Positional {
				pos, known := index[e]
				if !known {
					return nil, fmt.Errorf("%w: %q (rule %d, axis %d)", ErrUnknownEntity, e, ri, i)
				}
				v.Index = pos
			}
			ax.Values[ri] = v
		}

		if ax.Missing > 0 {
			cfg.logger.Warn("rules without a value on axis",
				"axes", k, "axis", ax.Label, "missing", ax.Missing)
		}
	}

	return axes, nil
}

// BuildDiagram is Build plus the per-rule colors and labels.
func BuildDiagram(b bucket.Bucket, order []string, mode Mode, opts ...Option) (Diagram, error) {
	axes, err := Build(b, order, mode, opts...)
	if err != nil {
		return Diagram{}, err
	}
	labels := make([]string, len(b.Rules))
	for i, r := range b.Rules {
		labels[i] = r.Label()
	}
	return Diagram{
		AxisCount: b.AxisCount,
		Mode:      mode,
		Axes:      axes,
		Colors:    LineColors(b.Rules),
		Rules:     labels,
	}, nil
}

// AxisLabel names axis i of a k-axis diagram: "Antecedent {k-1-i}" for the
// antecedent axes, ConsequentLabel for the last one.
func AxisLabel(i, k int) string {
	if i < k-1 {
		return fmt.Sprintf("Antecedent %d", k-1-i)
	}
	return ConsequentLabel
}

// LineColors returns each rule's confidence rounded to two decimals.
// Rules whose confidence is unavailable get an unavailable color.
func LineColors(rules []rule.Rule) []rule.Metric {
	out := make([]rule.Metric, len(rules))
	for i, r := range rules {
		if c, ok := r.Confidence().Value(); ok {
			out[i] = rule.Available(round2(c))
		}
	}
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
