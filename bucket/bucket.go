// SPDX-License-Identifier: MIT

package bucket

import "github.com/katalvlaran/armviz/rule"

// Bucketize groups rules by axis count.
//
// Implementation:
//   - Stage 1: classify each rule; drop multi-consequent rules, antecedent-less
//     rules, and (when disabled) compound rules.
//   - Stage 2: grow the dense bucket slice up to index K−2.
//   - Stage 3: append the rule (canonicalized if enabled) and union its
//     entities into the bucket's entity set.
//
// Returns an empty Result for empty input.
// Complexity: O(Σ|rule|) time and space.
func Bucketize(rules []rule.Rule, opts ...Option) Result {
	cfg := newConfig(opts...)

	var (
		res  Result
		seen []map[string]struct{} // per-bucket entity membership
	)
	for i, r := range rules {
		reason := classify(r, cfg)
		if reason != 0 {
			res.Dropped = append(res.Dropped, Drop{Index: i, Rule: r, Reason: reason})
			cfg.logger.Debug("rule excluded from axis layout",
				"index", i, "rule", r.Label(), "reason", reason.String())
			cfg.metrics.ObserveDrop(reason.String())
			continue
		}
		if cfg.canonical {
			r = r.Canonical()
		}

		k := r.LhsLen() + 1
		idx := k - MinAxisCount
		for len(res.Buckets) <= idx {
			res.Buckets = append(res.Buckets, Bucket{AxisCount: len(res.Buckets) + MinAxisCount})
			seen = append(seen, make(map[string]struct{}))
		}

		b := &res.Buckets[idx]
		b.Rules = append(b.Rules, r)
		for _, e := range r.Entities() {
			if _, ok := seen[idx][e]; ok {
				continue
			}
			seen[idx][e] = struct{}{}
			b.Entities = append(b.Entities, e)
		}
	}

	return res
}

func classify(r rule.Rule, cfg config) Reason {
	switch {
	case r.LhsLen() == 0:
		return NoAntecedent
	case r.RhsLen() != 1:
		return MultiConsequent
	case !cfg.compound && r.LhsLen() > 1:
		return CompoundDisallowed
	default:
		return 0
	}
}
