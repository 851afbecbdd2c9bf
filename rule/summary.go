// SPDX-License-Identifier: MIT

package rule

import "github.com/aclements/go-moremath/stats"

// Distribution summarizes the available values of one metric across a rule
// collection. Unavailable values are skipped and counted in Missing.
type Distribution struct {
	Count   int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	StdDev  float64
}

// Summary holds per-metric distributions for a rule collection.
type Summary struct {
	Rules      int
	Confidence Distribution
	Support    Distribution
	Lift       Distribution
	Conviction Distribution
	RPF        Distribution
}

// Summarize computes the distribution of every metric over rules.
// Complexity: O(R log R) per metric (quantiles sort a copy).
func Summarize(rules []Rule) Summary {
	return Summary{
		Rules:      len(rules),
		Confidence: distribution(rules, Rule.Confidence),
		Support:    distribution(rules, Rule.Support),
		Lift:       distribution(rules, Rule.Lift),
		Conviction: distribution(rules, Rule.Conviction),
		RPF:        distribution(rules, Rule.RPF),
	}
}

func distribution(rules []Rule, metric func(Rule) Metric) Distribution {
	xs := make([]float64, 0, len(rules))
	for _, r := range rules {
		if v, ok := metric(r).Value(); ok {
			xs = append(xs, v)
		}
	}
	d := Distribution{Count: len(xs), Missing: len(rules) - len(xs)}
	if len(xs) == 0 {
		return d
	}

	s := stats.Sample{Xs: xs}
	s.Sort()
	d.Min, d.Max = s.Bounds()
	d.Mean = s.Mean()
	d.Median = s.Quantile(0.5)
	if len(xs) > 1 {
		d.StdDev = s.StdDev()
	}
	return d
}
