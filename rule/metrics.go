// SPDX-License-Identifier: MIT

package rule

// ratio divides a by b, Unavailable when b is zero.
func ratio(a, b float64) Metric {
	if b == 0 {
		return Unavailable()
	}
	return Available(a / b)
}

// Confidence is P(rhs | lhs) = CountFull / CountLhs.
// Unavailable when CountLhs is zero.
func (r Rule) Confidence() Metric {
	return ratio(float64(r.counts.Full), float64(r.counts.Lhs))
}

// Support is P(lhs ∧ rhs) = CountFull / NumTransactions.
// Unavailable when NumTransactions is zero.
func (r Rule) Support() Metric {
	return ratio(float64(r.counts.Full), float64(r.counts.Transactions))
}

// Lift is the observed joint support over the support expected if lhs and
// rhs were independent: (full/N) / ((lhs·rhs)/N²).
// Unavailable when N is zero or the expected support is zero.
func (r Rule) Lift() Metric {
	n := float64(r.counts.Transactions)
	if n == 0 {
		return Unavailable()
	}
	observed := float64(r.counts.Full) / n
	expected := float64(r.counts.Lhs) * float64(r.counts.Rhs) / (n * n)

	return ratio(observed, expected)
}

// Conviction is P(¬rhs) / P(¬rhs | lhs), computed as
// (1 − rhs/N) / ((1 − confidence) + 1e-9). The epsilon keeps a perfect
// confidence finite. Unavailable when N is zero or confidence is unavailable.
func (r Rule) Conviction() Metric {
	n := float64(r.counts.Transactions)
	conf, ok := r.Confidence().Value()
	if n == 0 || !ok {
		return Unavailable()
	}
	notRhs := 1 - float64(r.counts.Rhs)/n

	return ratio(notRhs, (1-conf)+convictionEps)
}

// RPF is the rule power factor, confidence × support.
func (r Rule) RPF() Metric {
	conf, ok1 := r.Confidence().Value()
	supp, ok2 := r.Support().Value()
	if !ok1 || !ok2 {
		return Unavailable()
	}
	return Available(conf * supp)
}
