// SPDX-License-Identifier: MIT

// Package rule defines the immutable association-rule value object and the
// statistics derived from its raw occurrence counts.
//
// A Rule X → Y carries four counts taken from the mined dataset:
//
//	CountFull        — transactions containing X ∪ Y
//	CountLhs         — transactions containing X
//	CountRhs         — transactions containing Y
//	NumTransactions  — all transactions
//
// Derived metrics are computed on demand and never stored:
//
//	Confidence = full / lhs                          P(Y|X)
//	Support    = full / N                            P(X ∧ Y)
//	Lift       = (full/N) / ((lhs·rhs)/N²)           observed / expected support
//	Conviction = (1 − rhs/N) / ((1 − conf) + 1e-9)   P(¬Y) / P(¬Y|X)
//	RPF        = Confidence · Support                rule power factor
//
// Every metric is a Metric: either Available(value) or Unavailable. A zero
// divisor never produces NaN, ±Inf or a panic; it produces Unavailable, and
// consumers must treat that as missing data rather than as zero.
//
// Equality ignores element order and duplicates on each side. Hash and Key
// are computed over the unordered union of both sides, so equal rules always
// share them.
//
// Construction:
//
//	New(lhs, rhs, Counts{...})   — direct
//	FromSource(src)              — copy from any value implementing Source
//	FromMap(record)              — copy from a plain key-value record
package rule
