// SPDX-License-Identifier: MIT

// Package bucket groups association rules by the number of layout axes they
// need.
//
// A rule with k antecedents and exactly one consequent needs K = k+1 vertical
// axes: one per antecedent position and one for the consequent. Bucketize
// places every such rule into the bucket for its K, and unions the rule's
// entities into that bucket's entity set. Buckets are dense and indexed by
// K−2 (K=2 is the smallest possible shape), so a collection whose rules only
// need 3 axes still yields an empty bucket at index 0.
//
// Rules that cannot be laid out on shared axes are not errors: they are
// dropped, recorded in Result.Dropped with a reason, and logged at Debug.
//
//	res := bucket.Bucketize(rules)
//	for _, b := range res.NonEmpty() {
//		// b.AxisCount, b.Rules, b.Entities
//	}
//
// Invariant: every rule in a bucket with AxisCount K has K−1 antecedents and
// one consequent.
package bucket
