// SPDX-License-Identifier: MIT

// Package optimize searches for an entity ordering that minimizes line
// crossings in a parallel-axis layout of one rule bucket.
//
// The search space is all N! orderings of the bucket's N entities. Optimize
// draws distinct random permutations (de-duplicated through a set) until it
// holds min(N!, MaxIterations) candidates, scores each with the crossing
// evaluator, and returns the candidate with the fewest crossings. The input
// ordering is always the first candidate, so the result never has more
// crossings than the input; ties go to the earliest sampled candidate.
//
// With the default cap of 1000, every bucket with N ≤ 6 (N! ≤ 720) is
// searched exhaustively and the true minimum is returned. Larger buckets get
// a bounded random search; callers must not assume zero crossings.
//
// Determinism:
//   - All randomness flows from an explicit source (WithSeed / WithRand).
//     seed==0 maps to a fixed default seed, never to the clock.
//   - Sampling runs on one goroutine. WithWorkers only parallelizes scoring,
//     and the reduction scans scores in sampling order, so the same seed gives
//     the same ordering for any worker count.
//
// Diagnostics are returned in Result (attempts, distinct permutations
// evaluated, exhaustiveness) rather than kept in package state.
package optimize
