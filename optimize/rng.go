// SPDX-License-Identifier: MIT

// Package optimize - RNG and permutation helpers shared by the ordering search.
//
// This file centralizes deterministic random generation for Optimize and
// OptimizeAll.
//
// Goals:
//   - Determinism: same seed ⇒ identical orderings across runs and worker counts.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Performance: O(1) helpers, O(n) shuffles, no allocations beyond the
//     permutation itself.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Candidate permutations are drawn
//     on the calling goroutine; workers only score them.
//   - OptimizeAll gives every bucket its own stream via deriveSeed, keyed by
//     the bucket's axis count.
package optimize

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleInPlace is a Fisher–Yates shuffle of a driven by rng.
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// identity returns [0, 1, …, n−1].
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// randomPerm returns a uniformly random permutation of 0..n−1.
func randomPerm(n int, rng *rand.Rand) []int {
	p := identity(n)
	shuffleInPlace(p, rng)
	return p
}

// factorialCapped returns min(n!, limit) and whether n! ≤ limit.
// It stops multiplying once the cap is exceeded, so it never overflows.
func factorialCapped(n, limit int) (int, bool) {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
		if f > limit {
			return limit, false
		}
	}
	return f, true
}
