// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"encoding/binary"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/armviz/bucket"
	"github.com/katalvlaran/armviz/crossing"
)

// Result is the outcome of one optimizer run.
type Result struct {
	// AxisCount is the bucket's K.
	AxisCount int

	// Order is the selected entity ordering (a permutation of the bucket's entities).
	Order []string

	// Crossings is the crossing count of Order.
	Crossings int

	// InputCrossings is the crossing count of the bucket's own entity order.
	InputCrossings int

	// Attempts is the number of random permutations drawn, duplicates included.
	Attempts int

	// Evaluated is the number of distinct permutations scored.
	Evaluated int

	// Exhaustive reports that all N! orderings were scored, so Crossings is
	// the global minimum.
	Exhaustive bool
}

// Optimize selects the entity ordering of b with the fewest crossings among
// min(N!, MaxIterations) distinct candidates.
//
// Implementation:
//   - Stage 1: index b with a crossing.Evaluator (validates rule shapes).
//   - Stage 2: N ≤ 1 ⇒ return the trivial ordering without sampling.
//   - Stage 3: seed the candidate set with the input order, then draw random
//     permutations, skipping duplicates, until the target size is reached.
//   - Stage 4: score candidates (optionally on WithWorkers goroutines).
//   - Stage 5: keep the first candidate with the minimum score.
//
// Errors: those of crossing.NewEvaluator (rule.ErrShapeMismatch, …).
// An empty bucket is not an error; it yields an empty Order.
//
// Complexity: O(C·K·R²) for C = min(N!, MaxIterations) candidates, plus the
// expected O(C·log C·N) sampling cost when C approaches N!.
func Optimize(b bucket.Bucket, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	return optimize(b, cfg, cfg.rng)
}

// OptimizeAll runs Optimize on every non-empty bucket of res. Each bucket
// draws from its own stream derived from the configured source and its axis
// count, so adding or removing one bucket does not change the others.
func OptimizeAll(res bucket.Result, opts ...Option) ([]Result, error) {
	cfg := newConfig(opts...)
	parent := cfg.rng.Int63()

	buckets := res.NonEmpty()
	out := make([]Result, 0, len(buckets))
	for _, b := range buckets {
		rng := rand.New(rand.NewSource(deriveSeed(parent, uint64(b.AxisCount))))
		r, err := optimize(b, cfg, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func optimize(b bucket.Bucket, cfg config, rng *rand.Rand) (Result, error) {
	start := time.Now()

	ev, err := crossing.NewEvaluator(b)
	if err != nil {
		return Result{}, err
	}

	n := ev.Len()
	res := Result{AxisCount: b.AxisCount, Order: ev.Entities()}
	if n <= 1 {
		res.Exhaustive = true
		return res, nil
	}

	target, exhaustive := factorialCapped(n, cfg.maxIterations)
	candidates, attempts := sample(n, target, rng)
	scores := score(ev, candidates, cfg.workers)

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[best] {
			best = i
		}
	}

	res.Order = orderOf(ev.Entities(), candidates[best])
	res.Crossings = scores[best]
	res.InputCrossings = scores[0]
	res.Attempts = attempts
	res.Evaluated = len(candidates)
	res.Exhaustive = exhaustive

	logRun(cfg.logger, res, candidates, scores)
	cfg.metrics.ObserveOptimization(res.AxisCount, res.Attempts, res.Evaluated, res.Crossings, res.Exhaustive, time.Since(start))

	return res, nil
}

// sample returns target distinct permutations of 0..n−1, the identity first,
// and the number of random draws it took. target must not exceed n!.
func sample(n, target int, rng *rand.Rand) ([][]int, int) {
	var (
		out      = make([][]int, 0, target)
		seen     = make(map[string]struct{}, target)
		attempts int
	)
	add := func(p []int) {
		k := permKey(p)
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}

	add(identity(n))
	for len(out) < target {
		add(randomPerm(n, rng))
		attempts++
	}
	return out, attempts
}

// score evaluates every candidate. Workers write disjoint index ranges, so
// scores[i] always belongs to candidates[i] regardless of completion order.
func score(ev *crossing.Evaluator, candidates [][]int, workers int) []int {
	scores := make([]int, len(candidates))
	if workers <= 1 || len(candidates) < 2*workers {
		for i, p := range candidates {
			scores[i] = ev.CountPermutation(p)
		}
		return scores
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (len(candidates) + workers - 1) / workers
	for lo := 0; lo < len(candidates); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(candidates))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				scores[i] = ev.CountPermutation(candidates[i])
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return scores
}

func permKey(p []int) string {
	buf := make([]byte, 0, len(p)*2)
	for _, v := range p {
		buf = binary.AppendUvarint(buf, uint64(v))
	}
	return string(buf)
}

func orderOf(entities []string, perm []int) []string {
	out := make([]string, len(perm))
	for pos, id := range perm {
		out[pos] = entities[id]
	}
	return out
}

func logRun(l *slog.Logger, res Result, candidates [][]int, scores []int) {
	l.Info("sampled axis entity permutations",
		"axes", res.AxisCount,
		"permutations", res.Evaluated,
		"attempts", res.Attempts,
		"exhaustive", res.Exhaustive)

	if l.Enabled(context.Background(), slog.LevelDebug) {
		for i, p := range candidates {
			l.Debug("counted crossings", "candidate", i, "permutation", p, "crossings", scores[i])
		}
	}

	l.Info("selected axis entity order",
		"axes", res.AxisCount,
		"order", res.Order,
		"crossings", res.Crossings,
		"input_crossings", res.InputCrossings)
}
