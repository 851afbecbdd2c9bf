// SPDX-License-Identifier: MIT

package crossing_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/armviz/bucket"
	"github.com/katalvlaran/armviz/crossing"
	"github.com/katalvlaran/armviz/rule"
)

// benchBucket builds R random rules with K axes over N entities.
func benchBucket(n, r, k int) bucket.Bucket {
	rng := rand.New(rand.NewSource(7))
	entities := make([]string, n)
	for i := range entities {
		entities[i] = fmt.Sprintf("e%02d", i)
	}
	rules := make([]rule.Rule, r)
	for i := range rules {
		lhs := make([]string, k-1)
		for j := range lhs {
			lhs[j] = entities[rng.Intn(n)]
		}
		rules[i] = rule.MustNew(lhs, []string{entities[rng.Intn(n)]}, rule.Counts{})
	}
	return bucket.Bucket{AxisCount: k, Rules: rules, Entities: entities}
}

func BenchmarkEvaluator_CountPermutation(b *testing.B) {
	for _, size := range []struct{ n, r, k int }{{8, 32, 2}, {16, 128, 3}, {24, 256, 4}} {
		bk := benchBucket(size.n, size.r, size.k)
		ev, err := crossing.NewEvaluator(bk)
		if err != nil {
			b.Fatal(err)
		}
		perm := rand.New(rand.NewSource(1)).Perm(size.n)
		b.Run(fmt.Sprintf("N=%d/R=%d/K=%d", size.n, size.r, size.k), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = ev.CountPermutation(perm)
			}
		})
	}
}
