// SPDX-License-Identifier: MIT

package optimize_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/armviz/bucket"
	"github.com/katalvlaran/armviz/optimize"
	"github.com/katalvlaran/armviz/rule"
)

// ExampleOptimize untangles two rules whose lines cross under input order.
func ExampleOptimize() {
	rules := []rule.Rule{
		rule.MustNew([]string{"a"}, []string{"d"}, rule.Counts{}),
		rule.MustNew([]string{"b"}, []string{"c"}, rule.Counts{}),
	}
	b := bucket.Bucket{AxisCount: 2, Rules: rules, Entities: []string{"a", "b", "c", "d"}}

	res, err := optimize.Optimize(b,
		optimize.WithSeed(7),
		optimize.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("input crossings:", res.InputCrossings)
	fmt.Println("best crossings:", res.Crossings)
	fmt.Println("exhaustive:", res.Exhaustive, res.Evaluated)

	// Output:
	// input crossings: 1
	// best crossings: 0
	// exhaustive: true 24
}
