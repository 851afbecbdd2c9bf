// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/armviz/core"
)

// ExampleGraph builds a small directed, weighted graph.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddVertex("rule", core.WithAttr("type", "Association_Rule"))
	_, _ = g.AddEdge("milk", "rule", 15)
	_, _ = g.AddEdge("rule", "bread", 15)

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("milk→rule:", g.HasEdge("milk", "rule"), "rule→milk:", g.HasEdge("rule", "milk"))
	for _, e := range g.Edges() {
		fmt.Println(e.ID, e.From, "->", e.To, e.Weight)
	}

	// Output:
	// vertices: [bread milk rule]
	// milk→rule: true rule→milk: false
	// e1 milk -> rule 15
	// e2 rule -> bread 15
}
