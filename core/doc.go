// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory graph that backs rule
// networks.
//
// A Graph G = (V, E) is configured once with functional options:
//
//   - WithDirected(bool): orientation of new edges. Undirected edges are
//     mirrored in the adjacency index.
//   - WithWeighted(): permit non-zero edge weights; otherwise
//     AddEdge(weight≠0) returns ErrBadWeight.
//
// Self-loops and parallel edges are rejected. Vertices carry a Metadata map
// of typed attributes (a rule network stores "weight" and "type" there).
// Edge IDs are generated as "e1", "e2", … in insertion order.
//
// Determinism: Vertices() returns IDs sorted ascending and Edges() returns
// edges in insertion order. Exporters and layouts rely on this for stable
// output.
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_ = g.AddVertex("milk", core.WithAttr("type", "Entity"))
//	eid, err := g.AddEdge("milk", "rule:0", 7)
package core
