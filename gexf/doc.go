// SPDX-License-Identifier: MIT

// Package gexf serializes a core.Graph to GEXF 1.2, the graph exchange
// format read by Gephi and most network tools.
//
// Vertex Metadata becomes node attributes; attribute columns are the sorted
// union of all keys and their GEXF type is inferred from the Go value
// (integers → long, floats → double, bool → boolean, anything else →
// string). Edge weights are written both as the edge weight and as a
// "weight" edge attribute. Node order follows Graph.Vertices and edge order
// follows Graph.Edges, so output is byte-stable for a given graph.
//
// WriteFile compresses transparently when the path ends in ".gz".
package gexf
