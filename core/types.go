// SPDX-License-Identifier: MIT

// Package core - Graph, Vertex and Edge types backing rule networks.
//
// This file declares the value types, the graph and vertex options, the
// sentinel errors and the NewGraph constructor.
//
// Policies:
//   - Orientation and weighting are fixed at construction (WithDirected,
//     WithWeighted); every edge records the orientation it was created with.
//   - Self-loops and parallel edges are always rejected: a rule network links
//     distinct vertices at most once per direction.
//
// Concurrency:
//   - muVert guards the vertex catalog, muEdgeAdj guards edges, edge order
//     and adjacency. Methods taking both acquire muVert first.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same ordered pair.
package core

import (
	"errors"
	"maps"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores typed attributes. Never nil for vertices owned by a Graph.
	Metadata map[string]any
}

// Attr returns the attribute stored under key.
func (v Vertex) Attr(key string) (any, bool) {
	val, ok := v.Metadata[key]
	return val, ok
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge's integer weight (0 in unweighted graphs).
	Weight int64

	// Directed is the orientation the edge was created with.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// VertexOption sets attributes on a vertex when it is added.
type VertexOption func(md map[string]any)

// WithAttr stores key=val in the vertex Metadata. Applied to an existing
// vertex it overwrites the previous value.
func WithAttr(key string, val any) VertexOption {
	return func(md map[string]any) { md[key] = val }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges, edge order and adjacency.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed bool
	weighted bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge
	edgeOrder  []string

	// adjacency[from][to] is the edge ID; undirected edges appear under both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph. By default it is undirected and unweighted.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports the default edge orientation.
func (g *Graph) Directed() bool { return g.directed }

func cloneVertex(v *Vertex) Vertex {
	return Vertex{ID: v.ID, Metadata: maps.Clone(v.Metadata)}
}
