// SPDX-License-Identifier: MIT

package core

import (
	"slices"
)

// AddVertex inserts id, or updates its attributes if it already exists.
//
// Implementation:
//   - Stage 1: reject an empty ID.
//   - Stage 2: create the vertex with a non-nil Metadata map if absent.
//   - Stage 3: apply opts to Metadata (later options win).
//
// Errors: ErrEmptyVertexID.
// Complexity: O(1) amortized plus O(len(opts)).
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		v = &Vertex{ID: id, Metadata: make(map[string]any)}
		g.vertices[id] = v
	}
	for _, opt := range opts {
		opt(v.Metadata)
	}
	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns a copy of the vertex with its own Metadata map.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}
	return cloneVertex(v), nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// Degree returns the in-, out- and undirected degree of id.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(E).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}
	for _, e := range g.edges {
		switch {
		case e.From != id && e.To != id:
		case !e.Directed:
			undirected++
		case e.From == id:
			out++
		default:
			in++
		}
	}
	return in, out, undirected, nil
}
