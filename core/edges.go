// SPDX-License-Identifier: MIT

package core

import "strconv"

const edgeIDPrefix = 'e'

// AddEdge creates an edge from→to, adding missing endpoints first.
//
// Implementation:
//   - Stage 1: validate IDs and weight; reject self-loops.
//   - Stage 2: ensure both endpoints exist (AddVertex).
//   - Stage 3: under muEdgeAdj, reject a parallel edge, allocate the
//     next ID and link the adjacency (mirrored when undirected).
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10))
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, eid)
	g.link(from, to, eid)
	if !e.Directed {
		g.link(to, from, eid)
	}

	return eid, nil
}

// HasEdge reports whether an edge leads from→to. Undirected edges are
// visible from both endpoints.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]
	return ok
}

// Edges returns copies of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, len(g.edgeOrder))
	for i, eid := range g.edgeOrder {
		out[i] = *g.edges[eid]
	}
	return out
}

// EdgeCount returns |E| (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// link requires muEdgeAdj held for writing.
func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[string]string)
		g.adjacency[from] = inner
	}
	inner[to] = eid
}
