// SPDX-License-Identifier: MIT

package rulegraph

// NodeTrace holds one entry per vertex, in sorted ID order.
type NodeTrace struct {
	IDs  []string
	X, Y []float64

	// Text is the hover text: the rule label or the entity ID.
	Text []string

	// Connections is in+out degree; renderers map it to marker color.
	Connections []int

	// Rule marks rule vertices.
	Rule []bool

	// Weight is the vertex weight attribute; renderers map it to marker size.
	Weight []int64
}

// Segment is one drawn edge.
type Segment struct {
	From, To string
	X0, Y0   float64
	X1, Y1   float64
	Weight   int64
}

// EdgeTrace holds one segment per edge, in insertion order.
type EdgeTrace struct {
	Segments []Segment
}

// Traces projects the network onto pos (typically the output of Spring).
// Vertices missing from pos are drawn at the origin.
func (n *Network) Traces(pos map[string]Point) (NodeTrace, EdgeTrace) {
	var nodes NodeTrace
	for _, id := range n.Graph.Vertices() {
		p := pos[id]
		v, _ := n.Graph.Vertex(id)
		text := id
		if l, ok := v.Attr(AttrLabel); ok {
			if s, ok := l.(string); ok && s != "" {
				text = s
			}
		}
		in, out, und, _ := n.Graph.Degree(id)

		nodes.IDs = append(nodes.IDs, id)
		nodes.X = append(nodes.X, p.X)
		nodes.Y = append(nodes.Y, p.Y)
		nodes.Text = append(nodes.Text, text)
		nodes.Connections = append(nodes.Connections, in+out+und)
		nodes.Rule = append(nodes.Rule, n.IsRule(id))
		nodes.Weight = append(nodes.Weight, n.Weight(id))
	}

	var edges EdgeTrace
	for _, e := range n.Graph.Edges() {
		a, b := pos[e.From], pos[e.To]
		edges.Segments = append(edges.Segments, Segment{
			From: e.From, To: e.To,
			X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y,
			Weight: e.Weight,
		})
	}
	return nodes, edges
}
