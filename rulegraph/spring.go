// SPDX-License-Identifier: MIT

package rulegraph

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/armviz/core"
)

// DefaultSpringIterations is the number of force updates Spring runs.
const DefaultSpringIterations = 100

// Eades parameters: unit repulsion, a small gradient step and a tight
// Barnes–Hut approximation for the few hundred vertices of a rule network.
const (
	springRepulsion = 1.0
	springRate      = 0.05
	springTheta     = 0.2
)

// Point is a 2-D position.
type Point struct{ X, Y float64 }

// SpringOption customizes Spring.
type SpringOption func(*springConfig)

type springConfig struct {
	iterations int
	seed       int64
}

// WithIterations sets the number of force updates. Panics on n < 1.
func WithIterations(n int) SpringOption {
	if n < 1 {
		panic("rulegraph: WithIterations requires n >= 1")
	}
	return func(c *springConfig) { c.iterations = n }
}

// WithSpringSeed fixes the initial random placement. Seed 0 is mapped to 1.
func WithSpringSeed(seed int64) SpringOption {
	return func(c *springConfig) { c.seed = seed }
}

// Spring computes a force-directed layout of g with gonum's Eades updater,
// treating every edge as an undirected spring. Positions are centered on
// the origin and scaled so the largest coordinate magnitude is 1.
//
// Implementation:
//   - Stage 1: index vertices by their sorted position and expose g as an
//     undirected gonum graph whose iterators follow that order.
//   - Stage 2: place vertices uniformly in [0,1)² from the seed, then run
//     layout.EadesR2 through a layout.OptimizerR2.
//   - Stage 3: center and rescale.
//
// Identical graphs and seeds yield identical positions.
// Complexity: O(I·V·log V + I·E) time, O(V + E) space.
func Spring(g *core.Graph, opts ...SpringOption) map[string]Point {
	cfg := springConfig{iterations: DefaultSpringIterations, seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seed == 0 {
		cfg.seed = 1
	}

	ids := g.Vertices()
	out := make(map[string]Point, len(ids))
	switch len(ids) {
	case 0:
		return out
	case 1:
		out[ids[0]] = Point{}
		return out
	}

	sg := newSpringGraph(g, ids)
	rng := rand.New(rand.NewSource(cfg.seed))
	eades := layout.EadesR2{
		Updates:   cfg.iterations,
		Repulsion: springRepulsion,
		Rate:      springRate,
		Theta:     springTheta,
	}
	update := func(gg graph.Graph, l layout.LayoutR2) bool {
		if !l.IsInitialized() {
			for i := range ids {
				l.SetCoord2(int64(i), r2.Vec{X: rng.Float64(), Y: rng.Float64()})
			}
		}
		return eades.Update(gg, l)
	}
	opt := layout.NewOptimizerR2(sg, update)
	for opt.Update() {
	}

	pos := make([]Point, len(ids))
	for i := range ids {
		c := opt.Coord2(int64(i))
		pos[i] = Point{X: c.X, Y: c.Y}
	}
	rescale(pos)
	for i, id := range ids {
		out[id] = pos[i]
	}
	return out
}

func rescale(pos []Point) {
	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pos))
	cy /= float64(len(pos))

	lim := 0.0
	for i := range pos {
		pos[i].X -= cx
		pos[i].Y -= cy
		lim = math.Max(lim, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if lim == 0 {
		return
	}
	for i := range pos {
		pos[i].X /= lim
		pos[i].Y /= lim
	}
}

// springGraph is the undirected view of a core.Graph that Eades runs on.
// Node IDs are indices into the sorted vertex list, and every iterator is
// ordered so that force accumulation does not depend on map order.
type springGraph struct {
	nodes []graph.Node
	adj   [][]graph.Node // sorted neighbor lists
	set   []map[int64]struct{}
}

var _ graph.Undirected = (*springGraph)(nil)

func newSpringGraph(g *core.Graph, ids []string) *springGraph {
	index := make(map[string]int64, len(ids))
	sg := &springGraph{
		nodes: make([]graph.Node, len(ids)),
		adj:   make([][]graph.Node, len(ids)),
		set:   make([]map[int64]struct{}, len(ids)),
	}
	for i, id := range ids {
		index[id] = int64(i)
		sg.nodes[i] = simple.Node(i)
		sg.set[i] = make(map[int64]struct{})
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if u == v {
			continue
		}
		sg.set[u][v] = struct{}{}
		sg.set[v][u] = struct{}{}
	}
	for i := range sg.adj {
		for j := range sg.nodes {
			if _, ok := sg.set[i][int64(j)]; ok {
				sg.adj[i] = append(sg.adj[i], sg.nodes[j])
			}
		}
	}
	return sg
}

func (sg *springGraph) valid(id int64) bool { return id >= 0 && id < int64(len(sg.nodes)) }

func (sg *springGraph) Node(id int64) graph.Node {
	if !sg.valid(id) {
		return nil
	}
	return sg.nodes[id]
}

func (sg *springGraph) Nodes() graph.Nodes { return iterator.NewOrderedNodes(sg.nodes) }

func (sg *springGraph) From(id int64) graph.Nodes {
	if !sg.valid(id) {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(sg.adj[id])
}

func (sg *springGraph) HasEdgeBetween(xid, yid int64) bool {
	if !sg.valid(xid) {
		return false
	}
	_, ok := sg.set[xid][yid]
	return ok
}

func (sg *springGraph) Edge(uid, vid int64) graph.Edge { return sg.EdgeBetween(uid, vid) }

func (sg *springGraph) EdgeBetween(xid, yid int64) graph.Edge {
	if !sg.HasEdgeBetween(xid, yid) {
		return nil
	}
	return simple.Edge{F: sg.nodes[xid], T: sg.nodes[yid]}
}
