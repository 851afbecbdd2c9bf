// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/katalvlaran/armviz/layout"
	"github.com/katalvlaran/armviz/rulegraph"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 500
)

// ErrNoData indicates there is nothing to draw.
var ErrNoData = errors.New("render: no data to plot")

// Option customizes a plot.
type Option func(*config)

type config struct {
	width, height int
	title         string
}

// WithSize sets the canvas size. Panics on non-positive dimensions.
func WithSize(width, height int) Option {
	if width < 1 || height < 1 {
		panic("render: WithSize requires positive dimensions")
	}
	return func(c *config) { c.width, c.height = width, height }
}

// WithTitle overrides the plot title.
func WithTitle(s string) Option {
	return func(c *config) { c.title = s }
}

func newConfig(title string, opts ...Option) config {
	cfg := config{width: DefaultWidth, height: DefaultHeight, title: title}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) write(w io.Writer, p *gg.Plot) error {
	p.Add(gg.Title(c.title))
	if err := p.WriteSVG(w, c.width, c.height); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// ParallelCoordinates draws one path per rule across the diagram's axes.
// Rules are colored by confidence; rules without a confidence are drawn
// uncolored. Missing axis values are skipped.
//
// Positional diagrams plot entity indices on a linear y scale; categorical
// diagrams plot entity labels on an ordinal y scale.
//
// Errors: ErrNoData for a diagram without values, or go-gg write errors.
func ParallelCoordinates(w io.Writer, d layout.Diagram, opts ...Option) error {
	cfg := newConfig(fmt.Sprintf("%d-axis association rules", d.AxisCount), opts...)

	var colored, plain pathRows
	for ri := range d.Rules {
		dst := &plain
		conf, ok := d.Colors[ri].Value()
		if ok {
			dst = &colored
		}
		for ai, ax := range d.Axes {
			v := ax.Values[ri]
			if v.Missing {
				continue
			}
			dst.add(float64(ai), v, d.Mode, d.Rules[ri], conf)
		}
	}
	if colored.len() == 0 && plain.len() == 0 {
		return ErrNoData
	}

	var p *gg.Plot
	if colored.len() > 0 {
		p = gg.NewPlot(colored.table(true))
		p.GroupBy("rule")
		p.Add(gg.LayerPaths{X: "axis", Y: "entity", Color: "confidence"})
	}
	if plain.len() > 0 {
		if p == nil {
			p = gg.NewPlot(plain.table(false))
		} else {
			p.SetData(plain.table(false))
		}
		p.GroupBy("rule")
		p.Add(gg.LayerPaths{X: "axis", Y: "entity"})
	}
	p.Add(gg.AxisLabel("x", "axis"), gg.AxisLabel("y", "entity"))

	return cfg.write(w, p)
}

type pathRows struct {
	axis    []float64
	index   []float64
	label   []string
	rules   []string
	conf    []float64
	ordinal bool
}

func (r *pathRows) add(axis float64, v layout.Value, mode layout.Mode, ruleLabel string, conf float64) {
	r.axis = append(r.axis, axis)
	r.index = append(r.index, float64(v.Index))
	r.label = append(r.label, v.Label)
	r.rules = append(r.rules, ruleLabel)
	r.conf = append(r.conf, conf)
	r.ordinal = mode == layout.Categorical
}

func (r *pathRows) len() int { return len(r.axis) }

func (r *pathRows) table(withColor bool) *table.Table {
	b := new(table.Builder).Add("axis", r.axis)
	if r.ordinal {
		b.Add("entity", r.label)
	} else {
		b.Add("entity", r.index)
	}
	b.Add("rule", r.rules)
	if withColor {
		b.Add("confidence", r.conf)
	}
	return b.Done()
}

// Scatter draws the strength distribution: support on x, confidence on y,
// colored by lift. Points with any unavailable metric are skipped.
func Scatter(w io.Writer, s layout.MetadataSeries, opts ...Option) error {
	cfg := newConfig("Association Rules Strength Distribution", opts...)

	var supp, conf, lift []float64
	var text []string
	for i := 0; i < s.Len(); i++ {
		x, okx := s.Support[i].Value()
		y, oky := s.Confidence[i].Value()
		c, okc := s.Lift[i].Value()
		if !okx || !oky || !okc {
			continue
		}
		supp, conf, lift = append(supp, x), append(conf, y), append(lift, c)
		text = append(text, s.Text[i])
	}
	if len(supp) == 0 {
		return ErrNoData
	}

	p := gg.NewPlot(new(table.Builder).
		Add("support", supp).
		Add("confidence", conf).
		Add("lift", lift).
		Add("text", text).
		Done())
	p.Add(gg.LayerPoints{X: "support", Y: "confidence", Color: "lift"})
	p.Add(gg.LayerTooltips{X: "support", Y: "confidence", Label: "text"})
	p.Add(gg.AxisLabel("x", "Support"), gg.AxisLabel("y", "Confidence"))

	return cfg.write(w, p)
}

// Adjacency draws the consequent × antecedent grid with confidence-sized
// markers. Points without a size are skipped.
func Adjacency(w io.Writer, s layout.AdjacencySeries, opts ...Option) error {
	cfg := newConfig("Association rules", opts...)

	var xs, ys []string
	var size []float64
	for i := 0; i < s.Len(); i++ {
		v, ok := s.Size[i].Value()
		if !ok {
			continue
		}
		xs, ys, size = append(xs, s.X[i]), append(ys, s.Y[i]), append(size, v)
	}
	if len(xs) == 0 {
		return ErrNoData
	}

	p := gg.NewPlot(new(table.Builder).
		Add("consequent", xs).
		Add("antecedent", ys).
		Add("strength", size).
		Done())
	p.Add(gg.LayerPoints{X: "consequent", Y: "antecedent", Size: "strength"})

	return cfg.write(w, p)
}

// Network draws edges as segments and vertices as points colored by their
// number of connections and, when the trace carries weights, sized by weight.
func Network(w io.Writer, nodes rulegraph.NodeTrace, edges rulegraph.EdgeTrace, opts ...Option) error {
	cfg := newConfig("Rule network", opts...)
	if len(nodes.IDs) == 0 {
		return ErrNoData
	}

	conn := make([]float64, len(nodes.Connections))
	for i, c := range nodes.Connections {
		conn[i] = float64(c)
	}
	nb := new(table.Builder).
		Add("x", nodes.X).
		Add("y", nodes.Y).
		Add("connections", conn).
		Add("text", nodes.Text)
	sized := len(nodes.Weight) == len(nodes.IDs)
	if sized {
		weight := make([]float64, len(nodes.Weight))
		for i, w := range nodes.Weight {
			weight[i] = float64(w)
		}
		nb.Add("weight", weight)
	}
	nodeTab := nb.Done()

	var p *gg.Plot
	if len(edges.Segments) > 0 {
		var ex, ey []float64
		var id []string
		for i, s := range edges.Segments {
			key := fmt.Sprintf("%d:%s>%s", i, s.From, s.To)
			ex, ey, id = append(ex, s.X0, s.X1), append(ey, s.Y0, s.Y1), append(id, key, key)
		}
		p = gg.NewPlot(new(table.Builder).Add("x", ex).Add("y", ey).Add("edge", id).Done())
		p.GroupBy("edge")
		p.Add(gg.LayerPaths{X: "x", Y: "y"})
		p.SetData(nodeTab)
	} else {
		p = gg.NewPlot(nodeTab)
	}
	points := gg.LayerPoints{X: "x", Y: "y", Color: "connections"}
	if sized {
		points.Size = "weight"
	}
	p.Add(points)
	p.Add(gg.LayerTooltips{X: "x", Y: "y", Label: "text"})

	return cfg.write(w, p)
}
