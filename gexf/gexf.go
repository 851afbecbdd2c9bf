// SPDX-License-Identifier: MIT

package gexf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/armviz/core"
)

const (
	namespace = "http://www.gexf.net/1.2draft"
	version   = "1.2"

	// DefaultCreator is written to <meta><creator>.
	DefaultCreator = "armviz"

	edgeWeightTitle = "weight"
)

// ErrNilGraph indicates Encode was called without a graph.
var ErrNilGraph = errors.New("gexf: nil graph")

type document struct {
	XMLName xml.Name `xml:"gexf"`
	XMLNS   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Meta    meta     `xml:"meta"`
	Graph   graph    `xml:"graph"`
}

type meta struct {
	LastModified string `xml:"lastmodifieddate,attr,omitempty"`
	Creator      string `xml:"creator"`
	Description  string `xml:"description,omitempty"`
}

type graph struct {
	DefaultEdgeType string       `xml:"defaultedgetype,attr"`
	Mode            string       `xml:"mode,attr"`
	Attributes      []attributes `xml:"attributes"`
	Nodes           []node       `xml:"nodes>node"`
	Edges           []edge       `xml:"edges>edge"`
}

type attributes struct {
	Class string      `xml:"class,attr"`
	Mode  string      `xml:"mode,attr"`
	Attrs []attribute `xml:"attribute"`
}

type attribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type attvalue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type node struct {
	ID     string     `xml:"id,attr"`
	Label  string     `xml:"label,attr"`
	Values []attvalue `xml:"attvalues>attvalue,omitempty"`
}

type edge struct {
	ID     string     `xml:"id,attr"`
	Source string     `xml:"source,attr"`
	Target string     `xml:"target,attr"`
	Type   string     `xml:"type,attr,omitempty"`
	Weight string     `xml:"weight,attr"`
	Values []attvalue `xml:"attvalues>attvalue"`
}

// Option customizes Encode.
type Option func(*config)

type config struct {
	creator      string
	description  string
	lastModified time.Time
	labelKey     string
}

// WithCreator overrides DefaultCreator.
func WithCreator(s string) Option { return func(c *config) { c.creator = s } }

// WithDescription sets <meta><description>.
func WithDescription(s string) Option { return func(c *config) { c.description = s } }

// WithLastModified stamps the document date. Without it the date is omitted.
func WithLastModified(t time.Time) Option { return func(c *config) { c.lastModified = t } }

// WithLabelKey names the Metadata key used as node label (default "label").
// Vertices without it are labelled with their ID.
func WithLabelKey(k string) Option { return func(c *config) { c.labelKey = k } }

// Encode writes g to w as an indented GEXF document.
//
// Implementation:
//   - Stage 1: collect node attribute columns from every vertex's Metadata.
//   - Stage 2: emit nodes (sorted IDs) and edges (insertion order).
//   - Stage 3: marshal with an XML header.
//
// Errors: ErrNilGraph; write errors from w are returned as-is.
// Complexity: O((V+E)·A) for A attribute columns.
func Encode(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := config{creator: DefaultCreator, labelKey: "label"}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := document{
		XMLNS:   namespace,
		Version: version,
		Meta:    meta{Creator: cfg.creator, Description: cfg.description},
		Graph:   graph{DefaultEdgeType: edgeType(g.Directed()), Mode: "static"},
	}
	if !cfg.lastModified.IsZero() {
		doc.Meta.LastModified = cfg.lastModified.Format(time.DateOnly)
	}

	ids := g.Vertices()
	vertices := make([]core.Vertex, len(ids))
	columns := map[string]string{}
	for i, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		vertices[i] = v
		for k, val := range v.Metadata {
			if k == cfg.labelKey {
				continue
			}
			columns[k] = mergeType(columns[k], typeOf(val))
		}
	}
	titles := make([]string, 0, len(columns))
	for k := range columns {
		titles = append(titles, k)
	}
	slices.Sort(titles)

	nodeAttrs := attributes{Class: "node", Mode: "static"}
	colID := make(map[string]string, len(titles))
	for i, k := range titles {
		colID[k] = strconv.Itoa(i)
		nodeAttrs.Attrs = append(nodeAttrs.Attrs, attribute{ID: colID[k], Title: k, Type: columns[k]})
	}
	edgeAttrs := attributes{Class: "edge", Mode: "static",
		Attrs: []attribute{{ID: "0", Title: edgeWeightTitle, Type: "long"}}}
	doc.Graph.Attributes = []attributes{nodeAttrs, edgeAttrs}

	for _, v := range vertices {
		n := node{ID: v.ID, Label: v.ID}
		if l, ok := v.Metadata[cfg.labelKey]; ok {
			n.Label = fmt.Sprint(l)
		}
		for _, k := range titles {
			if val, ok := v.Metadata[k]; ok {
				n.Values = append(n.Values, attvalue{For: colID[k], Value: fmt.Sprint(val)})
			}
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, n)
	}

	for _, e := range g.Edges() {
		x := edge{
			ID:     e.ID,
			Source: e.From,
			Target: e.To,
			Weight: strconv.FormatInt(e.Weight, 10),
			Values: []attvalue{{For: "0", Value: strconv.FormatInt(e.Weight, 10)}},
		}
		if e.Directed != g.Directed() {
			x.Type = edgeType(e.Directed)
		}
		doc.Graph.Edges = append(doc.Graph.Edges, x)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile encodes g into path, gzip-compressed when path ends in ".gz".
// Errors from creating, writing or closing the file are returned wrapped
// with the path.
func WriteFile(path string, g *core.Graph, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gexf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("gexf: %w", cerr)
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		if err := Encode(f, g, opts...); err != nil {
			return fmt.Errorf("gexf: write %s: %w", path, err)
		}
		return nil
	}

	zw := gzip.NewWriter(f)
	if err := Encode(zw, g, opts...); err != nil {
		return fmt.Errorf("gexf: write %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("gexf: write %s: %w", path, err)
	}
	return nil
}

func edgeType(directed bool) string {
	if directed {
		return "directed"
	}
	return "undirected"
}

func typeOf(v any) string {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "long"
	case float32, float64:
		return "double"
	case bool:
		return "boolean"
	default:
		return "string"
	}
}

// mergeType widens a column when vertices disagree on the value type.
func mergeType(have, next string) string {
	switch {
	case have == "" || have == next:
		return next
	case (have == "long" && next == "double") || (have == "double" && next == "long"):
		return "double"
	default:
		return "string"
	}
}
