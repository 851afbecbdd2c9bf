// SPDX-License-Identifier: MIT

package gexf

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/armviz/core"
	"github.com/katalvlaran/armviz/rule"
	"github.com/katalvlaran/armviz/rulegraph"
)

func network(t *testing.T) *core.Graph {
	t.Helper()
	net, err := rulegraph.Build([]rule.Rule{
		rule.MustNew([]string{"milk"}, []string{"bread"}, rule.Counts{Full: 30, Lhs: 50, Rhs: 40, Transactions: 100}),
		rule.MustNew([]string{"milk"}, []string{"eggs"}, rule.Counts{Full: 20, Lhs: 50, Rhs: 30, Transactions: 100}),
	})
	require.NoError(t, err)
	return net.Graph
}

func decode(t *testing.T, data []byte) document {
	t.Helper()
	var doc document
	require.NoError(t, xml.Unmarshal(data, &doc))
	return doc
}

// TestEncode_RuleNetwork round-trips the document structure.
func TestEncode_RuleNetwork(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, network(t),
		WithLastModified(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		WithDescription("shopping rules")))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(xml.Header)))
	doc := decode(t, buf.Bytes())

	assert.Equal(t, version, doc.Version)
	assert.Equal(t, "2024-03-01", doc.Meta.LastModified)
	assert.Equal(t, DefaultCreator, doc.Meta.Creator)
	assert.Equal(t, "directed", doc.Graph.DefaultEdgeType)

	require.Len(t, doc.Graph.Attributes, 2)
	assert.Equal(t, []attribute{
		{ID: "0", Title: "type", Type: "string"},
		{ID: "1", Title: "weight", Type: "long"},
	}, doc.Graph.Attributes[0].Attrs)

	require.Len(t, doc.Graph.Nodes, 5)
	milk := doc.Graph.Nodes[2]
	assert.Equal(t, "milk", milk.ID)
	assert.Equal(t, []attvalue{{For: "0", Value: "Entity"}, {For: "1", Value: "1"}}, milk.Values)

	rule0 := doc.Graph.Nodes[3]
	assert.Equal(t, "rule:0", rule0.ID)
	assert.Equal(t, "{milk} -> {bread}", rule0.Label)
	assert.Equal(t, []attvalue{{For: "0", Value: "Association_Rule"}, {For: "1", Value: "6"}}, rule0.Values)

	require.Len(t, doc.Graph.Edges, 4)
	e := doc.Graph.Edges[0]
	assert.Equal(t, "milk", e.Source)
	assert.Equal(t, "rule:0", e.Target)
	assert.Equal(t, "15", e.Weight)
	assert.Empty(t, e.Type)
}

// TestEncode_Stable produces identical bytes for identical graphs.
func TestEncode_Stable(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Encode(&a, network(t)))
	require.NoError(t, Encode(&b, network(t)))
	assert.Equal(t, a.String(), b.String())
	assert.NotContains(t, a.String(), "lastmodifieddate")
}

// TestEncode_Types widens mixed columns and labels unlabelled vertices by ID.
func TestEncode_Types(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", core.WithAttr("score", int64(1)), core.WithAttr("flag", true)))
	require.NoError(t, g.AddVertex("b", core.WithAttr("score", 2.5)))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, g))
	doc := decode(t, buf.Bytes())

	assert.Equal(t, "undirected", doc.Graph.DefaultEdgeType)
	assert.Equal(t, []attribute{
		{ID: "0", Title: "flag", Type: "boolean"},
		{ID: "1", Title: "score", Type: "double"},
	}, doc.Graph.Attributes[0].Attrs)
	assert.Equal(t, "a", doc.Graph.Nodes[0].Label)
	assert.Empty(t, doc.Graph.Edges)
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

// TestEncode_Errors surfaces writer failures unmodified.
func TestEncode_Errors(t *testing.T) {
	assert.ErrorIs(t, Encode(io.Discard, nil), ErrNilGraph)
	assert.ErrorIs(t, Encode(failingWriter{}, network(t)), errSink)
}

// TestWriteFile writes plain and gzip-compressed documents.
func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	g := network(t)

	plain := filepath.Join(dir, "rules.gexf")
	require.NoError(t, WriteFile(plain, g))
	data, err := os.ReadFile(plain)
	require.NoError(t, err)
	assert.Len(t, decode(t, data).Graph.Nodes, 5)

	packed := filepath.Join(dir, "rules.gexf.gz")
	require.NoError(t, WriteFile(packed, g))
	f, err := os.Open(packed)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	unpacked, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, data, unpacked)

	err = WriteFile(filepath.Join(dir, "missing", "rules.gexf"), g)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
