// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/armviz/bucket"
	"github.com/katalvlaran/armviz/dataset"
	"github.com/katalvlaran/armviz/rule"
)

var quiet = dataset.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

// TestShopping loads the bundled rule set.
func TestShopping(t *testing.T) {
	rules := dataset.Shopping()
	require.Len(t, rules, 14)

	first := rules[0]
	assert.Equal(t, "{milk} -> {bread}", first.Label())
	assert.Equal(t, rule.Counts{Full: 50, Lhs: 90, Rhs: 80, Transactions: 200}, first.Counts())

	res := bucket.Bucketize(rules)
	require.Len(t, res.Dropped, 1, "the multi-consequent rule is dropped")
	assert.Len(t, res.NonEmpty(), 3)
}

// TestLoad_YAML accepts block-style YAML with scalar sides.
func TestLoad_YAML(t *testing.T) {
	src := `
- lhs: [a, b]
  rhs: c
  count_full: 50
  count_lhs: 100
  count_rhs: 150
  num_transactions: 200
- lhs: 7
  rhs: [x]
  count_full: 1
  count_lhs: 2
  count_rhs: 3
  num_transactions: 4
`
	rules, err := dataset.Load(strings.NewReader(src), quiet)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "{a, b} -> {c} (conf: 0.500, supp: 0.250, lift: 0.667, conv: 0.500)", rules[0].String())
	assert.Equal(t, []string{"7"}, rules[1].Lhs())
}

// TestLoad_Invalid reports the failing record or skips it on request.
func TestLoad_Invalid(t *testing.T) {
	src := `[{"lhs": ["a"], "rhs": ["b"], "count_full": 1, "count_lhs": 1, "count_rhs": 1, "num_transactions": 1},
	         {"lhs": ["a"], "count_full": 1, "count_lhs": 1, "count_rhs": 1, "num_transactions": 1}]`

	_, err := dataset.Load(strings.NewReader(src), quiet)
	assert.ErrorIs(t, err, dataset.ErrInvalidRecord)
	assert.ErrorIs(t, err, rule.ErrMissingField)
	assert.Contains(t, err.Error(), "rhs")

	rules, err := dataset.Load(strings.NewReader(src), quiet, dataset.WithSkipInvalid(true))
	require.NoError(t, err)
	assert.Len(t, rules, 1)

	_, err = dataset.Load(strings.NewReader("{not: [closed"), quiet)
	assert.Error(t, err)
}

// TestLoad_Empty returns no rules for an empty document.
func TestLoad_Empty(t *testing.T) {
	rules, err := dataset.Load(strings.NewReader(""), quiet)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

// TestWriteFile_RoundTrip covers plain, gzip and zstd files.
func TestWriteFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := dataset.Shopping()

	for _, name := range []string{"rules.yaml", "rules.yaml.gz", "rules.yaml.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, dataset.WriteFile(path, want))

			got, err := dataset.LoadFile(path, quiet)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := dataset.LoadFile(filepath.Join(dir, "absent.json"), quiet)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_ZstdStream detects compression from content, not the file name.
func TestLoad_ZstdStream(t *testing.T) {
	var plain bytes.Buffer
	require.NoError(t, dataset.Write(&plain, dataset.Shopping()[:2]))

	var packed bytes.Buffer
	zw, err := zstd.NewWriter(&packed)
	require.NoError(t, err)
	_, err = zw.Write(plain.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	rules, err := dataset.Load(&packed, quiet)
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}
