// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/armviz/rule"
)

//go:embed shopping_rules.json
var shoppingRules []byte

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ErrInvalidRecord wraps per-record failures; the wrapped error tells which
// field was wrong.
var ErrInvalidRecord = errors.New("dataset: invalid rule record")

// Option customizes Load.
type Option func(*config)

type config struct {
	skipInvalid bool
	logger      *slog.Logger
}

// WithSkipInvalid logs and skips invalid records instead of failing.
func WithSkipInvalid(skip bool) Option {
	return func(c *config) { c.skipInvalid = skip }
}

// WithLogger sets the logger (nil means slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Load decodes a rule file from r.
//
// Implementation:
//   - Stage 1: sniff the first bytes; wrap r in a gzip or zstd reader when
//     the magic matches.
//   - Stage 2: decode a YAML (or JSON) sequence of mappings.
//   - Stage 3: convert each record with rule.FromMap.
//
// An empty document yields no rules and no error.
//
// Errors: decompression and syntax errors (wrapped), ErrInvalidRecord
// (wrapping the rule error) unless WithSkipInvalid is set.
func Load(r io.Reader, opts ...Option) ([]rule.Rule, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))
	var src io.Reader = br
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("dataset: gzip: %w", err)
		}
		defer zr.Close()
		src = zr
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("dataset: zstd: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	var records []map[string]any
	if err := yaml.NewDecoder(src).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}

	rules := make([]rule.Rule, 0, len(records))
	for i, rec := range records {
		rl, err := rule.FromMap(rec)
		if err != nil {
			if cfg.skipInvalid {
				cfg.logger.Warn("skipping invalid rule record", "record", i, "error", err)
				continue
			}
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidRecord, i, err)
		}
		rules = append(rules, rl)
	}

	cfg.logger.Debug("loaded rules", "records", len(records), "rules", len(rules))
	return rules, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) ([]rule.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	rules, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Shopping returns the bundled grocery rule set.
func Shopping() []rule.Rule {
	rules, err := Load(bytes.NewReader(shoppingRules))
	if err != nil {
		panic(err) // bundled data is fixed
	}
	return rules
}

// Write encodes rules as a YAML sequence of records readable by Load.
func Write(w io.Writer, rules []rule.Rule) error {
	records := make([]record, len(rules))
	for i, r := range rules {
		c := r.Counts()
		records[i] = record{
			Lhs: r.Lhs(), Rhs: r.Rhs(),
			CountFull: c.Full, CountLhs: c.Lhs, CountRhs: c.Rhs, NumTransactions: c.Transactions,
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("dataset: encode: %w", err)
	}
	return enc.Close()
}

// WriteFile writes rules to path, compressed by extension (".gz" or ".zst").
func WriteFile(path string, rules []rule.Rule) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dataset: %w", cerr)
		}
	}()

	var wc io.WriteCloser
	switch {
	case strings.HasSuffix(path, ".gz"):
		wc = gzip.NewWriter(f)
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("dataset: zstd: %w", err)
		}
		wc = zw
	default:
		return Write(f, rules)
	}

	if err := Write(wc, rules); err != nil {
		// The write error takes precedence over the close error.
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	return nil
}

type record struct {
	Lhs             []string `yaml:"lhs,flow"`
	Rhs             []string `yaml:"rhs,flow"`
	CountFull       int      `yaml:"count_full"`
	CountLhs        int      `yaml:"count_lhs"`
	CountRhs        int      `yaml:"count_rhs"`
	NumTransactions int      `yaml:"num_transactions"`
}
