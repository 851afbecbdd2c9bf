// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/armviz/bucket"
	"github.com/katalvlaran/armviz/config"
	"github.com/katalvlaran/armviz/dataset"
	"github.com/katalvlaran/armviz/gexf"
	"github.com/katalvlaran/armviz/layout"
	"github.com/katalvlaran/armviz/metric"
	"github.com/katalvlaran/armviz/optimize"
	"github.com/katalvlaran/armviz/render"
	"github.com/katalvlaran/armviz/rule"
	"github.com/katalvlaran/armviz/rulegraph"
)

const defaultGEXF = "rules.gexf"

// session is the state shared by every subcommand: the resolved config,
// the logger, the metrics registry and the loaded rules.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *metric.Metrics
	registry *prometheus.Registry
	rules    []rule.Rule
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	reg := prometheus.NewRegistry()
	m := metric.NewMetrics()
	if err := m.Register(reg); err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	var rules []rule.Rule
	if cfg.Input == "" {
		rules = dataset.Shopping()
		logger.Debug("using bundled shopping rules", "rules", len(rules))
	} else {
		var err error
		if rules, err = dataset.LoadFile(cfg.Input, dataset.WithLogger(logger)); err != nil {
			return nil, err
		}
		logger.Info("loaded rules", "path", cfg.Input, "rules", len(rules))
	}
	if unique := rule.Dedupe(rules); len(unique) < len(rules) {
		logger.Info("dropped duplicate rules", "duplicates", len(rules)-len(unique))
		rules = unique
	}

	return &session{cfg: cfg, logger: logger, metrics: m, registry: reg, rules: rules}, nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("input") {
		cfg.Input = inputPath
	}
	if fs.Changed("seed") {
		cfg.Optimizer.Seed = seedFlag
	}
	if fs.Changed("workers") {
		cfg.Optimizer.Workers = workersFlag
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if fs.Changed("out") {
		cfg.Output.Dir = outDir
	}
	if fs.Changed("mode") {
		cfg.Layout.Mode = modeFlag
	}
}

func (s *session) bucketize() bucket.Result {
	return bucket.Bucketize(s.rules, s.cfg.BucketOptions(s.logger, s.metrics)...)
}

// optimized buckets the rules and optimizes every non-empty bucket; the two
// returned slices are aligned.
func (s *session) optimized() ([]bucket.Bucket, []optimize.Result, error) {
	res := s.bucketize()
	results, err := optimize.OptimizeAll(res, s.cfg.OptimizeOptions(s.logger, s.metrics)...)
	if err != nil {
		return nil, nil, err
	}
	return res.NonEmpty(), results, nil
}

func (s *session) outPath(name string) (string, error) {
	if err := os.MkdirAll(s.cfg.Output.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	return filepath.Join(s.cfg.Output.Dir, name), nil
}

// finish prints the gathered metrics when --metrics is set.
func (s *session) finish(w io.Writer) error {
	if !dumpMetrics {
		return nil
	}
	families, err := s.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func runBuckets(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	res := s.bucketize()

	sum := rule.Summarize(s.rules)
	fmt.Fprintf(out, "rules: %d, dropped: %d\n", sum.Rules, len(res.Dropped))
	for _, d := range []struct {
		name string
		dist rule.Distribution
	}{
		{"confidence", sum.Confidence},
		{"support", sum.Support},
		{"lift", sum.Lift},
		{"conviction", sum.Conviction},
	} {
		fmt.Fprintf(out, "  %-10s n=%d missing=%d min=%.3f median=%.3f max=%.3f\n",
			d.name, d.dist.Count, d.dist.Missing, d.dist.Min, d.dist.Median, d.dist.Max)
	}

	for _, b := range res.NonEmpty() {
		fmt.Fprintf(out, "K=%d: %d rules, %d entities\n", b.AxisCount, len(b.Rules), len(b.Entities))
		for _, r := range b.Rules {
			fmt.Fprintf(out, "  %s\n", r)
		}
	}
	for _, d := range res.Dropped {
		fmt.Fprintf(out, "dropped #%d (%s): %s\n", d.Index, d.Reason, d.Rule.Label())
	}
	return s.finish(out)
}

type valueJSON struct {
	Index   int    `json:"index"`
	Label   string `json:"label,omitempty"`
	Missing bool   `json:"missing,omitempty"`
}

type axisJSON struct {
	Label    string      `json:"label"`
	TickText []string    `json:"tick_text,omitempty"`
	Values   []valueJSON `json:"values"`
	Missing  int         `json:"missing"`
}

type diagramJSON struct {
	AxisCount      int           `json:"axis_count"`
	Mode           string        `json:"mode"`
	Order          []string      `json:"order"`
	Crossings      int           `json:"crossings"`
	InputCrossings int           `json:"input_crossings"`
	Evaluated      int           `json:"evaluated"`
	Exhaustive     bool          `json:"exhaustive"`
	Rules          []string      `json:"rules"`
	Colors         []rule.Metric `json:"colors"`
	Axes           []axisJSON    `json:"axes"`
}

func toJSON(d layout.Diagram, r optimize.Result) diagramJSON {
	out := diagramJSON{
		AxisCount:      d.AxisCount,
		Mode:           d.Mode.String(),
		Order:          r.Order,
		Crossings:      r.Crossings,
		InputCrossings: r.InputCrossings,
		Evaluated:      r.Evaluated,
		Exhaustive:     r.Exhaustive,
		Rules:          d.Rules,
		Colors:         d.Colors,
		Axes:           make([]axisJSON, len(d.Axes)),
	}
	for i, a := range d.Axes {
		vs := make([]valueJSON, len(a.Values))
		for j, v := range a.Values {
			vs[j] = valueJSON{Index: v.Index, Label: v.Label, Missing: v.Missing}
		}
		out.Axes[i] = axisJSON{Label: a.Label, TickText: a.TickText, Values: vs, Missing: a.Missing}
	}
	return out
}

// diagrams optimizes every bucket and lays it out.
func (s *session) diagrams() ([]layout.Diagram, []optimize.Result, error) {
	buckets, results, err := s.optimized()
	if err != nil {
		return nil, nil, err
	}
	out := make([]layout.Diagram, len(buckets))
	for i, b := range buckets {
		d, err := layout.BuildDiagram(b, results[i].Order, s.cfg.Mode(), layout.WithLogger(s.logger))
		if err != nil {
			return nil, nil, fmt.Errorf("laying out %d-axis bucket: %w", b.AxisCount, err)
		}
		out[i] = d
	}
	return out, results, nil
}

func runLayout(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	diagrams, results, err := s.diagrams()
	if err != nil {
		return err
	}

	docs := make([]diagramJSON, len(diagrams))
	for i, d := range diagrams {
		docs[i] = toJSON(d, results[i])
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	return s.finish(cmd.OutOrStdout())
}

func runGraph(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	net, err := rulegraph.Build(s.rules, rulegraph.WithLogger(s.logger), rulegraph.WithMetrics(s.metrics))
	if err != nil {
		return err
	}

	name := gexfPath
	if name == "" {
		name = s.cfg.Output.GEXF
	}
	if name == "" {
		name = defaultGEXF
	}
	path, err := s.outPath(name)
	if err != nil {
		return err
	}
	if err := gexf.WriteFile(path, net.Graph, gexf.WithCreator("armviz "+Version)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d nodes, %d edges)\n",
		path, net.Graph.VertexCount(), net.Graph.EdgeCount())
	return s.finish(cmd.OutOrStdout())
}

func runPlot(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	size := render.WithSize(s.cfg.Output.Width, s.cfg.Output.Height)
	out := cmd.OutOrStdout()

	write := func(name string, draw func(io.Writer) error) error {
		path, err := s.outPath(name)
		if err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := draw(f); err != nil {
			f.Close()
			return fmt.Errorf("drawing %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
		fmt.Fprintf(out, "wrote %s\n", path)
		return nil
	}

	diagrams, _, err := s.diagrams()
	if err != nil {
		return err
	}
	for _, d := range diagrams {
		if err := write(fmt.Sprintf("parallel_%d.svg", d.AxisCount), func(w io.Writer) error {
			return render.ParallelCoordinates(w, d, size)
		}); err != nil {
			return err
		}
	}

	if err := write("scatter.svg", func(w io.Writer) error {
		return render.Scatter(w, layout.MetadataScatter(s.rules, s.cfg.Compound), size)
	}); err != nil {
		return err
	}
	if err := write("adjacency.svg", func(w io.Writer) error {
		return render.Adjacency(w, layout.AdjacencyScatter(s.rules), size)
	}); err != nil {
		return err
	}

	net, err := rulegraph.Build(s.rules, rulegraph.WithLogger(s.logger), rulegraph.WithMetrics(s.metrics))
	if err != nil {
		return err
	}
	nodes, edges := net.Traces(rulegraph.Spring(net.Graph, rulegraph.WithSpringSeed(s.cfg.Optimizer.Seed)))
	if err := write("network.svg", func(w io.Writer) error {
		return render.Network(w, nodes, edges, size)
	}); err != nil {
		return err
	}
	return s.finish(out)
}
