// SPDX-License-Identifier: MIT

// Command armviz buckets association rules, optimizes their axis orderings
// and writes parallel-coordinate, scatter and network artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the current armviz CLI version
var Version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:     "armviz",
	Short:   "armviz - association rule visualization",
	Long:    `armviz loads mined association rules, groups them by antecedent length, picks crossing-minimizing entity orderings and renders the resulting diagrams.`,
	Version: Version,
	// Errors are printed once by main.
	SilenceUsage:  true,
	SilenceErrors: true,
}

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Group rules by axis count and report dropped rules",
	Args:  cobra.NoArgs,
	RunE:  runBuckets,
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Optimize each bucket's entity ordering and print the axes as JSON",
	Args:  cobra.NoArgs,
	RunE:  runLayout,
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build the rule/entity network and export it as GEXF",
	Args:  cobra.NoArgs,
	RunE:  runGraph,
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render parallel-coordinate, scatter, adjacency and network SVGs",
	Args:  cobra.NoArgs,
	RunE:  runPlot,
}

var (
	configPath  string
	inputPath   string
	seedFlag    int64
	workersFlag int
	logLevel    string
	outDir      string
	modeFlag    string
	dumpMetrics bool
	gexfPath    string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML run description (defaults apply when empty)")
	pf.StringVarP(&inputPath, "input", "i", "", "rule file (.json, .yaml, optionally .gz/.zst); bundled shopping rules when empty")
	pf.Int64Var(&seedFlag, "seed", 0, "optimizer seed (0 selects the default seed)")
	pf.IntVar(&workersFlag, "workers", 0, "optimizer scoring goroutines")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVarP(&outDir, "out", "o", "", "output directory")
	pf.StringVar(&modeFlag, "mode", "", "axis layout mode: positional or categorical")
	pf.BoolVar(&dumpMetrics, "metrics", false, "print collected metrics in Prometheus text format on exit")

	graphCmd.Flags().StringVar(&gexfPath, "gexf", "", "GEXF file name (.gz compresses); relative to --out")

	rootCmd.AddCommand(bucketsCmd, layoutCmd, graphCmd, plotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
