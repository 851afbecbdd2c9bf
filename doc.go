// SPDX-License-Identifier: MIT

// Package armviz is the root of an association rule visualization toolkit:
// it scores mined rules, groups them into same-shape buckets, picks the entity
// ordering with the fewest line crossings and lays the result out for
// parallel-coordinate, scatter and network views.
//
// What is in the box?
//
//	• Rule metrics: confidence, support, lift, conviction, RPF
//	• Bucketing by antecedent length, with drop diagnostics
//	• Crossing counter and a seeded, parallel axis optimizer
//	• Positional and categorical axis layouts
//	• Rule/entity network with spring layout and GEXF export
//	• SVG rendering and a command line front end
//
// Packages:
//
//	rule/      — Rule, Counts, Metric and the record adapters
//	bucket/    — Bucketize: rules grouped by axis count
//	crossing/  — pairwise line crossing objective
//	optimize/  — crossing-minimizing entity ordering
//	layout/    — axis descriptors and scatter series
//	core/      — thread-safe Graph, Vertex, Edge primitives
//	rulegraph/ — rule/entity network, spring layout, traces
//	gexf/      — Gephi exchange format writer
//	dataset/   — rule files (JSON/YAML, gzip/zstd) and bundled samples
//	config/    — YAML run description
//	render/    — SVG plots
//	metric/    — Prometheus collectors
//	cmd/armviz — CLI
//
// A two-axis diagram of {a}→{d} and {b}→{c} with entity order [a b c d]
// draws one crossing; the optimizer returns an order with none.
//
//	go install github.com/katalvlaran/armviz/cmd/armviz@latest
package armviz
