// SPDX-License-Identifier: MIT

// Package render draws layouts, scatter series and rule networks as SVG
// using go-gg.
//
// Every function takes the data structures produced by packages layout and
// rulegraph, builds a go-gg table and writes the plot to an io.Writer.
// Values that are unavailable (rule.Metric without a value) are left out of
// colored or sized layers rather than drawn as zero.
package render
