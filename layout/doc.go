// SPDX-License-Identifier: MIT

// Package layout turns a bucket and an entity ordering into the arrays a
// plotting backend needs.
//
// Build produces one Axis per layout axis. Axes 0..K−2 carry the rules'
// antecedents by position and the last axis carries the consequent. Two
// modes are supported:
//
//   - Positional (parallel coordinates): each value is the entity's index in
//     the supplied ordering; the axis carries Range, TickVals and TickText.
//   - Categorical (parallel categories): each value is the raw entity label
//     and no tick metadata is emitted.
//
// A rule without an antecedent at some axis produces a Missing value and is
// counted on the axis. Bucketize never creates such buckets, so a non-zero
// count points at a hand-built or relaxed bucket.
//
// The package also builds the scatter series used for rule distribution
// plots: MetadataScatter (support against confidence, colored by lift) and
// AdjacencyScatter (consequent label against antecedent label, sized by
// confidence).
package layout
