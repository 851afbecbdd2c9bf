// SPDX-License-Identifier: MIT

// Package crossing counts line crossings of a bucket of same-shape rules
// drawn on K parallel axes that share one entity ordering.
//
// Each rule is a polyline through K points: its antecedents on axes
// 0..K−2 and its single consequent on axis K−1. The vertical position of an
// entity is its index in the ordering, identical on every axis.
//
// Criterion (exact): two straight segments between the same pair of parallel
// vertical lines cross iff the relative vertical order of their endpoints
// flips between the lines. For rules r, s and adjacent axes (i, i+1):
//
//	d_i   = pos(r_i)   − pos(s_i)
//	d_i+1 = pos(r_i+1) − pos(s_i+1)
//	cross ⇔ d_i · d_i+1 < 0
//
// Shared endpoints (d = 0) are not crossings. The total is summed over all
// K−1 adjacent axis pairs and all unordered rule pairs: O(K·R²).
//
// Evaluator is the objective function used by the axis optimizer: it maps
// entities to dense ids once, so each evaluation only fills an id→position
// array and never scans a list.
package crossing
