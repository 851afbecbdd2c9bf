// SPDX-License-Identifier: MIT

// Package rulegraph builds the rule network: a directed, weighted core.Graph
// in which both rules and entities are vertices.
//
// For every rule i a vertex "rule:i" is added with
//
//	type   = "Association_Rule"
//	weight = round(confidence·10)
//	label  = "{a, b} -> {c}"
//
// and an edge entity→rule for each antecedent and rule→entity for each
// consequent, weighted round(lift·10). Entity vertices have type "Entity"
// and weight 1. Rules sharing an entity therefore meet at that entity's
// vertex, which exposes hubs and chains.
//
// Unavailable metrics produce weight 0. The graph is handed as-is to an
// exporter (package gexf) or to Spring and Traces for drawing; no crossing
// minimization is applied.
package rulegraph
