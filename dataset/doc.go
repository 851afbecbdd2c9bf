// SPDX-License-Identifier: MIT

// Package dataset loads association rules from files.
//
// A rule file is a list of records with the keys understood by
// rule.FromMap (lhs, rhs, count_full, count_lhs, count_rhs,
// num_transactions), written as JSON or YAML. Gzip and zstd compressed
// files are detected from their magic bytes, so the extension does not
// matter on input.
//
// Shopping returns a small bundled rule set mined from grocery baskets; it
// is what the CLI and the examples use when no input file is given.
package dataset
