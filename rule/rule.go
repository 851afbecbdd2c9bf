// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"
)

// keySep separates entities inside Key; it cannot appear in a printable identifier.
const keySep = "\x1f"

// Rule is one mined association lhs → rhs together with its raw counts.
// A Rule is a value object: it is never mutated after construction, and all
// accessors return copies.
type Rule struct {
	lhs    []string
	rhs    []string
	counts Counts
}

// New builds a Rule from both sides and the raw counts.
//
// Contracts:
//   - lhs and rhs are non-empty and contain no empty identifier.
//   - all counts are non-negative.
//
// The slices are copied; later changes by the caller do not affect the Rule.
//
// Errors: ErrEmptyLhs, ErrEmptyRhs, ErrEmptyEntity, ErrNegativeCount.
// Complexity: O(|lhs|+|rhs|).
func New(lhs, rhs []string, c Counts) (Rule, error) {
	if len(lhs) == 0 {
		return Rule{}, ErrEmptyLhs
	}
	if len(rhs) == 0 {
		return Rule{}, ErrEmptyRhs
	}
	if slices.Contains(lhs, "") || slices.Contains(rhs, "") {
		return Rule{}, ErrEmptyEntity
	}
	if c.Full < 0 || c.Lhs < 0 || c.Rhs < 0 || c.Transactions < 0 {
		return Rule{}, fmt.Errorf("%w: %+v", ErrNegativeCount, c)
	}

	return Rule{lhs: slices.Clone(lhs), rhs: slices.Clone(rhs), counts: c}, nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures.
func MustNew(lhs, rhs []string, c Counts) Rule {
	r, err := New(lhs, rhs, c)
	if err != nil {
		panic(err)
	}
	return r
}

// Lhs returns a copy of the antecedent.
func (r Rule) Lhs() []string { return slices.Clone(r.lhs) }

// Rhs returns a copy of the consequent.
func (r Rule) Rhs() []string { return slices.Clone(r.rhs) }

// LhsLen is the number of antecedent entities.
func (r Rule) LhsLen() int { return len(r.lhs) }

// RhsLen is the number of consequent entities.
func (r Rule) RhsLen() int { return len(r.rhs) }

// LhsAt returns the i-th antecedent entity and whether it exists.
func (r Rule) LhsAt(i int) (string, bool) {
	if i < 0 || i >= len(r.lhs) {
		return "", false
	}
	return r.lhs[i], true
}

// RhsAt returns the i-th consequent entity and whether it exists.
func (r Rule) RhsAt(i int) (string, bool) {
	if i < 0 || i >= len(r.rhs) {
		return "", false
	}
	return r.rhs[i], true
}

// Counts returns the raw counts.
func (r Rule) Counts() Counts { return r.counts }

// Len is the number of items in the rule, len(lhs)+len(rhs).
func (r Rule) Len() int { return len(r.lhs) + len(r.rhs) }

// IsCompound reports whether either side holds more than one entity.
func (r Rule) IsCompound() bool { return len(r.lhs) > 1 || len(r.rhs) > 1 }

// Entities returns the antecedent followed by the consequent.
func (r Rule) Entities() []string {
	out := make([]string, 0, r.Len())
	out = append(out, r.lhs...)
	return append(out, r.rhs...)
}

// Canonical returns a copy of r with the antecedent sorted lexicographically.
// The consequent order is kept. Counts are unchanged, so r.Equal(Canonical()).
func (r Rule) Canonical() Rule {
	lhs := slices.Clone(r.lhs)
	slices.Sort(lhs)
	return Rule{lhs: lhs, rhs: slices.Clone(r.rhs), counts: r.counts}
}

// Equal reports whether both rules have the same antecedent set and the
// same consequent set. Element order and duplicates are ignored.
func (r Rule) Equal(o Rule) bool {
	return sameSet(r.lhs, o.lhs) && sameSet(r.rhs, o.rhs)
}

// Key is the sorted, de-duplicated union of both sides joined by an
// unprintable separator. Equal rules share a Key; the converse does not hold
// ({a}→{b} and {b}→{a} collide), so Key is a hash input, not an identity.
func (r Rule) Key() string {
	return strings.Join(uniqueSorted(r.Entities()), keySep)
}

// Hash is the FNV-1a digest of Key.
func (r Rule) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(r.Key()))
	return h.Sum64()
}

// Label renders the rule as "{a, b} -> {c}".
func (r Rule) Label() string {
	return braces(r.lhs) + " -> " + braces(r.rhs)
}

// String renders the label followed by the main metrics, e.g.
// "{a, b} -> {c} (conf: 0.500, supp: 0.250, lift: 0.667, conv: 0.500)".
func (r Rule) String() string {
	return fmt.Sprintf("%s (conf: %s, supp: %s, lift: %s, conv: %s)",
		r.Label(), r.Confidence(), r.Support(), r.Lift(), r.Conviction())
}

// Dedupe returns rules with later duplicates (per Equal) removed.
// First occurrences keep their relative order.
// Complexity: O(R·b) where b is the largest hash bucket.
func Dedupe(rules []Rule) []Rule {
	seen := make(map[uint64][]int, len(rules))
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		h := r.Hash()
		dup := false
		for _, idx := range seen[h] {
			if out[idx].Equal(r) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[h] = append(seen[h], len(out))
		out = append(out, r)
	}
	return out
}

func braces(s []string) string {
	return "{" + strings.Join(s, ", ") + "}"
}

func uniqueSorted(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return slices.Compact(out)
}

func sameSet(a, b []string) bool {
	return slices.Equal(uniqueSorted(a), uniqueSorted(b))
}
