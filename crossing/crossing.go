// SPDX-License-Identifier: MIT

package crossing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/armviz/bucket"
	"github.com/katalvlaran/armviz/rule"
)

var (
	// ErrUnknownEntity indicates a rule references an entity missing from the ordering.
	ErrUnknownEntity = errors.New("crossing: entity not in ordering")

	// ErrDuplicateEntity indicates an ordering lists the same entity twice.
	ErrDuplicateEntity = errors.New("crossing: duplicate entity in ordering")

	// ErrNotPermutation indicates an ordering is not a permutation of the bucket's entities.
	ErrNotPermutation = errors.New("crossing: ordering is not a permutation of the entity set")
)

// Evaluator counts crossings of one bucket under many orderings.
// It is immutable after construction and safe for concurrent use.
type Evaluator struct {
	axisCount int
	entities  []string       // id → entity
	index     map[string]int // entity → id
	axes      [][]int        // per rule: entity id on each axis
}

// NewEvaluator indexes b for repeated counting.
//
// Contracts:
//   - every rule has exactly b.AxisCount−1 antecedents and one consequent.
//   - b.Entities holds every entity the rules reference, without duplicates.
//
// Errors: rule.ErrShapeMismatch, ErrDuplicateEntity, ErrUnknownEntity.
// Complexity: O(N + K·R).
func NewEvaluator(b bucket.Bucket) (*Evaluator, error) {
	ev := &Evaluator{
		axisCount: b.AxisCount,
		entities:  append([]string(nil), b.Entities...),
		index:     make(map[string]int, len(b.Entities)),
		axes:      make([][]int, len(b.Rules)),
	}
	for id, e := range b.Entities {
		if _, dup := ev.index[e]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntity, e)
		}
		ev.index[e] = id
	}

	for ri, r := range b.Rules {
		if r.LhsLen() != b.AxisCount-1 || r.RhsLen() != 1 {
			return nil, fmt.Errorf("%w: rule %d %s in bucket with %d axes",
				rule.ErrShapeMismatch, ri, r.Label(), b.AxisCount)
		}
		row := make([]int, b.AxisCount)
		for i, e := range r.Entities() {
			id, ok := ev.index[e]
			if !ok {
				return nil, fmt.Errorf("%w: %q (rule %d)", ErrUnknownEntity, e, ri)
			}
			row[i] = id
		}
		ev.axes[ri] = row
	}

	return ev, nil
}

// AxisCount is the number of axes K.
func (ev *Evaluator) AxisCount() int { return ev.axisCount }

// Entities returns the entity for each id, in bucket order.
func (ev *Evaluator) Entities() []string { return append([]string(nil), ev.entities...) }

// Len is the number of entities N.
func (ev *Evaluator) Len() int { return len(ev.entities) }

// Rules is the number of rules R.
func (ev *Evaluator) Rules() int { return len(ev.axes) }

// Positions converts an entity ordering into the id→position array that
// CountPositions consumes.
//
// Errors: ErrNotPermutation, ErrUnknownEntity, ErrDuplicateEntity.
func (ev *Evaluator) Positions(order []string) ([]int, error) {
	if len(order) != len(ev.entities) {
		return nil, fmt.Errorf("%w: %d entities, ordering has %d", ErrNotPermutation, len(ev.entities), len(order))
	}
	pos := make([]int, len(ev.entities))
	for i := range pos {
		pos[i] = -1
	}
	for p, e := range order {
		id, ok := ev.index[e]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, e)
		}
		if pos[id] >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntity, e)
		}
		pos[id] = p
	}
	return pos, nil
}

// Count returns the total crossings under order.
//
// Errors: those of Positions.
func (ev *Evaluator) Count(order []string) (int, error) {
	pos, err := ev.Positions(order)
	if err != nil {
		return 0, err
	}
	return ev.CountPositions(pos), nil
}

// CountPermutation counts crossings for perm, where perm[p] is the id of the
// entity drawn at position p. perm must be a permutation of 0..N−1; this is
// the optimizer's hot path and is not re-validated.
func (ev *Evaluator) CountPermutation(perm []int) int {
	pos := make([]int, len(perm))
	for p, id := range perm {
		pos[id] = p
	}
	return ev.CountPositions(pos)
}

// CountPositions counts crossings where pos[id] is the vertical position of
// entity id.
//
// Complexity: O(K·R²) time, O(1) extra space.
func (ev *Evaluator) CountPositions(pos []int) int {
	var (
		total int
		n     = len(ev.axes)
		k     = ev.axisCount
	)
	for a := 0; a < n; a++ {
		ra := ev.axes[a]
		for b := a + 1; b < n; b++ {
			rb := ev.axes[b]
			prev := pos[ra[0]] - pos[rb[0]]
			for i := 1; i < k; i++ {
				d := pos[ra[i]] - pos[rb[i]]
				if (prev < 0 && d > 0) || (prev > 0 && d < 0) {
					total++
				}
				prev = d
			}
		}
	}
	return total
}

// Count is a one-shot convenience over NewEvaluator and Evaluator.Count.
func Count(b bucket.Bucket, order []string) (int, error) {
	ev, err := NewEvaluator(b)
	if err != nil {
		return 0, err
	}
	return ev.Count(order)
}
