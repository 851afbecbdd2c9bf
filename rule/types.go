// SPDX-License-Identifier: MIT

package rule

import (
	"errors"
	"strconv"
)

// Sentinel errors for rule construction. Callers branch with errors.Is;
// context such as the offending key is attached with %w at the call site.
var (
	// ErrEmptyLhs indicates a rule without antecedent entities.
	ErrEmptyLhs = errors.New("rule: antecedent is empty")

	// ErrEmptyRhs indicates a rule without consequent entities.
	ErrEmptyRhs = errors.New("rule: consequent is empty")

	// ErrEmptyEntity indicates an empty entity identifier on either side.
	ErrEmptyEntity = errors.New("rule: entity identifier is empty")

	// ErrNegativeCount indicates a negative occurrence or transaction count.
	ErrNegativeCount = errors.New("rule: negative count")

	// ErrMissingField indicates a required field is absent from a record.
	ErrMissingField = errors.New("rule: missing field")

	// ErrFieldType indicates a record field holds a value of the wrong type.
	ErrFieldType = errors.New("rule: field has wrong type")

	// ErrShapeMismatch indicates a rule whose side lengths do not fit the
	// operation (zero antecedents, or more than one consequent where exactly
	// one is required).
	ErrShapeMismatch = errors.New("rule: shape mismatch")
)

// Conviction divisor guard.
const convictionEps = 1e-9

// decimals used by Metric.String and Rule.String.
const decimals = 3

// Counts groups the raw occurrence counts a rule is built from.
// Absent counts are zero; metrics whose divisor is zero are Unavailable.
type Counts struct {
	Full         int // transactions containing lhs ∪ rhs
	Lhs          int // transactions containing lhs
	Rhs          int // transactions containing rhs
	Transactions int // all transactions in the dataset
}

// Metric is a derived statistic that is either Available with a value or
// Unavailable. The zero Metric is Unavailable.
type Metric struct {
	value float64
	ok    bool
}

// Available wraps a computed value.
func Available(v float64) Metric { return Metric{value: v, ok: true} }

// Unavailable reports a metric whose divisor was zero or whose inputs were missing.
func Unavailable() Metric { return Metric{} }

// Value returns the metric value and whether it is available.
func (m Metric) Value() (float64, bool) { return m.value, m.ok }

// Valid reports whether the metric is available.
func (m Metric) Valid() bool { return m.ok }

// Or returns the value when available and def otherwise.
func (m Metric) Or(def float64) float64 {
	if !m.ok {
		return def
	}
	return m.value
}

// String renders the value with three decimals, or "n/a".
func (m Metric) String() string {
	if !m.ok {
		return "n/a"
	}
	return strconv.FormatFloat(m.value, 'f', decimals, 64)
}

// MarshalJSON encodes an unavailable metric as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, m.value, 'g', -1, 64), nil
}
