// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"
	"math"
	"strconv"
)

// Record keys understood by FromMap.
const (
	KeyLhs             = "lhs"
	KeyRhs             = "rhs"
	KeyCountFull       = "count_full"
	KeyCountLhs        = "count_lhs"
	KeyCountRhs        = "count_rhs"
	KeyNumTransactions = "num_transactions"
)

// Source is the shape a compatible external rule representation exposes,
// e.g. the record type of a rule-mining library.
type Source interface {
	Antecedent() []string
	Consequent() []string
	CountFull() int
	CountLhs() int
	CountRhs() int
	NumTransactions() int
}

// FromSource copies an external rule into a Rule.
//
// Errors: ErrMissingField for a nil source, otherwise those of New.
func FromSource(src Source) (Rule, error) {
	if src == nil {
		return Rule{}, fmt.Errorf("%w: nil source", ErrMissingField)
	}
	return New(src.Antecedent(), src.Consequent(), Counts{
		Full:         src.CountFull(),
		Lhs:          src.CountLhs(),
		Rhs:          src.CountRhs(),
		Transactions: src.NumTransactions(),
	})
}

// FromMap copies a plain key-value record into a Rule. All six keys
// (lhs, rhs, count_full, count_lhs, count_rhs, num_transactions) are required.
//
// Accepted value shapes, matching what JSON and YAML decoders produce:
//   - lhs/rhs: []string, []any of scalars, or a single scalar.
//   - counts:  any Go integer type, or a float64 holding an integral value.
//
// Errors: ErrMissingField, ErrFieldType (wrapped with the key name), and those of New.
func FromMap(record map[string]any) (Rule, error) {
	lhs, err := entitiesField(record, KeyLhs)
	if err != nil {
		return Rule{}, err
	}
	rhs, err := entitiesField(record, KeyRhs)
	if err != nil {
		return Rule{}, err
	}

	var c Counts
	for _, f := range []struct {
		key string
		dst *int
	}{
		{KeyCountFull, &c.Full},
		{KeyCountLhs, &c.Lhs},
		{KeyCountRhs, &c.Rhs},
		{KeyNumTransactions, &c.Transactions},
	} {
		if *f.dst, err = countField(record, f.key); err != nil {
			return Rule{}, err
		}
	}

	return New(lhs, rhs, c)
}

func entitiesField(record map[string]any, key string) ([]string, error) {
	raw, ok := record[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := scalarString(item)
			if !ok {
				return nil, fmt.Errorf("%w: %q[%d] is %T", ErrFieldType, key, i, item)
			}
			out[i] = s
		}
		return out, nil
	default:
		s, ok := scalarString(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q is %T", ErrFieldType, key, raw)
		}
		return []string{s}, nil
	}
}

func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		return "", false
	}
}

func countField(record map[string]any, key string) (int, error) {
	raw, ok := record[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q is not integral (%v)", ErrFieldType, key, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %q is %T", ErrFieldType, key, raw)
	}
}
