package hh

import (
	"fmt"
	"math"

	"github.com/custodia-labs/tavern/internal/core/domain"
)

// Salary collapses a raw salary value into a single amount.
// raw is the decoded JSON value of the "salary" field.
func Salary(raw any) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case map[string]any:
		return salaryRange(v)
	default:
		return 0, fmt.Errorf("%w: salary of type %T", domain.ErrMalformedRecord, raw)
	}
}

func salaryRange(m map[string]any) (float64, error) {
	from, hasFrom, err := bound(m, "from")
	if err != nil {
		return 0, err
	}
	to, hasTo, err := bound(m, "to")
	if err != nil {
		return 0, err
	}

	switch {
	case hasFrom && hasTo:
		return round2((from + to) / 2), nil
	case hasFrom:
		return round2(from), nil
	case hasTo:
		return round2(to), nil
	default:
		return 0, nil
	}
}

// bound reads an optional numeric bound; null counts as absent.
func bound(m map[string]any, key string) (float64, bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false, fmt.Errorf("%w: salary.%s of type %T", domain.ErrMalformedRecord, key, v)
	}
	return f, true, nil
}

// round2 rounds to two decimals, exact halves to even.
func round2(f float64) float64 {
	return math.RoundToEven(f*100) / 100
}
