package grid

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// entry pairs a row with its index in the original dataset so that row
// identity survives sorting and pagination.
type entry[T any] struct {
	row   T
	index int
}

func indexed[T any](rows []T) []entry[T] {
	entries := make([]entry[T], len(rows))
	for i, row := range rows {
		entries[i] = entry[T]{row: row, index: i}
	}
	return entries
}

// DefaultCollator returns the collator used for text comparison when the
// caller does not supply one.
func DefaultCollator() *collate.Collator {
	return collate.New(language.English)
}

// SortEntries orders entries by the column's value under the supplied
// direction. The sort is stable and operates on its own copy; SortNone
// (or a column without an accessor) passes the input order through.
func SortEntries[T any](entries []entry[T], column Column[T], direction SortDirection, collator *collate.Collator) []entry[T] {
	out := make([]entry[T], len(entries))
	copy(out, entries)

	if direction == SortNone || column.Value == nil {
		return out
	}
	if collator == nil {
		collator = DefaultCollator()
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := CompareValues(column.Value(out[i].row), column.Value(out[j].row), collator)
		if direction == SortDescending {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

// CompareValues orders two cell values for an ascending sort:
// nulls sort low, two strings compare with locale-aware collation, two
// numbers compare numerically, and anything else falls back to the
// collation of their textual representations.
func CompareValues(a, b any, collator *collate.Collator) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return collator.CompareString(as, bs)
		}
	}

	return collator.CompareString(fmt.Sprint(a), fmt.Sprint(b))
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
