package arrayutil

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/jrsinclair/arrutil/internal/types"
)

// Record is a single row of structured data keyed by field name.
type Record = map[string]any

// Pluck returns the value of key from every record that has it, in order.
// Records without the key are skipped. The result is never nil.
func Pluck[V any](key string, records []map[string]V) []V {
	out := make([]V, 0, len(records))
	for _, r := range records {
		if v, ok := r[key]; ok {
			out = append(out, v)
		}
	}
	return out
}

// PluckAny is Pluck for loosely typed input.
//
// key must be a scalar; compound keys yield an empty result. input must be a
// sequence of records (Record or ordered map); anything else yields an empty
// result, and sequence elements that are not records are skipped.
func PluckAny(key any, input any) []any {
	out := []any{}
	k, ok := types.ToKey(key)
	if !ok {
		return out
	}

	switch in := input.(type) {
	case []Record:
		for _, r := range in {
			if v, ok := r[k]; ok {
				out = append(out, v)
			}
		}
	case []*orderedmap.OrderedMap[string, any]:
		for _, r := range in {
			if v, ok := lookup(r, k); ok {
				out = append(out, v)
			}
		}
	case []any:
		for _, r := range in {
			if v, ok := lookup(r, k); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

func lookup(record any, key string) (any, bool) {
	switch r := record.(type) {
	case Record:
		v, ok := r[key]
		return v, ok
	case *orderedmap.OrderedMap[string, any]:
		if r == nil {
			return nil, false
		}
		return r.Get(key)
	}
	return nil, false
}
