package arrayutil

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/jrsinclair/arrutil/internal/types"
)

// Strings converts a sequence of scalars to strings.
func Strings(input any) ([]string, error) {
	switch in := input.(type) {
	case []string:
		return slices.Clone(in), nil
	case []any:
		out := make([]string, 0, len(in))
		for i, e := range in {
			s, ok := types.ToString(e)
			if !ok {
				return nil, &ElementError{Index: i, Value: e, Err: ErrNotScalar}
			}
			out = append(out, s)
		}
		return out, nil
	}

	rv := reflect.ValueOf(input)
	if k := rv.Kind(); (k != reflect.Slice && k != reflect.Array) || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, fmt.Errorf("%w: got %T", ErrNotSequence, input)
	}
	out := make([]string, 0, rv.Len())
	for i := range rv.Len() {
		e := rv.Index(i).Interface()
		s, ok := types.ToString(e)
		if !ok {
			return nil, &ElementError{Index: i, Value: e, Err: ErrNotScalar}
		}
		out = append(out, s)
	}
	return out, nil
}

// Mapping returns input as an ordered map. Ordered maps with other value
// types are copied in their own order; plain maps with string keys are
// copied in ascending key order.
func Mapping(input any) (*orderedmap.OrderedMap[string, any], error) {
	switch in := input.(type) {
	case *orderedmap.OrderedMap[string, any]:
		if in != nil {
			return in, nil
		}
	case Record:
		return orderedFromMap(in), nil
	default:
		rv := reflect.ValueOf(input)
		if kind, ok := orderedKeyKind(rv); ok && kind == reflect.String && !rv.IsNil() {
			entries, _ := orderedEntries(rv)
			m := orderedmap.NewOrderedMap[string, any]()
			for _, e := range entries {
				m.Set(e.key, e.value)
			}
			return m, nil
		}
		if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
			m := make(Record, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				m[iter.Key().String()] = iter.Value().Interface()
			}
			return orderedFromMap(m), nil
		}
	}
	return nil, fmt.Errorf("%w: got %T", ErrNotMapping, input)
}

// SearchFoldAny finds needle in a loosely typed haystack under Unicode case
// folding. For a mapping it returns the first matching key; for a sequence
// it returns the int index.
//
// Mapping values that are not scalars are skipped and never match. Sequence
// elements go through Strings, so a non-scalar element is an error: an
// *ElementError wrapping ErrNotScalar.
func SearchFoldAny(needle string, haystack any) (any, bool, error) {
	if m, err := Mapping(haystack); err == nil {
		values := orderedmap.NewOrderedMap[string, string]()
		for el := m.Front(); el != nil; el = el.Next() {
			if s, ok := types.ToString(el.Value); ok {
				values.Set(el.Key, s)
			}
		}
		key, ok := KeyFold(needle, values)
		return key, ok, nil
	}

	items, err := Strings(haystack)
	if err != nil {
		return nil, false, err
	}
	if i := IndexFold(needle, items); i >= 0 {
		return i, true, nil
	}
	return nil, false, nil
}

// ContainsFoldAny is ContainsFold for loosely typed input.
func ContainsFoldAny(needle string, haystack any) (bool, error) {
	_, ok, err := SearchFoldAny(needle, haystack)
	return ok, err
}

func orderedFromMap(m Record) *orderedmap.OrderedMap[string, any] {
	out := orderedmap.NewOrderedMap[string, any]()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out.Set(k, m[k])
	}
	return out
}
