package arrayutil

import (
	"maps"
	"slices"

	"github.com/elliotchance/orderedmap/v2"
)

// Prefix returns a new slice with prefix prepended to every element.
func Prefix(prefix string, items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, prefix+s)
	}
	return out
}

// PrefixAny is Prefix for loosely typed input. Scalar elements are converted
// to strings first. It returns ErrNotSequence when input is not a sequence.
func PrefixAny(prefix string, input any) ([]string, error) {
	items, err := Strings(input)
	if err != nil {
		return nil, err
	}
	return Prefix(prefix, items), nil
}

// PrefixKeys returns a copy of m with prefix prepended to every key.
// Values and key order are unchanged.
func PrefixKeys[V any](prefix string, m *orderedmap.OrderedMap[string, V]) *orderedmap.OrderedMap[string, V] {
	out := orderedmap.NewOrderedMap[string, V]()
	if m == nil {
		return out
	}

	keys := make([]string, 0, m.Len())
	values := make([]V, 0, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
		values = append(values, el.Value)
	}
	for i, k := range Prefix(prefix, keys) {
		out.Set(k, values[i])
	}
	return out
}

// PrefixRecordKeys is PrefixKeys for a plain map.
func PrefixRecordKeys[V any](prefix string, m map[string]V) map[string]V {
	keys := slices.Sorted(maps.Keys(m))
	out := make(map[string]V, len(m))
	for i, k := range Prefix(prefix, keys) {
		out[k] = m[keys[i]]
	}
	return out
}

// PrefixKeysAny is PrefixKeys for loosely typed input. It returns
// ErrNotMapping when input is not a mapping.
func PrefixKeysAny(prefix string, input any) (*orderedmap.OrderedMap[string, any], error) {
	m, err := Mapping(input)
	if err != nil {
		return nil, err
	}
	return PrefixKeys(prefix, m), nil
}
