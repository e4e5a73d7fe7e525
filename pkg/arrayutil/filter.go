package arrayutil

import (
	"github.com/elliotchance/orderedmap/v2"
)

// FilterByKeys returns the pairs of data whose key is listed in keys, in the
// order of data. Keys absent from data are ignored.
func FilterByKeys[V any](data *orderedmap.OrderedMap[string, V], keys []string) *orderedmap.OrderedMap[string, V] {
	out := orderedmap.NewOrderedMap[string, V]()
	if data == nil {
		return out
	}
	keep := keySet(keys)
	for el := data.Front(); el != nil; el = el.Next() {
		if _, ok := keep[el.Key]; ok {
			out.Set(el.Key, el.Value)
		}
	}
	return out
}

// FilterRecord is FilterByKeys for a plain map.
func FilterRecord[V any](data map[string]V, keys []string) map[string]V {
	out := make(map[string]V, len(keys))
	for _, k := range keys {
		if v, ok := data[k]; ok {
			out[k] = v
		}
	}
	return out
}

// FilterByKeysAny is FilterByKeys for loosely typed input. It returns
// ErrNotMapping when data is not a mapping.
func FilterByKeysAny(data any, keys []string) (*orderedmap.OrderedMap[string, any], error) {
	m, err := Mapping(data)
	if err != nil {
		return nil, err
	}
	return FilterByKeys(m, keys), nil
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
