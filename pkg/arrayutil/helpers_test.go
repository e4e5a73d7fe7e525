package arrayutil

import (
	"github.com/elliotchance/orderedmap/v2"
)

// om builds an ordered map from alternating key/value arguments.
func om(kv ...any) *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

func keysOf[V any](m *orderedmap.OrderedMap[string, V]) []string {
	keys := []string{}
	for el := m.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

func valuesOf[V any](m *orderedmap.OrderedMap[string, V]) []V {
	values := []V{}
	for el := m.Front(); el != nil; el = el.Next() {
		values = append(values, el.Value)
	}
	return values
}
