package arrayutil

import (
	"cmp"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"
)

// Flatten collapses a nested structure of mappings and sequences into a single
// level, keeping each leaf under its innermost key.
//
// The walk is depth-first and pre-order. When the same key appears at several
// paths, the last leaf visited wins, but the key keeps the position where it
// was first seen. Sequence elements are keyed by their decimal index, so
// leaves of different sequences collide on "0", "1", ... exactly like keys of
// different mappings do.
//
// Ordered maps and sequences are walked in their own order; plain Go maps are
// walked in ascending key order. Empty nested collections contribute nothing.
func Flatten(v any) (*orderedmap.OrderedMap[string, any], error) {
	children, ok := entries(v)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotCollection, v)
	}
	out := orderedmap.NewOrderedMap[string, any]()
	flattenInto(out, children)
	return out, nil
}

func flattenInto(out *orderedmap.OrderedMap[string, any], children []entry) {
	for _, c := range children {
		if nested, ok := entries(c.value); ok {
			flattenInto(out, nested)
			continue
		}
		out.Set(c.key, c.value)
	}
}

type entry struct {
	key   string
	value any
}

// entries lists the children of a collection. The second return value is
// false when v is a leaf.
func entries(v any) ([]entry, bool) {
	switch c := v.(type) {
	case nil, []byte, string:
		return nil, false
	case *orderedmap.OrderedMap[string, any]:
		if c == nil {
			return nil, true
		}
		out := make([]entry, 0, c.Len())
		for el := c.Front(); el != nil; el = el.Next() {
			out = append(out, entry{key: el.Key, value: el.Value})
		}
		return out, true
	case Record:
		out := make([]entry, 0, len(c))
		for _, k := range slices.Sorted(maps.Keys(c)) {
			out = append(out, entry{key: k, value: c[k]})
		}
		return out, true
	case []any:
		out := make([]entry, len(c))
		for i, e := range c {
			out[i] = entry{key: strconv.Itoa(i), value: e}
		}
		return out, true
	}
	return reflectEntries(reflect.ValueOf(v))
}

func reflectEntries(rv reflect.Value) ([]entry, bool) {
	if out, ok := orderedEntries(rv); ok {
		return out, true
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]entry, rv.Len())
		for i := range out {
			out[i] = entry{key: strconv.Itoa(i), value: rv.Index(i).Interface()}
		}
		return out, true
	case reflect.Map:
		keys := rv.MapKeys()
		for _, k := range keys {
			if !sortableKey(k.Kind()) {
				return nil, false
			}
		}
		slices.SortFunc(keys, compareKeys)
		out := make([]entry, 0, len(keys))
		for _, k := range keys {
			out = append(out, entry{key: keyString(k), value: rv.MapIndex(k).Interface()})
		}
		return out, true
	}
	return nil, false
}

var orderedMapPkg = reflect.TypeFor[orderedmap.OrderedMap[string, any]]().PkgPath()

// orderedKeyKind reports the key kind of an *orderedmap.OrderedMap[K, V] of
// any instantiation. The second return value is false for every other value.
func orderedKeyKind(rv reflect.Value) (reflect.Kind, bool) {
	if rv.Kind() != reflect.Pointer || rv.Type().Elem().PkgPath() != orderedMapPkg {
		return reflect.Invalid, false
	}
	keysFn := rv.MethodByName("Keys")
	if !keysFn.IsValid() || !rv.MethodByName("Get").IsValid() {
		return reflect.Invalid, false
	}
	return keysFn.Type().Out(0).Elem().Kind(), true
}

// orderedEntries lists an ordered map of any instantiation in insertion
// order. It reports false for every other value, and for ordered maps whose
// keys cannot be written as strings.
func orderedEntries(rv reflect.Value) ([]entry, bool) {
	kind, ok := orderedKeyKind(rv)
	if !ok || !sortableKey(kind) {
		return nil, false
	}
	if rv.IsNil() {
		return nil, true
	}

	keys := rv.MethodByName("Keys").Call(nil)[0]
	get := rv.MethodByName("Get")
	out := make([]entry, 0, keys.Len())
	for i := range keys.Len() {
		k := keys.Index(i)
		v := get.Call([]reflect.Value{k})[0]
		out = append(out, entry{key: keyString(k), value: v.Interface()})
	}
	return out, true
}

func sortableKey(k reflect.Kind) bool {
	switch k {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func keyString(k reflect.Value) string {
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10)
	default:
		return strconv.FormatInt(k.Int(), 10)
	}
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp.Compare(a.Uint(), b.Uint())
	default:
		return cmp.Compare(a.Int(), b.Int())
	}
}
