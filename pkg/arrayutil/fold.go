package arrayutil

import (
	"github.com/elliotchance/orderedmap/v2"
	"golang.org/x/text/cases"
)

// ContainsFold reports whether needle matches any element of haystack under
// Unicode case folding.
func ContainsFold(needle string, haystack []string) bool {
	return IndexFold(needle, haystack) >= 0
}

// IndexFold returns the index of the first element of haystack equal to
// needle under Unicode case folding, or -1 if there is none.
func IndexFold(needle string, haystack []string) int {
	fold := cases.Fold()
	want := fold.String(needle)
	for i, s := range haystack {
		if fold.String(s) == want {
			return i
		}
	}
	return -1
}

// KeyFold returns the first key, in map order, whose value equals needle
// under Unicode case folding.
func KeyFold[K comparable](needle string, haystack *orderedmap.OrderedMap[K, string]) (K, bool) {
	var zero K
	if haystack == nil {
		return zero, false
	}
	fold := cases.Fold()
	want := fold.String(needle)
	for el := haystack.Front(); el != nil; el = el.Next() {
		if fold.String(el.Value) == want {
			return el.Key, true
		}
	}
	return zero, false
}
