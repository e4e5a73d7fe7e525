package arrayutil

import (
	"testing"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name     string
		needle   string
		haystack []string
		expected bool
	}{
		{name: "upper needle", needle: "ABC", haystack: []string{"abc", "def"}, expected: true},
		{name: "no match", needle: "xyz", haystack: []string{"abc", "def"}, expected: false},
		{name: "mixed case haystack", needle: "def", haystack: []string{"abc", "DeF"}, expected: true},
		{name: "accented letters", needle: "ÉCOLE", haystack: []string{"école"}, expected: true},
		{name: "final sigma", needle: "ΣΑΣ", haystack: []string{"σας"}, expected: true},
		{name: "empty needle matches empty element", needle: "", haystack: []string{"a", ""}, expected: true},
		{name: "empty haystack", needle: "a", haystack: nil, expected: false},
		{name: "substring is not a match", needle: "ab", haystack: []string{"abc"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsFold(tt.needle, tt.haystack))
		})
	}
}

func TestIndexFold(t *testing.T) {
	tests := []struct {
		name     string
		needle   string
		haystack []string
		expected int
	}{
		{name: "second element", needle: "ABC", haystack: []string{"def", "abc"}, expected: 1},
		{name: "first element", needle: "Def", haystack: []string{"def", "abc"}, expected: 0},
		{name: "first of duplicates", needle: "x", haystack: []string{"a", "X", "x"}, expected: 1},
		{name: "not found", needle: "zzz", haystack: []string{"def", "abc"}, expected: -1},
		{name: "empty haystack", needle: "a", haystack: []string{}, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IndexFold(tt.needle, tt.haystack))
		})
	}
}

func TestKeyFold(t *testing.T) {
	haystack := orderedmap.NewOrderedMap[string, string]()
	haystack.Set("first", "Alpha")
	haystack.Set("second", "beta")
	haystack.Set("third", "BETA")

	t.Run("match returns first key in order", func(t *testing.T) {
		key, ok := KeyFold("Beta", haystack)
		assert.True(t, ok)
		assert.Equal(t, "second", key)
	})

	t.Run("no match", func(t *testing.T) {
		key, ok := KeyFold("gamma", haystack)
		assert.False(t, ok)
		assert.Equal(t, "", key)
	})

	t.Run("integer keys", func(t *testing.T) {
		byID := orderedmap.NewOrderedMap[int, string]()
		byID.Set(7, "Seven")
		key, ok := KeyFold("SEVEN", byID)
		assert.True(t, ok)
		assert.Equal(t, 7, key)
	})

	t.Run("nil haystack", func(t *testing.T) {
		_, ok := KeyFold[string]("a", nil)
		assert.False(t, ok)
	})
}
