package arrayutil

import (
	"testing"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/stretchr/testify/assert"
)

func TestPluck(t *testing.T) {
	records := []map[string]int{
		{"id": 1, "age": 30},
		{"id": 2},
		{"age": 41},
		{"id": 4, "age": 0},
	}

	tests := []struct {
		name     string
		key      string
		expected []int
	}{
		{name: "field present in some records", key: "age", expected: []int{30, 41, 0}},
		{name: "field present in most records", key: "id", expected: []int{1, 2, 4}},
		{name: "field absent everywhere", key: "missing", expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Pluck(tt.key, records)
			assert.Equal(t, tt.expected, result)
			assert.LessOrEqual(t, len(result), len(records))
		})
	}
}

func TestPluck_EmptyInput(t *testing.T) {
	result := Pluck[any]("id", nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestPluck_NilValueIsKept(t *testing.T) {
	records := []Record{{"name": nil}, {"other": 1}}
	assert.Equal(t, []any{nil}, Pluck("name", records))
}

func TestPluckAny(t *testing.T) {
	tests := []struct {
		name     string
		key      any
		input    any
		expected []any
	}{
		{
			name:     "mixed record kinds",
			key:      "name",
			input:    []any{Record{"name": "a"}, om("name", "b"), Record{"id": 3}},
			expected: []any{"a", "b"},
		},
		{
			name:     "records slice",
			key:      "name",
			input:    []Record{{"name": "x"}, {"name": "y"}},
			expected: []any{"x", "y"},
		},
		{
			name:     "ordered map slice",
			key:      "n",
			input:    []*orderedmap.OrderedMap[string, any]{om("n", 1), nil, om("m", 2)},
			expected: []any{1},
		},
		{
			name:     "integer key",
			key:      0,
			input:    []any{Record{"0": "zero"}},
			expected: []any{"zero"},
		},
		{
			name:     "non-record elements are skipped",
			key:      "name",
			input:    []any{"scalar", 42, nil, Record{"name": "kept"}},
			expected: []any{"kept"},
		},
		{
			name:     "compound key",
			key:      []string{"name"},
			input:    []any{Record{"name": "a"}},
			expected: []any{},
		},
		{
			name:     "map key",
			key:      map[string]any{"name": true},
			input:    []any{Record{"name": "a"}},
			expected: []any{},
		},
		{
			name:     "scalar input",
			key:      "name",
			input:    "not-a-sequence",
			expected: []any{},
		},
		{
			name:     "mapping input is not a sequence",
			key:      "name",
			input:    om("row", Record{"name": "a"}),
			expected: []any{},
		},
		{
			name:     "nil input",
			key:      "name",
			input:    nil,
			expected: []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PluckAny(tt.key, tt.input))
		})
	}
}

func TestPluckAny_LengthMatchesRecordsWithField(t *testing.T) {
	input := []any{
		Record{"k": 1},
		Record{"j": 2},
		om("k", 3),
		om(),
		Record{"k": nil},
	}

	withField := 0
	for _, r := range input {
		if _, ok := lookup(r, "k"); ok {
			withField++
		}
	}

	result := PluckAny("k", input)
	assert.Len(t, result, withField)
	assert.Equal(t, 3, withField)
}
