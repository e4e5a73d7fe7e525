// Package document decodes JSON and YAML input into order-preserving values
// and renders results back as JSON, YAML or an aligned table.
//
// Mappings decode to *orderedmap.OrderedMap[string, any], sequences to []any
// and scalars to their natural Go types (string, int, float64, bool, nil).
package document

import (
	"errors"
	"fmt"
	"io"

	"github.com/elliotchance/orderedmap/v2"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned by Decode when the input holds no document.
var ErrEmptyDocument = errors.New("empty document")

// ErrExcessiveAliasing is returned when alias expansion makes up too much of
// a decoded document.
var ErrExcessiveAliasing = errors.New("document contains excessive aliasing")

const (
	aliasRatioRangeLow  = 400_000
	aliasRatioRangeHigh = 4_000_000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

// allowedAliasRatio is the share of decoded nodes that may come from alias
// expansion: 99% for small documents, scaling down to 10% for very large ones.
func allowedAliasRatio(decodeCount int) float64 {
	switch {
	case decodeCount <= aliasRatioRangeLow:
		return 0.99
	case decodeCount >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(decodeCount-aliasRatioRangeLow)/aliasRatioRange)
	}
}

// Decode reads a single JSON or YAML document from r.
func Decode(r io.Reader) (any, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	d := &decoder{active: make(map[*yaml.Node]bool)}
	return d.value(&root)
}

type decoder struct {
	// anchors currently being expanded, to reject self-referencing aliases
	active map[*yaml.Node]bool

	decodeCount int
	aliasCount  int
	aliasDepth  int
}

func (d *decoder) value(n *yaml.Node) (any, error) {
	d.decodeCount++
	if d.aliasDepth > 0 {
		d.aliasCount++
	}
	if d.aliasCount > 100 && d.decodeCount > 1000 &&
		float64(d.aliasCount)/float64(d.decodeCount) > allowedAliasRatio(d.decodeCount) {
		return nil, ErrExcessiveAliasing
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0])
	case yaml.MappingNode:
		m := orderedmap.NewOrderedMap[string, any]()
		if err := d.mapping(m, n); err != nil {
			return nil, err
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.value(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.AliasNode:
		if d.active[n.Alias] {
			return nil, fmt.Errorf("line %d: alias %q refers to itself", n.Line, n.Value)
		}
		d.active[n.Alias] = true
		d.aliasDepth++
		defer func() {
			delete(d.active, n.Alias)
			d.aliasDepth--
		}()
		return d.value(n.Alias)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

func (d *decoder) mapping(m *orderedmap.OrderedMap[string, any], n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if isMergeKey(k) {
			if err := d.merge(m, v); err != nil {
				return err
			}
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}
		val, err := d.value(v)
		if err != nil {
			return err
		}
		m.Set(k.Value, val)
	}
	return nil
}

// merge applies a "<<" merge key. Keys already present win.
func (d *decoder) merge(m *orderedmap.OrderedMap[string, any], n *yaml.Node) error {
	var sources []*yaml.Node
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	} else {
		sources = []*yaml.Node{n}
	}
	for _, src := range sources {
		v, err := d.value(src)
		if err != nil {
			return err
		}
		sm, ok := v.(*orderedmap.OrderedMap[string, any])
		if !ok {
			return fmt.Errorf("line %d: merge value must be a mapping", src.Line)
		}
		for el := sm.Front(); el != nil; el = el.Next() {
			if _, exists := m.Get(el.Key); !exists {
				m.Set(el.Key, el.Value)
			}
		}
	}
	return nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.Value == "<<" && k.ShortTag() == "!!merge"
}
