package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Encode.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// ErrUnknownFormat is returned by Encode for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Encode writes v to w in the named format.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON, "":
		return EncodeJSON(w, v)
	case FormatYAML:
		return EncodeYAML(w, v)
	case FormatTable:
		return EncodeTable(w, v)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// EncodeJSON writes v as indented JSON. Ordered maps keep their key order;
// plain maps are written in ascending key order.
func EncodeJSON(w io.Writer, v any) error {
	var compact bytes.Buffer
	if err := writeJSON(&compact, v); err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("failed to indent JSON: %w", err)
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case *orderedmap.OrderedMap[string, any]:
		if x == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		for el := x.Front(); el != nil; el = el.Next() {
			if el != x.Front() {
				buf.WriteByte(',')
			}
			if err := writeMember(buf, el.Key, el.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case map[string]any:
		buf.WriteByte('{')
		for i, k := range slices.Sorted(maps.Keys(x)) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeMember(buf, k, x[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return writeScalar(buf, x)
	}
	return nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	if err := writeScalar(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return writeJSON(buf, value)
}

func writeScalar(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %T: %w", v, err)
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

// EncodeYAML writes v as a YAML document with two-space indentation.
func EncodeYAML(w io.Writer, v any) error {
	node, err := toNode(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func toNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case *orderedmap.OrderedMap[string, any]:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if x == nil {
			return n, nil
		}
		for el := x.Front(); el != nil; el = el.Next() {
			if err := appendPair(n, el.Key, el.Value); err != nil {
				return nil, err
			}
		}
		return n, nil
	case map[string]any:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if err := appendPair(n, k, x[k]); err != nil {
				return nil, err
			}
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range x {
			c, err := toNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	return n, nil
}

func appendPair(n *yaml.Node, key string, value any) error {
	vn, err := toNode(value)
	if err != nil {
		return err
	}
	kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	n.Content = append(n.Content, kn, vn)
	return nil
}

// EncodeTable writes a mapping or sequence as two aligned columns: key (or
// index) and value. Strings are written raw; every other value is written as
// compact JSON. A scalar is written as a single line.
func EncodeTable(w io.Writer, v any) error {
	rows, err := tableRows(v)
	if err != nil {
		return err
	}

	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}

	var out bytes.Buffer
	for _, r := range rows {
		if width == 0 {
			out.WriteString(r[1])
		} else {
			out.WriteString(runewidth.FillRight(r[0], width))
			out.WriteString("  ")
			out.WriteString(r[1])
		}
		out.WriteByte('\n')
	}
	_, err = w.Write(out.Bytes())
	return err
}

func tableRows(v any) ([][2]string, error) {
	var rows [][2]string
	add := func(key string, value any) error {
		cell, err := tableCell(value)
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{key, cell})
		return nil
	}

	switch x := v.(type) {
	case *orderedmap.OrderedMap[string, any]:
		if x == nil {
			return nil, nil
		}
		for el := x.Front(); el != nil; el = el.Next() {
			if err := add(el.Key, el.Value); err != nil {
				return nil, err
			}
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if err := add(k, x[k]); err != nil {
				return nil, err
			}
		}
	case []any:
		for i, e := range x {
			if err := add(strconv.Itoa(i), e); err != nil {
				return nil, err
			}
		}
	case []string:
		for i, e := range x {
			rows = append(rows, [2]string{strconv.Itoa(i), e})
		}
	default:
		if err := add("", x); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func tableCell(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
