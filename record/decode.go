package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidDocument   = errors.New("invalid document")
	ErrNotObject         = errors.New("document is not an object")
	ErrUnsupportedFormat = errors.New("unsupported record format")
)

// Format names a serialized record encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads and decodes a record from path, choosing the decoder by extension.
func LoadFile(path string) (*Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}

	r, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode record file %s: %w", path, err)
	}

	return r, nil
}

func Decode(data []byte, format Format) (*Record, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DecodeJSON decodes a top-level JSON object. Nested objects become *Record,
// arrays []any, integral numbers int64 and other numbers float64.
func DecodeJSON(data []byte) (*Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: JSON document is %s", ErrNotObject, jsonTypeName(doc))
	}

	return fromJSONObject(doc), nil
}

func fromJSONObject(obj gjson.Result) *Record {
	r := New()
	obj.ForEach(func(key, value gjson.Result) bool {
		r.Set(key.String(), fromJSONValue(value))
		return true
	})

	return r
}

func fromJSONValue(v gjson.Result) any {
	switch v.Type {
	default:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.String:
		return v.Str
	case gjson.Number:
		if i, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return i
		}

		return v.Num
	case gjson.JSON:
		if v.IsObject() {
			return fromJSONObject(v)
		}

		items := v.Array()

		list := make([]any, 0, len(items))
		for _, item := range items {
			list = append(list, fromJSONValue(item))
		}

		return list
	}
}

func jsonTypeName(v gjson.Result) string {
	if v.IsArray() {
		return "array"
	}

	return strings.ToLower(v.Type.String())
}

// DecodeYAML decodes a top-level YAML mapping, keeping key order. Nested mappings
// become *Record and sequences []any; scalars decode with YAML core schema types.
func DecodeYAML(data []byte) (*Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty YAML document", ErrNotObject)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: YAML document is %s", ErrNotObject, root.ShortTag())
	}

	return newYAMLDecoder().mapping(root)
}

// maxAliasedNodes caps how many nodes may be produced by expanding aliases in one document.
const maxAliasedNodes = 10000

// yamlDecoder walks a yaml.Node tree. It refuses alias cycles and bounds alias expansion.
type yamlDecoder struct {
	active   map[*yaml.Node]bool // collections currently being decoded
	aliasing int                 // depth of alias expansion
	expanded int                 // nodes produced under an alias
}

func newYAMLDecoder() *yamlDecoder {
	return &yamlDecoder{active: make(map[*yaml.Node]bool)}
}

func (d *yamlDecoder) mapping(node *yaml.Node) (*Record, error) {
	if err := d.enter(node); err != nil {
		return nil, err
	}
	defer d.leave(node)

	explicit := make(map[string]bool, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i]; !isMergeKey(key) {
			explicit[key.Value] = true
		}
	}

	r := New()

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]

		if isMergeKey(key) {
			if err := d.merge(r, node.Content[i+1], explicit); err != nil {
				return nil, err
			}

			continue
		}

		if key.Kind == yaml.AliasNode {
			return nil, fmt.Errorf("%w: alias used as a mapping key at line %d", ErrInvalidDocument, key.Line)
		}

		value, err := d.value(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key.Value, err)
		}

		r.Set(key.Value, value)
	}

	return r, nil
}

// merge splices the pairs of a "<<" value into r. Explicit keys of the enclosing
// mapping win, and with a sequence of mappings earlier entries win over later ones.
func (d *yamlDecoder) merge(r *Record, value *yaml.Node, explicit map[string]bool) error {
	sources := []*yaml.Node{value}
	if target := aliasTarget(value); target.Kind == yaml.SequenceNode {
		sources = target.Content
	}

	for _, source := range sources {
		if aliasTarget(source).Kind != yaml.MappingNode {
			return fmt.Errorf("%w: merge value at line %d is not a mapping", ErrInvalidDocument, source.Line)
		}

		merged, err := d.value(source)
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}

		merged.(*Record).Range(func(key string, v any) bool {
			if !explicit[key] && !r.Has(key) {
				r.Set(key, v)
			}

			return true
		})
	}

	return nil
}

func (d *yamlDecoder) value(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode {
		if node.Alias == nil {
			return nil, fmt.Errorf("%w: unknown anchor %q", ErrInvalidDocument, node.Value)
		}

		d.aliasing++
		defer func() { d.aliasing-- }()

		return d.value(node.Alias)
	}

	if d.aliasing > 0 {
		d.expanded++
		if d.expanded > maxAliasedNodes {
			return nil, fmt.Errorf("%w: aliases expand to more than %d nodes", ErrInvalidDocument, maxAliasedNodes)
		}
	}

	switch node.Kind {
	case yaml.MappingNode:
		return d.mapping(node)
	case yaml.SequenceNode:
		if err := d.enter(node); err != nil {
			return nil, err
		}
		defer d.leave(node)

		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := d.value(item)
			if err != nil {
				return nil, err
			}

			list = append(list, v)
		}

		return list, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		return v, nil
	}
}

func (d *yamlDecoder) enter(node *yaml.Node) error {
	if d.active[node] {
		return fmt.Errorf("%w: alias at line %d refers to its own ancestor", ErrInvalidDocument, node.Line)
	}

	d.active[node] = true

	return nil
}

func (d *yamlDecoder) leave(node *yaml.Node) {
	delete(d.active, node)
}

// aliasTarget returns the node an alias points at without expanding it.
func aliasTarget(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}

	return node
}

func isMergeKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge"
}
