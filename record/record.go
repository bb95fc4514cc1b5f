package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Record is an ordered mapping from string keys to values of mixed type.
// The zero value is an empty record ready to use. Record is not safe for concurrent mutation.
type Record struct {
	keys   []string
	values map[string]any
}

// New returns an empty record.
func New() *Record {
	return &Record{values: make(map[string]any)}
}

// FromPairs builds a record from alternating keys and values, keeping their order.
// It panics when kv has an odd length or a key is not a string; it is meant for literals.
func FromPairs(kv ...any) *Record {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("record.FromPairs: odd number of arguments: %d", len(kv)))
	}

	r := &Record{values: make(map[string]any, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("record.FromPairs: key at position %d is %T, not string", i, kv[i]))
		}

		r.Set(key, kv[i+1])
	}

	return r
}

// Set stores value under key. An existing key keeps its position.
func (r *Record) Set(key string, value any) *Record {
	if r.values == nil {
		r.values = make(map[string]any)
	}

	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = value

	return r
}

func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}

	v, ok := r.values[key]

	return v, ok
}

func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Keys returns a copy of the keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}

	return slices.Clone(r.keys)
}

func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.keys)
}

// Range calls fn for each entry in order until fn returns false.
func (r *Record) Range(fn func(key string, value any) bool) {
	if r == nil {
		return
	}

	for _, key := range r.keys {
		if !fn(key, r.values[key]) {
			return
		}
	}
}

// MarshalJSON encodes the record as a JSON object with keys in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", key, err)
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a YAML mapping with keys in insertion order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if r == nil {
		return node, nil
	}

	for _, key := range r.keys {
		var vn yaml.Node
		if err := vn.Encode(r.values[key]); err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", key, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&vn,
		)
	}

	return node, nil
}
