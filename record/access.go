package record

import (
	"maps"
	"reflect"
	"slices"

	"movierecord/primitive"
)

// IsRecord reports whether v is a non-nil structured key/value value:
// a *Record (or any other primitive.Keyed) or a map with string keys.
// Primitives, slices, arrays and nil are not records.
func IsRecord(v any) bool {
	return primitive.FromValue(v) == primitive.KindRecord
}

// Lookup returns the value v owns under key. It reports false when v is not a record.
// Records have no inherited keys, so every key found here is an own property.
func Lookup(v any, key string) (any, bool) {
	if !IsRecord(v) {
		return nil, false
	}

	switch r := v.(type) {
	case primitive.Keyed:
		return r.Get(key)
	case map[string]any:
		value, ok := r[key]
		return value, ok
	}

	rv := reflect.ValueOf(v)

	value := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !value.IsValid() {
		return nil, false
	}

	return value.Interface(), true
}

// KeysOf returns the own keys of v in enumeration order, or nil when v is not a record.
// Plain maps have no order and enumerate sorted.
func KeysOf(v any) []string {
	if !IsRecord(v) {
		return nil
	}

	switch r := v.(type) {
	case primitive.Keyed:
		return r.Keys()
	case map[string]any:
		return sortedKeys(r)
	}

	rv := reflect.ValueOf(v)

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}

	slices.Sort(keys)

	return keys
}

// LenOf returns the number of own keys of v, or 0 when v is not a record.
func LenOf(v any) int {
	if !IsRecord(v) {
		return 0
	}

	if r, ok := v.(primitive.Keyed); ok {
		return r.Len()
	}

	return reflect.ValueOf(v).Len()
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
