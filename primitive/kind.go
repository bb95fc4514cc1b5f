package primitive

import (
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindBool
	KindNumber
	KindString
	KindList   // slices and arrays of any element type
	KindRecord // ordered records and maps with string keys

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Keyed is implemented by record types that own an enumerable set of keys.
type Keyed interface {
	Get(key string) (any, bool)
	Keys() []string
	Len() int
}

var keyedType = reflect.TypeFor[Keyed]()

var typeNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindList:   "list",
	KindRecord: "record",
}

var aliases = map[string]KindEnum{
	"null":     KindNull,
	"nil":      KindNull,
	"boolean":  KindBool,
	"bool":     KindBool,
	"number":   KindNumber,
	"int":      KindNumber,
	"integer":  KindNumber,
	"float":    KindNumber,
	"string":   KindString,
	"list":     KindList,
	"array":    KindList,
	"sequence": KindList,
	"record":   KindRecord,
	"object":   KindRecord,
	"map":      KindRecord,
}

// IsValid reports whether k is one of the defined kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// TypeName returns the canonical lowercase name accepted by ParseKind.
func (k KindEnum) TypeName() string {
	if !k.IsValid() {
		return ""
	}

	return typeNames[k]
}

// ParseKind resolves a type name such as "string" or "number" into a kind.
// Names are case-insensitive; aliases like "bool", "int", "array" and "object" are accepted.
func ParseKind(name string) (KindEnum, bool) {
	k, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// FromValue classifies a runtime value. Named types classify as their underlying kind.
// Values that are neither primitive, list nor record (structs, funcs, channels) yield the invalid kind.
func FromValue(v any) KindEnum {
	if v == nil {
		return KindNull
	}

	rv := reflect.ValueOf(v)
	rtype := rv.Type()

	if rtype.Implements(keyedType) {
		if rtype.Kind() == reflect.Pointer && rv.IsNil() {
			return KindNull
		}

		return KindRecord
	}

	if IsNumberType(rtype) {
		return KindNumber
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Slice:
		if rv.IsNil() {
			return KindNull
		}

		return KindList
	case reflect.Array:
		return KindList
	case reflect.Map:
		if rtype.Key().Kind() != reflect.String {
			return 0
		}

		if rv.IsNil() {
			return KindNull
		}

		return KindRecord
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}

		return 0
	}
}

// IsNumberType reports whether rtype is any Go integer or floating-point type.
func IsNumberType(rtype reflect.Type) bool {
	if rtype == nil {
		return false
	}

	return IsIntegerType(rtype) || IsFloatType(rtype)
}

// IsIntegerType reports whether rtype is a signed or unsigned Go integer type.
func IsIntegerType(rtype reflect.Type) bool {
	if rtype == nil {
		return false
	}

	switch rtype.Kind() {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
}

// IsFloatType reports whether rtype is float32, float64 or a type defined over them.
func IsFloatType(rtype reflect.Type) bool {
	if rtype == nil {
		return false
	}

	switch rtype.Kind() {
	default:
		return false
	case reflect.Float32, reflect.Float64:
		return true
	}
}
