package movie

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"movierecord/internal/diagnostic"
	"movierecord/internal/match"
	"movierecord/primitive"
	"movierecord/record"
	"movierecord/utils"
)

var (
	errNotNumber  = errors.New("not a number")
	errFractional = errors.New("has a fractional part")
	errOutOfRange = errors.New("is out of range")
)

// property returns the non-nil value v owns under key, or the diagnostic explaining why there is none.
func property(op string, v any, key string) (any, *diagnostic.Diagnostic) {
	if !record.IsRecord(v) {
		return nil, invalidRecord(op, v)
	}

	value, ok := record.Lookup(v, key)
	if !ok || value == nil {
		return nil, &diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityWarning,
			Code:        diagnostic.CodeMissingProperty,
			Message:     fmt.Sprintf("%s: movie record has no %q", op, key),
			Property:    key,
			Suggestions: match.Suggest(key, record.KeysOf(v), match.DefaultThreshold, match.DefaultLimit),
		}
	}

	return value, nil
}

func mistyped(op, key string, want primitive.KindEnum, value any) *diagnostic.Diagnostic {
	return &diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Code:     diagnostic.CodeMistypedProperty,
		Message:  fmt.Sprintf("%s: %q must be a %s, got %s", op, key, want.TypeName(), describe(value)),
		Property: key,
	}
}

func invalidRecord(op string, v any) *diagnostic.Diagnostic {
	return &diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Code:     diagnostic.CodeInvalidRecord,
		Message:  fmt.Sprintf("%s: expected a movie record, got %s", op, describe(v)),
	}
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}

	if k := primitive.FromValue(v); k.IsValid() {
		return fmt.Sprintf("%s (%T)", k.TypeName(), v)
	}

	return fmt.Sprintf("%T", v)
}

// asString accepts string and named string types.
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}

	return rv.String(), true
}

// asYear accepts any integer, or a float with no fractional part, within int32 range.
func asYear(v any) (int, error) {
	if v == nil {
		return 0, errNotNumber
	}

	rv := reflect.ValueOf(v)
	rtype := rv.Type()

	switch {
	case primitive.IsIntegerType(rtype) && rv.CanUint():
		if n := rv.Uint(); n <= math.MaxInt32 {
			return int(n), nil
		}

		return 0, errOutOfRange
	case primitive.IsIntegerType(rtype):
		if n := rv.Int(); utils.IsInRange[int64](math.MinInt32, n, math.MaxInt32) {
			return int(n), nil
		}

		return 0, errOutOfRange
	case primitive.IsFloatType(rtype):
		f := rv.Float()
		if !utils.IsInRange[float64](math.MinInt32, f, math.MaxInt32) {
			return 0, errOutOfRange
		}

		if f != math.Trunc(f) {
			return 0, errFractional
		}

		return int(f), nil
	default:
		return 0, errNotNumber
	}
}
