package movie

import (
	"errors"
	"fmt"

	"movierecord/internal/diagnostic"
	"movierecord/primitive"
	"movierecord/record"
)

// IsValidRecord reports whether v is a non-nil key/value record rather than a primitive or list.
func (in *Inspector) IsValidRecord(v any) bool {
	return record.IsRecord(v)
}

// HasPropertyOfType reports whether v is a record that owns name with a value of
// the kind typeName ("string", "number", "boolean", "list", "record", "null").
// It never reports a diagnostic; unknown type names and invalid records yield false.
func (in *Inspector) HasPropertyOfType(v any, name, typeName string) bool {
	want, ok := primitive.ParseKind(typeName)
	if !ok {
		return false
	}

	value, ok := record.Lookup(v, name)
	if !ok {
		return false
	}

	return primitive.FromValue(value) == want
}

// Title returns the string under "title", or "" after reporting why there is none.
func (in *Inspector) Title(v any) string {
	title, d := titleOf("Title", v)
	in.report(d)

	return title
}

// LookupTitle returns the title and whether it is present as a string. It reports nothing.
func (in *Inspector) LookupTitle(v any) (string, bool) {
	title, d := titleOf("LookupTitle", v)
	return title, d == nil
}

// Year returns the integral number under "year", or 0 after reporting why there is none.
func (in *Inspector) Year(v any) int {
	year, d := yearOf("Year", v)
	in.report(d)

	return year
}

// LookupYear returns the year and whether it is present as an integral number. It reports nothing.
func (in *Inspector) LookupYear(v any) (int, bool) {
	year, d := yearOf("LookupYear", v)
	return year, d == nil
}

// IsClassic reports whether the record's year is before the classic cutoff (2000 by default).
// Missing or non-numeric years are rejected with a diagnostic.
func (in *Inspector) IsClassic(v any) bool {
	year, d := yearOf("IsClassic", v)
	if d != nil {
		in.report(d)
		return false
	}

	return year < in.cutoff
}

// ListKeys returns the record's own keys in enumeration order.
// The result is never nil; invalid input yields an empty slice and a diagnostic.
func (in *Inspector) ListKeys(v any) []string {
	if !record.IsRecord(v) {
		in.report(invalidRecord("ListKeys", v))
		return []string{}
	}

	keys := record.KeysOf(v)
	if keys == nil {
		keys = []string{}
	}

	return keys
}

// CountProperties returns the number of own keys, or 0 with a diagnostic for invalid input.
func (in *Inspector) CountProperties(v any) int {
	if !record.IsRecord(v) {
		in.report(invalidRecord("CountProperties", v))
		return 0
	}

	return record.LenOf(v)
}

func titleOf(op string, v any) (string, *diagnostic.Diagnostic) {
	value, d := property(op, v, TitleKey)
	if d != nil {
		return "", d
	}

	title, ok := asString(value)
	if !ok {
		return "", mistyped(op, TitleKey, primitive.KindString, value)
	}

	return title, nil
}

func yearOf(op string, v any) (int, *diagnostic.Diagnostic) {
	value, d := property(op, v, YearKey)
	if d != nil {
		return 0, d
	}

	year, err := asYear(value)
	switch {
	case err == nil:
		return year, nil
	case errors.Is(err, errNotNumber):
		return 0, mistyped(op, YearKey, primitive.KindNumber, value)
	default:
		return 0, &diagnostic.Diagnostic{
			Severity: diagnostic.SeverityWarning,
			Code:     diagnostic.CodeInvalidYear,
			Message:  fmt.Sprintf("%s: year %v %v", op, value, err),
			Property: YearKey,
		}
	}
}
