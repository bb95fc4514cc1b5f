package movie

// The package-level functions run on Default().

// IsValidRecord reports whether v can be inspected as a movie record.
func IsValidRecord(v any) bool { return Default().IsValidRecord(v) }

// HasPropertyOfType reports whether v owns name with a value of the kind typeName denotes.
// It never reports a diagnostic.
func HasPropertyOfType(v any, name, typeName string) bool {
	return Default().HasPropertyOfType(v, name, typeName)
}

// Title returns the string title of v, or "" after reporting why it could not be read.
func Title(v any) string { return Default().Title(v) }

// Year returns the release year of v, or 0 after reporting why it could not be read.
func Year(v any) int { return Default().Year(v) }

// IsClassic reports whether v has a readable year before DefaultClassicCutoff.
func IsClassic(v any) bool { return Default().IsClassic(v) }

// ListKeys returns the keys of v in enumeration order, or an empty slice when v is not a record.
func ListKeys(v any) []string { return Default().ListKeys(v) }

// CountProperties returns the number of keys in v, or 0 when v is not a record.
func CountProperties(v any) int { return Default().CountProperties(v) }
