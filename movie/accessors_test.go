package movie_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierecord/internal/diagnostic"
	"movierecord/movie"
	"movierecord/record"
)

type Title string

func newInspector(opts ...movie.Option) (*movie.Inspector, *diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	return movie.NewInspector(append([]movie.Option{movie.WithSink(&diags)}, opts...)...), &diags
}

func toyStory() *record.Record {
	return record.FromPairs("title", "Toy Story", "year", 1995)
}

var nonRecords = []struct {
	name  string
	value any
}{
	{"nil", nil},
	{"nil record", (*record.Record)(nil)},
	{"number", 42},
	{"string", "Toy Story"},
	{"bool", true},
	{"slice", []any{"title", "Toy Story"}},
	{"string slice", []string{"title"}},
}

func TestNonRecordsYieldSentinels(t *testing.T) {
	t.Parallel()

	for _, tt := range nonRecords {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, diags := newInspector()

			assert.False(t, in.IsValidRecord(tt.value))
			assert.False(t, in.HasPropertyOfType(tt.value, "title", "string"))
			assert.Equal(t, 0, diags.Len(), "HasPropertyOfType is silent")

			assert.Equal(t, "", in.Title(tt.value))
			assert.Equal(t, 0, in.Year(tt.value))
			assert.False(t, in.IsClassic(tt.value))
			assert.Equal(t, []string{}, in.ListKeys(tt.value))
			assert.Equal(t, 0, in.CountProperties(tt.value))

			require.Len(t, diags.Warnings, 5, "one diagnostic per failed accessor")
			for _, d := range diags.Warnings {
				assert.Equal(t, diagnostic.CodeInvalidRecord, d.Code)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		want     string
		wantCode string
	}{
		{"record", toyStory(), "Toy Story", ""},
		{"map", map[string]any{"title": "Up"}, "Up", ""},
		{"typed map", map[string]string{"title": "Up"}, "Up", ""},
		{"named string", map[string]any{"title": Title("Cars")}, "Cars", ""},
		{"present empty", record.FromPairs("title", ""), "", ""},
		{"missing", record.FromPairs("year", 1995), "", diagnostic.CodeMissingProperty},
		{"nil value", record.FromPairs("title", nil), "", diagnostic.CodeMissingProperty},
		{"number", record.FromPairs("title", 0), "", diagnostic.CodeMistypedProperty},
		{"bool", record.FromPairs("title", false), "", diagnostic.CodeMistypedProperty},
		{"list", record.FromPairs("title", []string{"Toy", "Story"}), "", diagnostic.CodeMistypedProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, diags := newInspector()
			assert.Equal(t, tt.want, in.Title(tt.value))

			if tt.wantCode == "" {
				assert.Equal(t, 0, diags.Len())
				return
			}

			require.Len(t, diags.Warnings, 1)
			assert.Equal(t, tt.wantCode, diags.Warnings[0].Code)
			assert.Equal(t, movie.TitleKey, diags.Warnings[0].Property)
		})
	}
}

func TestYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		want     int
		wantCode string
	}{
		{"record", toyStory(), 1995, ""},
		{"int64", record.FromPairs("year", int64(1995)), 1995, ""},
		{"uint16", record.FromPairs("year", uint16(1995)), 1995, ""},
		{"integral float", record.FromPairs("year", 1995.0), 1995, ""},
		{"present zero", record.FromPairs("year", 0), 0, ""},
		{"negative", record.FromPairs("year", -44), -44, ""},
		{"missing", record.FromPairs("title", "Toy Story"), 0, diagnostic.CodeMissingProperty},
		{"nil value", record.FromPairs("year", nil), 0, diagnostic.CodeMissingProperty},
		{"numeric string", record.FromPairs("year", "1995"), 0, diagnostic.CodeMistypedProperty},
		{"bool", record.FromPairs("year", true), 0, diagnostic.CodeMistypedProperty},
		{"fractional", record.FromPairs("year", 1995.5), 0, diagnostic.CodeInvalidYear},
		{"NaN", record.FromPairs("year", math.NaN()), 0, diagnostic.CodeInvalidYear},
		{"too large", record.FromPairs("year", int64(math.MaxInt64)), 0, diagnostic.CodeInvalidYear},
		{"too large unsigned", record.FromPairs("year", uint64(math.MaxUint64)), 0, diagnostic.CodeInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, diags := newInspector()
			assert.Equal(t, tt.want, in.Year(tt.value))

			if tt.wantCode == "" {
				assert.Equal(t, 0, diags.Len())
				return
			}

			require.Len(t, diags.Warnings, 1)
			assert.Equal(t, tt.wantCode, diags.Warnings[0].Code)
		})
	}
}

func TestIsClassic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     any
		want      bool
		wantDiags int
	}{
		{"1995", record.FromPairs("year", 1995), true, 0},
		{"2010", record.FromPairs("year", 2010), false, 0},
		{"cutoff year", record.FromPairs("year", 2000), false, 0},
		{"1999", map[string]any{"year": 1999}, true, 0},
		{"year zero", record.FromPairs("year", 0), true, 0},
		{"empty record", record.New(), false, 1},
		{"string year", record.FromPairs("year", "1995"), false, 1},
		{"not a record", 1995, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, diags := newInspector()
			assert.Equal(t, tt.want, in.IsClassic(tt.value))
			assert.Equal(t, tt.wantDiags, diags.Len())
		})
	}
}

func TestIsClassicCustomCutoff(t *testing.T) {
	t.Parallel()

	in, _ := newInspector(movie.WithClassicCutoff(1980))

	assert.Equal(t, 1980, in.ClassicCutoff())
	assert.False(t, in.IsClassic(toyStory()))
	assert.True(t, in.IsClassic(record.FromPairs("year", 1977)))
}

func TestListKeysAndCount(t *testing.T) {
	t.Parallel()

	in, diags := newInspector()

	r := record.FromPairs("a", 1, "b", 2)
	assert.Equal(t, []string{"a", "b"}, in.ListKeys(r))
	assert.Equal(t, 2, in.CountProperties(r))

	reversed := record.FromPairs("b", 2, "a", 1)
	assert.Equal(t, []string{"b", "a"}, in.ListKeys(reversed), "insertion order is kept")

	assert.Equal(t, []string{"a", "b"}, in.ListKeys(map[string]any{"b": 2, "a": 1}))
	assert.Equal(t, 2, in.CountProperties(map[string]any{"b": 2, "a": 1}))

	empty := in.ListKeys(record.New())
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Equal(t, 0, in.CountProperties(map[string]any{}))

	assert.Equal(t, 0, diags.Len())
}

func TestHasPropertyOfType(t *testing.T) {
	t.Parallel()

	r := record.FromPairs(
		"title", "X",
		"year", 1995,
		"released", true,
		"genres", []string{"animation"},
		"director", record.FromPairs("name", "John Lasseter"),
		"sequel", nil,
	)

	tests := []struct {
		value    any
		name     string
		typeName string
		want     bool
	}{
		{r, "title", "string", true},
		{r, "title", "number", false},
		{r, "year", "number", true},
		{r, "year", "integer", true},
		{r, "released", "boolean", true},
		{r, "genres", "list", true},
		{r, "director", "object", true},
		{r, "sequel", "null", true},
		{r, "sequel", "object", false},
		{r, "genres", "object", false},
		{r, "title", "undefined", false},
		{r, "runtime", "number", false},
		{record.New(), "title", "string", false},
		{map[string]any{"title": "X"}, "title", "string", true},
		{"title", "title", "string", false},
	}

	in, diags := newInspector()

	for _, tt := range tests {
		assert.Equal(t, tt.want, in.HasPropertyOfType(tt.value, tt.name, tt.typeName),
			"HasPropertyOfType(%v, %q, %q)", tt.value, tt.name, tt.typeName)
	}

	assert.Equal(t, 0, diags.Len())
}

func TestLookupIsSilent(t *testing.T) {
	t.Parallel()

	in, diags := newInspector()

	title, ok := in.LookupTitle(toyStory())
	assert.True(t, ok)
	assert.Equal(t, "Toy Story", title)

	year, ok := in.LookupYear(toyStory())
	assert.True(t, ok)
	assert.Equal(t, 1995, year)

	title, ok = in.LookupTitle(record.FromPairs("title", ""))
	assert.True(t, ok, "empty title is present")
	assert.Empty(t, title)

	_, ok = in.LookupTitle(record.New())
	assert.False(t, ok)

	_, ok = in.LookupYear("1995")
	assert.False(t, ok)

	assert.Equal(t, 0, diags.Len())
}

func TestMissingPropertySuggestions(t *testing.T) {
	t.Parallel()

	r := record.FromPairs("Title", "Toy Story", "yaer", 1995)

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()

		in, diags := newInspector()
		in.Title(r)
		in.Year(r)

		require.Len(t, diags.Warnings, 2)
		assert.Equal(t, []string{"Title"}, diags.Warnings[0].Suggestions)
		assert.Equal(t, []string{"yaer"}, diags.Warnings[1].Suggestions)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		in, diags := newInspector(movie.WithSuggestions(false))
		in.Title(r)

		require.Len(t, diags.Warnings, 1)
		assert.Nil(t, diags.Warnings[0].Suggestions)
	})
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	in, _ := newInspector()
	r := movie.Sample()
	before := r.Keys()

	for range 3 {
		assert.Equal(t, "Toy Story", in.Title(r))
		assert.Equal(t, 1995, in.Year(r))
		assert.True(t, in.IsClassic(r))
		assert.Equal(t, before, in.ListKeys(r))
		assert.Equal(t, 5, in.CountProperties(r))
	}

	assert.Equal(t, before, r.Keys())
}

func TestNilSinkDiscards(t *testing.T) {
	t.Parallel()

	in := movie.NewInspector(movie.WithSink(nil))
	assert.NotPanics(t, func() { in.Title(nil) })
}

func TestDiagnosticMessages(t *testing.T) {
	t.Parallel()

	in, diags := newInspector()

	in.Title(42)
	in.Year(record.FromPairs("year", "1995"))
	in.Year(record.FromPairs("year", 1995.5))

	require.Len(t, diags.Warnings, 3)
	assert.Equal(t, "Title: expected a movie record, got number (int)", diags.Warnings[0].Message)
	assert.Equal(t, `Year: "year" must be a number, got string (string)`, diags.Warnings[1].Message)
	assert.Equal(t, "Year: year 1995.5 has a fractional part", diags.Warnings[2].Message)
}
