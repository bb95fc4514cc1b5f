package movie

import (
	"log/slog"

	"movierecord/internal/diagnostic"
)

const (
	// TitleKey and YearKey are the properties read by Title and Year.
	TitleKey = "title"
	YearKey  = "year"

	// DefaultClassicCutoff is the first year that is no longer classic.
	DefaultClassicCutoff = 2000
)

// Inspector runs the record accessors and reports failures to a diagnostic sink.
// An Inspector is immutable after construction and safe to share.
type Inspector struct {
	sink    diagnostic.Sink
	suggest bool
	cutoff  int
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithSink reports diagnostics to s. A nil sink discards them.
func WithSink(s diagnostic.Sink) Option {
	return func(in *Inspector) {
		in.sink = s
	}
}

// WithLogger reports diagnostics through logger.
func WithLogger(logger *slog.Logger) Option {
	return WithSink(diagnostic.SlogSink{Logger: logger})
}

// WithSuggestions toggles "did you mean" key suggestions on missing properties.
func WithSuggestions(enabled bool) Option {
	return func(in *Inspector) {
		in.suggest = enabled
	}
}

// WithClassicCutoff changes the year before which a movie is classic.
func WithClassicCutoff(year int) Option {
	return func(in *Inspector) {
		in.cutoff = year
	}
}

// NewInspector returns an Inspector that logs diagnostics through slog.Default,
// suggests near-miss keys and uses DefaultClassicCutoff, unless opts say otherwise.
func NewInspector(opts ...Option) *Inspector {
	in := &Inspector{
		sink:    diagnostic.SlogSink{},
		suggest: true,
		cutoff:  DefaultClassicCutoff,
	}

	for _, opt := range opts {
		opt(in)
	}

	if in.sink == nil {
		in.sink = diagnostic.Discard
	}

	return in
}

// ClassicCutoff returns the configured cutoff year.
func (in *Inspector) ClassicCutoff() int {
	return in.cutoff
}

func (in *Inspector) report(d *diagnostic.Diagnostic) {
	if d == nil {
		return
	}

	if !in.suggest {
		d.Suggestions = nil
	}

	in.sink.Report(*d)
}

var defaultInspector = NewInspector()

// Default returns the inspector behind the package-level functions.
// It logs through slog.Default.
func Default() *Inspector {
	return defaultInspector
}
