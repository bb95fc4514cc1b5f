package diagnostic

import (
	"context"
	"log/slog"
)

// Sink receives diagnostics as they are produced.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// SlogSink writes diagnostics to a structured logger.
// A nil Logger falls back to slog.Default at report time.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) Report(d Diagnostic) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	attrs := []slog.Attr{slog.String("code", d.Code)}
	if d.Property != "" {
		attrs = append(attrs, slog.String("property", d.Property))
	}

	if len(d.Suggestions) > 0 {
		attrs = append(attrs, slog.Any("suggestions", d.Suggestions))
	}

	logger.LogAttrs(context.Background(), level(d.Severity), d.Message, attrs...)
}

func level(s Severity) slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Tee reports each diagnostic to every sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(d Diagnostic) {
		for _, s := range sinks {
			s.Report(d)
		}
	})
}
