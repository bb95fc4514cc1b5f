// Package diagnostic provides structured diagnostics for record inspection
// and the sinks they are reported to.
//
// Key capabilities:
//   - Invalid record, missing and mistyped property reports
//   - "Did you mean" suggestions for near-miss property names
//   - Collecting sink for tests and batch checks
//   - log/slog sink for human-readable output
package diagnostic
