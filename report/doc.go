// Package report exposes the Report Interface (§4.7): a read-only slack
// map over every net reached by the Backward Engine, plus the
// violation/critical-path classification predicates consumers use to
// format human-readable output. No analysis logic lives here — Report
// is built once, after timing.Engine.Backward returns, and never
// mutates afterward (mirroring the read-only map lifecycle dijkstra
// returns to its callers).
package report
