// Package timing implements the Forward Engine (C5) and Backward Engine
// (C6): a three-stage pipeline over topological levels that computes
// per-edge RC delay and slew, per-net arrival time, per-net required
// time, and slack.
//
// Both engines are level-synchronous: within a level, per-net work runs
// concurrently across a fixed-size worker pool (§5); across levels, the
// Forward Engine additionally pipelines three stages three levels deep
// (§4.5). The only shared mutable state touched by more than one
// goroutine at a time is the arrival/required max/min-reduction, which
// is updated with a lock-free compare-and-swap loop over bit-cast
// float64 slots (§9).
package timing
