package session

import "errors"

// ErrIngestFailed wraps any error returned by an Ingester's Load call
// (§6.2 "non-zero with a message on parse failure"). Use errors.Is
// against this sentinel to distinguish ingestion failures from parse or
// cycle-detection failures further down the pipeline.
var ErrIngestFailed = errors.New("session: failed to load netlist source")
