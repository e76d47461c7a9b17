package session

import "github.com/mjain00/parallel-sta/timing"

// config holds Analyze's own knobs plus pass-through options for the
// lower-level netlist and timing packages.
type config struct {
	verbose    bool
	timingOpts []timing.Option
}

// Option configures Analyze.
type Option func(*config)

// WithVerbose enables diagnostic logging in both the netlist parser and
// (implicitly) anything Analyze itself logs, mirroring the -v/--verbose
// CLI flag (§6.2).
func WithVerbose(v bool) Option {
	return func(c *config) { c.verbose = v }
}

// WithTimingOptions forwards functional options to timing.NewEngine,
// e.g. timing.WithWorkers or timing.WithClockPeriod.
func WithTimingOptions(opts ...timing.Option) Option {
	return func(c *config) { c.timingOpts = append(c.timingOpts, opts...) }
}
