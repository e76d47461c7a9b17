package timing

// Options configures a single analysis run of the Forward and Backward
// Engines. The zero value is not valid; use DefaultOptions or construct
// with Option functions.
type Options struct {
	Constants Constants

	// Workers is the fixed-size worker-pool size used for intra-level
	// parallelism (§5). Must be >= 1; DefaultOptions sets 16.
	Workers int

	// Verbose enables diagnostic logging (§6.2 -v/--verbose).
	Verbose bool

	// BackwardIncludesEdgeDelay switches the Backward Engine from the
	// intrinsic-only convention (§4.6, the default) to the symmetric
	// convention that also subtracts edge RC/slew contributions. See
	// §9 "Backward-pass semantics ambiguity" and SPEC_FULL.md §5.
	BackwardIncludesEdgeDelay bool
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns the §5/§6.3 defaults: 16 workers, the
// compile-time timing constants, no verbose logging, intrinsic-only
// backward propagation.
func DefaultOptions() Options {
	return Options{
		Constants: DefaultConstants(),
		Workers:   16,
	}
}

// WithWorkers overrides the worker-pool size. Values < 1 are clamped to
// 1 (§5, "degrades correctly to 1").
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithClockPeriod overrides CLOCK_PERIOD, in picoseconds.
func WithClockPeriod(ps int64) Option {
	return func(o *Options) { o.Constants.ClockPeriodPS = ps }
}

// WithSetupTime overrides SETUP_TIME, in picoseconds.
func WithSetupTime(ps int64) Option {
	return func(o *Options) { o.Constants.SetupTimePS = ps }
}

// WithVerbose enables diagnostic logging.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// WithBackwardEdgeAware switches the Backward Engine to also subtract
// edge RC/slew delay, not just cell intrinsic delay (§9 open question).
func WithBackwardEdgeAware(v bool) Option {
	return func(o *Options) { o.BackwardIncludesEdgeDelay = v }
}
