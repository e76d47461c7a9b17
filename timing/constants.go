package timing

// Constants holds the compile-time timing defaults of §6.3, overridable
// per analysis run via Options. Only ClockPeriodPS and SetupTimePS are
// consumed by the core engines; the rest are reserved for a future hold
// check and are carried here only so callers have one place to override
// the whole family consistently.
type Constants struct {
	ClockPeriodPS int64 // CLOCK_PERIOD
	SetupTimePS   int64 // SETUP_TIME
	HoldTimePS    int64 // HOLD_TIME, reserved
	Clk2QMinPS    int64 // CLK2Q_MIN, reserved
	Clk2QMaxPS    int64 // CLK2Q_MAX, reserved
	ClkSkewMaxPS  int64 // CLK_SKEW_MAX, reserved
}

// DefaultConstants returns the §6.3 compile-time defaults.
func DefaultConstants() Constants {
	return Constants{
		ClockPeriodPS: 50,
		SetupTimePS:   8,
		HoldTimePS:    4,
		Clk2QMinPS:    1,
		Clk2QMaxPS:    5,
		ClkSkewMaxPS:  3,
	}
}
