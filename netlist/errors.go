package netlist

import "errors"

// Sentinel errors returned by Parse. Per §7: MalformedInput and
// NonIntegerBit are local and recovered (the offending cell/port/bit is
// skipped and parsing continues); only ErrNoModules is fatal, since
// without at least one module there is nothing to analyze.
var (
	// ErrNoModules indicates the top-level JSON had no "modules" field,
	// or "modules" was present but empty.
	ErrNoModules = errors.New("netlist: no modules in input")

	// ErrMalformedInput indicates a cell or port was missing a required
	// field (port_directions/connections for a cell, direction/bits for
	// a port). The offending entity is skipped; parsing continues.
	ErrMalformedInput = errors.New("netlist: malformed input")

	// ErrNonIntegerBit indicates a bits entry that decoded to something
	// other than an integer. The offending bit is skipped.
	ErrNonIntegerBit = errors.New("netlist: non-integer bit")
)
