package celllib

// CellParams holds the three library constants attached to every cell
// instance: intrinsic propagation delay in picoseconds, driving
// resistance in ohms, and input capacitance in farads.
//
// DelayPS is non-positive (§4.1 sentinel) for every sequential CellKind;
// downstream code must treat such a value as "this cell does not
// propagate combinational delay", not as a literal negative delay.
type CellParams struct {
	DelayPS int64   // d_cell, picoseconds
	R       float64 // driving resistance, ohms
	C       float64 // input capacitance, farads
}

// fallbackParams is returned by Params for KindUnknown and, per §7
// (MissingCellParams), for any CellKind this table has no entry for.
var fallbackParams = CellParams{DelayPS: 0, R: 100, C: 0.3e-12}

// sequentialDelaySentinel is the d_cell value reported for every
// sequential CellKind (§4.1): sequential cells terminate the
// combinational DAG rather than contributing intrinsic delay to it.
const sequentialDelaySentinel int64 = -1

// table is the static cell-kind → parameter mapping. It is populated
// once in init and never mutated afterward (§3 Lifecycle).
var table map[CellKind]CellParams

func init() {
	table = map[CellKind]CellParams{
		KindUnknown: fallbackParams,

		KindBuf: {DelayPS: 6, R: 120, C: 0.35e-12},
		KindInv: {DelayPS: 5, R: 150, C: 0.4e-12},

		KindAnd2: {DelayPS: 9, R: 150, C: 0.4e-12},
		KindAnd3: {DelayPS: 11, R: 170, C: 0.45e-12},
		KindAnd4: {DelayPS: 13, R: 190, C: 0.5e-12},

		KindNand2: {DelayPS: 7, R: 140, C: 0.38e-12},
		KindNand3: {DelayPS: 9, R: 160, C: 0.42e-12},
		KindNand4: {DelayPS: 11, R: 180, C: 0.48e-12},

		KindOr2: {DelayPS: 10, R: 155, C: 0.42e-12},
		KindOr3: {DelayPS: 12, R: 175, C: 0.47e-12},
		KindOr4: {DelayPS: 14, R: 195, C: 0.52e-12},

		KindNor2: {DelayPS: 8, R: 145, C: 0.4e-12},
		KindNor3: {DelayPS: 10, R: 165, C: 0.44e-12},
		KindNor4: {DelayPS: 12, R: 185, C: 0.5e-12},

		KindXor2:  {DelayPS: 14, R: 200, C: 0.55e-12},
		KindXnor2: {DelayPS: 15, R: 205, C: 0.57e-12},

		KindAoi21: {DelayPS: 10, R: 160, C: 0.45e-12},
		KindAoi22: {DelayPS: 12, R: 175, C: 0.5e-12},
		KindOai21: {DelayPS: 10, R: 160, C: 0.45e-12},
		KindOai22: {DelayPS: 12, R: 175, C: 0.5e-12},

		KindHalfAdder: {DelayPS: 16, R: 210, C: 0.6e-12},

		KindDffP:    {DelayPS: sequentialDelaySentinel, R: 130, C: 0.5e-12},
		KindDffN:    {DelayPS: sequentialDelaySentinel, R: 130, C: 0.5e-12},
		KindDffPR:   {DelayPS: sequentialDelaySentinel, R: 135, C: 0.52e-12},
		KindDffPS:   {DelayPS: sequentialDelaySentinel, R: 135, C: 0.52e-12},
		KindDffScan: {DelayPS: sequentialDelaySentinel, R: 140, C: 0.55e-12},

		KindClkBuf: {DelayPS: 4, R: 90, C: 0.25e-12},
	}
}

// Params returns the library constants for kind. It is total: any
// CellKind without a table entry (MissingCellParams, §7) returns
// fallbackParams rather than an error, since the caller has no
// meaningful way to recover a missing constant other than using a
// conservative default.
func Params(kind CellKind) CellParams {
	if p, ok := table[kind]; ok {
		return p
	}
	return fallbackParams
}
