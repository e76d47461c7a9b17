package timing

import (
	"math"

	"github.com/mjain00/parallel-sta/dag"
	"github.com/mjain00/parallel-sta/netlist"
)

// Engine holds every per-run map the Forward and Backward Engines
// populate once: EdgeTiming, arrival, required (§3 "Lifecycle"). It is
// owned by the analysis session and exposed by reference through the
// Report Interface (C7) after Backward completes.
type Engine struct {
	g    *dag.Graph
	opts Options

	driverR     []float64 // driving resistance of the net's own driver (0 if none)
	driverC     []float64 // input capacitance of the net's own driver
	driverDelay []int64   // d_cell of the net's own driver

	edges    *edgeTimes
	arrival  floatSlots
	required floatSlots
}

// NewEngine builds an Engine over g, resolving each net's driver cell
// (for R/C/d_cell) from nl. A net with no driver cell at all (a primary
// input, or a flip-flop Q net feeding this combinational cone) is
// modeled as an ideal zero-impedance source: R=C=d_cell=0, so the
// interconnect edge it drives contributes no RC/slew delay of its own.
// This is distinct from §7's MissingCellParams fallback, which only
// applies to a *cell* whose Kind has no library entry — celllib.Params
// already resolves that case before a Cell ever reaches this engine.
func NewEngine(g *dag.Graph, nl *netlist.Netlist, opts Options) *Engine {
	n := g.N()
	e := &Engine{
		g:           g,
		opts:        opts,
		driverR:     make([]float64, n),
		driverC:     make([]float64, n),
		driverDelay: make([]int64, n),
	}

	for _, c := range nl.Cells() {
		idx, ok := g.IndexOf(c.Id)
		if !ok {
			continue
		}
		e.driverR[idx] = c.R
		e.driverC[idx] = c.C
		e.driverDelay[idx] = c.Delay
	}

	outDegrees := make([]int, n)
	for i := 0; i < n; i++ {
		outDegrees[i] = len(g.Forward(i))
	}
	e.edges = newEdgeTimes(outDegrees)

	// Arrival defaults to 0 ("source-ready", §3); required defaults to
	// +Inf internally so the min-reduction in Backward never lets an
	// untouched net spuriously constrain its fan-ins (§4.6, "If
	// required[n] is unset, set it to a large sentinel").
	e.arrival = newFloatSlots(n, 0)
	e.required = newFloatSlots(n, math.Inf(1))

	return e
}

// ArrivalPS returns the arrival time, in picoseconds, of the net at
// dense index idx.
func (e *Engine) ArrivalPS(idx int) float64 { return e.arrival.Load(idx) }

// RequiredPS returns the required time, in picoseconds, of the net at
// dense index idx, with the +Inf internal sentinel resolved to
// ClockPeriodPS per §3's documented default-for-unconstrained-nets
// semantics.
func (e *Engine) RequiredPS(idx int) float64 {
	v := e.required.Load(idx)
	if math.IsInf(v, 1) {
		return float64(e.opts.Constants.ClockPeriodPS)
	}
	return v
}

// SlackPS returns RequiredPS(idx) - ArrivalPS(idx).
func (e *Engine) SlackPS(idx int) float64 {
	return e.RequiredPS(idx) - e.ArrivalPS(idx)
}

// Graph returns the underlying net-level DAG.
func (e *Engine) Graph() *dag.Graph { return e.g }
