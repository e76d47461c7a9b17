package timing

import "github.com/mjain00/parallel-sta/dag"

// SeedPrimaryOutputs sets required[o] = CLOCK_PERIOD - SETUP_TIME for
// every net in outputIdx (§4.6 "Initialization"). Must be called before
// Backward, and only from a single goroutine (it is a plain store, not
// a reduction — there is nothing to race with yet).
func (e *Engine) SeedPrimaryOutputs(outputIdx []int) {
	req := float64(e.opts.Constants.ClockPeriodPS - e.opts.Constants.SetupTimePS)
	for _, idx := range outputIdx {
		e.required.Store(idx, req)
	}
}

// Backward runs the level-synchronous required-time propagation of
// §4.6: levels are visited in descending order, and for every net n at
// the current level, each fan-in u has its required time min-reduced
// against required[n] minus n's contribution (intrinsic delay only by
// default, §4.6's documented convention; optionally edge-aware, see
// Options.BackwardIncludesEdgeDelay).
//
// Within a level, fan-in propagation for every net may run concurrently
// (§4.6 "Parallelism"): each net only ever mutates its own fan-ins'
// slots via the atomic min-reduction in floatSlots, so contention is
// limited to nets with multiple fan-outs at the same level, which the
// CAS loop serializes correctly regardless of interleaving.
func (e *Engine) Backward(ll *dag.LevelList) {
	for level := ll.NumLevels() - 1; level >= 0; level-- {
		runWave(e.opts.Workers, ll.BucketIdx(level), e.stageBackward)
	}
}

func (e *Engine) stageBackward(n int) {
	req := e.required.Load(n)
	dCellN := e.driverDelay[n]
	for _, u := range e.g.Reverse(n) {
		var candidate float64
		if e.opts.BackwardIncludesEdgeDelay {
			rc, slew := e.edgeRCSlew(u, n)
			candidate = req - edgeTotalPS(rc, slew, dCellN)
		} else {
			candidate = req - float64(dCellN)
		}
		e.required.MinUpdate(u, candidate)
	}
}

// edgeRCSlew retrieves the RC/slew already computed by Forward for edge
// u->v. Used only by the edge-aware backward convention.
func (e *Engine) edgeRCSlew(u, v int) (rc, slew float64) {
	for k, w := range e.g.Forward(u) {
		if w == v {
			return e.edges.rc[u][k], e.edges.slew[u][k]
		}
	}
	return 0, 0
}
