package timing

import "github.com/mjain00/parallel-sta/dag"

// Forward runs the three-stage pipeline of §4.5 over ll, populating
// e.edges (RC, slew) and e.arrival.
//
// The engine traverses an index i from 0 to L+2, where L = ll.NumLevels()-1:
//   - if i <= L, STAGE_RC runs for every net in level i;
//   - if i-1 >= 0, STAGE_SLEW runs for every net in level i-1;
//   - if i-2 >= 0, STAGE_ARRIVAL runs for every net in level i-2;
//
// and a barrier separates successive i. Because RC/SLEW at level i only
// touch rows owned by nets in level i (writer-disjoint, no
// synchronization needed, §5) while ARRIVAL at level i-2 only performs
// atomic max-reductions into successor slots, all three waves for a
// given i are safe to run concurrently; at steady state three
// consecutive levels are in flight at once.
func (e *Engine) Forward(ll *dag.LevelList) {
	l := ll.NumLevels() - 1
	if l < 0 {
		return
	}

	for i := 0; i <= l+2; i++ {
		var waves int
		if i <= l {
			waves++
		}
		if i-1 >= 0 {
			waves++
		}
		if i-2 >= 0 {
			waves++
		}
		done := make(chan struct{}, waves)

		if i <= l {
			go func(level int) {
				runWave(e.opts.Workers, ll.BucketIdx(level), e.stageRC)
				done <- struct{}{}
			}(i)
		}
		if i-1 >= 0 {
			go func(level int) {
				runWave(e.opts.Workers, ll.BucketIdx(level), e.stageSlew)
				done <- struct{}{}
			}(i - 1)
		}
		if i-2 >= 0 {
			go func(level int) {
				runWave(e.opts.Workers, ll.BucketIdx(level), e.stageArrival)
				done <- struct{}{}
			}(i - 2)
		}
		for w := 0; w < waves; w++ {
			<-done
		}
	}
}

// stageRC computes rc(n,v) for every outgoing edge of n and stores it
// in EdgeTiming[n][v] (§4.5 STAGE_RC). n owns this row exclusively.
func (e *Engine) stageRC(n int) {
	for k, v := range e.g.Forward(n) {
		e.edges.rc[n][k] = rcDelay(e.driverR[n], e.driverC[v])
	}
}

// stageSlew reads EdgeTiming[n][v].rc and computes slew (§4.5 STAGE_SLEW).
func (e *Engine) stageSlew(n int) {
	for k := range e.g.Forward(n) {
		e.edges.slew[n][k] = slewTime(e.edges.rc[n][k])
	}
}

// stageArrival reads EdgeTiming[n][v] for every outgoing edge and
// applies the arrival max-reduction to v (§4.5 STAGE_ARRIVAL). Multiple
// goroutines processing different predecessors of the same v may call
// MaxUpdate concurrently; the CAS loop in floatSlots serializes them.
func (e *Engine) stageArrival(n int) {
	arrivalN := e.arrival.Load(n)
	for k, v := range e.g.Forward(n) {
		total := edgeTotalPS(e.edges.rc[n][k], e.edges.slew[n][k], e.driverDelay[v])
		e.arrival.MaxUpdate(v, arrivalN+total)
	}
}
