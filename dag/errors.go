package dag

import (
	"errors"
	"fmt"

	"github.com/mjain00/parallel-sta/netlist"
)

// CyclicGraphError is returned by Levels when, after the defensive
// back-edge removal pass in Build, the level partitioner still cannot
// assign a level to every node (§4.4, §7). It carries the set of nets
// that retained positive in-degree, i.e. were never reachable from any
// source during the Kahn-style BFS.
type CyclicGraphError struct {
	Unreached []netlist.NetId
}

func (e *CyclicGraphError) Error() string {
	return fmt.Sprintf("dag: cyclic graph, %d net(s) unreachable from any source", len(e.Unreached))
}

// AsCyclicGraphError reports whether err is (or wraps, per errors.Unwrap)
// a *CyclicGraphError and, if so, returns it. Callers that only need the
// Unreached set use this instead of a type switch.
func AsCyclicGraphError(err error) (*CyclicGraphError, bool) {
	var ce *CyclicGraphError
	ok := errors.As(err, &ce)
	return ce, ok
}
