// Package dag builds the net-level directed acyclic graph over a
// netlist (C3, §4.3) and partitions it into topological levels (C4,
// §4.4). NetIds are sparse in the input; Graph maps them to a dense
// [0,N) index once at construction time so every downstream array
// (arrival, required, EdgeTiming rows) can be a plain slice instead of
// a map (§9, "Sparse NetIds").
package dag

import (
	"log"
	"sort"

	"github.com/mjain00/parallel-sta/netlist"
)

// Graph is the forward/reverse adjacency over a dense net index.
// Read-only once Build returns; safe for concurrent readers (§5,
// "Read-only during parallel regions: fwd, rev, ...").
type Graph struct {
	ids   []netlist.NetId       // dense index -> NetId
	index map[netlist.NetId]int // NetId -> dense index

	fwd [][]int // fwd[u] = dense indices of nets driven (directly) by u
	rev [][]int // rev[v] = dense indices of nets that drive v

	// RemovedBackEdges records back-edges erased by the defensive cycle
	// removal pass (§4.3), for diagnostics.
	RemovedBackEdges [][2]netlist.NetId
}

// N returns the number of distinct nets in the graph.
func (g *Graph) N() int { return len(g.ids) }

// NetAt returns the NetId at dense index i.
func (g *Graph) NetAt(i int) netlist.NetId { return g.ids[i] }

// IndexOf returns the dense index of id, if known.
func (g *Graph) IndexOf(id netlist.NetId) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Forward returns the dense indices of nets directly driven by the net
// at dense index u.
func (g *Graph) Forward(u int) []int { return g.fwd[u] }

// Reverse returns the dense indices of nets that directly drive the net
// at dense index v.
func (g *Graph) Reverse(v int) []int { return g.rev[v] }

// Build constructs the net-level DAG from nl. For each non-sequential
// cell with inputs {u_i} and outputs {v_j}, an edge u_i -> v_j is added
// for every (i, j); parallel edges between the same (u, v) pair are
// deduplicated (§8, scenario S3 policy). Sequential cells (flip-flops)
// do not contribute edges: their D input is a fresh sink and their Q
// output is a fresh source, so the combinational DAG never crosses a
// flip-flop (§9, "Cycles crossing flip-flops").
//
// A defensive DFS-based back-edge removal pass runs afterward to
// tolerate ill-formed inputs that produced spurious feedback (§4.3);
// this is not expected to fire on well-formed synthesized netlists.
func Build(nl *netlist.Netlist, opts ...Option) (*Graph, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	ids := collectNetIds(nl)
	g := &Graph{
		ids:   ids,
		index: make(map[netlist.NetId]int, len(ids)),
		fwd:   make([][]int, len(ids)),
		rev:   make([][]int, len(ids)),
	}
	for i, id := range ids {
		g.index[id] = i
	}

	// edgeSet dedups (u,v) pairs before they are ever appended (S3).
	edgeSet := make(map[[2]int]bool)
	for _, c := range nl.Cells() {
		if c.Kind.IsSequential() {
			continue
		}
		for _, u := range c.Inputs {
			ui, ok := g.index[u]
			if !ok {
				continue
			}
			for _, v := range c.Outputs {
				vi, ok := g.index[v]
				if !ok {
					continue
				}
				key := [2]int{ui, vi}
				if edgeSet[key] {
					continue
				}
				edgeSet[key] = true
				g.fwd[ui] = append(g.fwd[ui], vi)
				g.rev[vi] = append(g.rev[vi], ui)
			}
		}
	}

	g.removeBackEdges(o.verbose)
	return g, nil
}

func collectNetIds(nl *netlist.Netlist) []netlist.NetId {
	seen := make(map[netlist.NetId]bool)
	add := func(id netlist.NetId) {
		seen[id] = true
	}
	for _, c := range nl.Cells() {
		for _, u := range c.Inputs {
			add(u)
		}
		for _, v := range c.Outputs {
			add(v)
		}
	}
	for _, id := range nl.PrimaryInputs() {
		add(id)
	}
	for _, id := range nl.PrimaryOutputs() {
		add(id)
	}
	ids := make([]netlist.NetId, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// removeBackEdges runs DFS from every node, tracking visited and
// on-stack sets. On encountering an edge to an on-stack neighbor (a
// back-edge), the edge is erased in place and logged (§4.3).
func (g *Graph) removeBackEdges(verbose bool) {
	n := g.N()
	visited := make([]bool, n)
	onStack := make([]bool, n)

	var visit func(u int)
	visit = func(u int) {
		visited[u] = true
		onStack[u] = true

		kept := g.fwd[u][:0]
		for _, v := range g.fwd[u] {
			if onStack[v] {
				g.RemovedBackEdges = append(g.RemovedBackEdges, [2]netlist.NetId{g.ids[u], g.ids[v]})
				if verbose {
					log.Printf("dag: removed back-edge %d -> %d", g.ids[u], g.ids[v])
				}
				g.removeRevEdge(v, u)
				continue
			}
			kept = append(kept, v)
			if !visited[v] {
				visit(v)
			}
		}
		g.fwd[u] = kept
		onStack[u] = false
	}

	for u := 0; u < n; u++ {
		if !visited[u] {
			visit(u)
		}
	}
}

// removeRevEdge deletes the rev[v] entry pointing at u.
func (g *Graph) removeRevEdge(v, u int) {
	kept := g.rev[v][:0]
	for _, x := range g.rev[v] {
		if x != u {
			kept = append(kept, x)
		}
	}
	g.rev[v] = kept
}

// buildOptions configures Build.
type buildOptions struct {
	verbose bool
}

// Option configures Build.
type Option func(*buildOptions)

// WithVerbose enables diagnostic logging of removed back-edges.
func WithVerbose(v bool) Option {
	return func(o *buildOptions) { o.verbose = v }
}
