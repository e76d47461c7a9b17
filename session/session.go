package session

import (
	"fmt"

	"github.com/mjain00/parallel-sta/dag"
	"github.com/mjain00/parallel-sta/netlist"
	"github.com/mjain00/parallel-sta/report"
	"github.com/mjain00/parallel-sta/timing"
)

// Result bundles every artifact Analyze produces, in case a caller needs
// more than the slack map (e.g. a CLI wanting cycle counts or level
// structure for -v diagnostics).
type Result struct {
	Netlist *netlist.Netlist
	Graph   *dag.Graph
	Report  *report.Report
}

// Analyze runs the full C1-C7 pipeline over a synthesis-tool JSON
// document already in memory: parse, build the net-level DAG, partition
// into levels, run the Forward and Backward Engines, and snapshot the
// result into a Report.
func Analyze(data []byte, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	nl, err := netlist.Parse(data, netlist.WithVerbose(cfg.verbose))
	if err != nil {
		return nil, fmt.Errorf("session: parse netlist: %w", err)
	}

	g, err := dag.Build(nl, dag.WithVerbose(cfg.verbose))
	if err != nil {
		return nil, fmt.Errorf("session: build graph: %w", err)
	}

	ll, err := dag.Levels(g)
	if err != nil {
		return nil, fmt.Errorf("session: partition levels: %w", err)
	}

	to := timing.DefaultOptions()
	to.Verbose = cfg.verbose
	for _, opt := range cfg.timingOpts {
		opt(&to)
	}

	eng := timing.NewEngine(g, nl, to)
	eng.Forward(ll)

	var poIdx []int
	for _, id := range nl.PrimaryOutputs() {
		if idx, ok := g.IndexOf(id); ok {
			poIdx = append(poIdx, idx)
		}
	}
	eng.SeedPrimaryOutputs(poIdx)
	eng.Backward(ll)

	return &Result{
		Netlist: nl,
		Graph:   g,
		Report:  report.Build(g, nl, eng),
	}, nil
}

// AnalyzeFrom loads the netlist document from ing before running
// Analyze, wrapping any load failure in ErrIngestFailed.
func AnalyzeFrom(ing Ingester, opts ...Option) (*Result, error) {
	data, err := ing.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIngestFailed, err)
	}
	return Analyze(data, opts...)
}
