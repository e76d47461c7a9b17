package report

import (
	"sort"

	"github.com/mjain00/parallel-sta/dag"
	"github.com/mjain00/parallel-sta/netlist"
	"github.com/mjain00/parallel-sta/timing"
)

// Entry is one net's resolved timing snapshot (§4.7): arrival, required,
// and their difference, slack.
type Entry struct {
	Net      netlist.NetId
	Name     string
	ArrivalPS  float64
	RequiredPS float64
	SlackPS    float64
}

// IsViolation reports whether this net's slack is negative (§4.6
// "Classification: slack < 0 -> violation").
func (e Entry) IsViolation() bool { return e.SlackPS < 0 }

// IsCritical reports whether this net sits exactly on the critical path
// (§4.6 "slack == 0 -> critical path").
func (e Entry) IsCritical() bool { return e.SlackPS == 0 }

// Report is the immutable slack map produced once the Backward Engine
// completes (§4.7, "get_slack() -> map<NetId, f64>, immutable after
// backward pass completes"). Building a Report does not itself run any
// analysis; it only snapshots what timing.Engine already computed.
type Report struct {
	entries map[netlist.NetId]Entry
	order   []netlist.NetId // ascending NetId, for deterministic iteration
}

// Build snapshots every net in g into a Report, resolving display names
// from nl and resolved timing values from eng. eng.Backward must already
// have completed; Build performs no further propagation.
func Build(g *dag.Graph, nl *netlist.Netlist, eng *timing.Engine) *Report {
	r := &Report{
		entries: make(map[netlist.NetId]Entry, g.N()),
		order:   make([]netlist.NetId, g.N()),
	}
	for i := 0; i < g.N(); i++ {
		id := g.NetAt(i)
		r.order[i] = id
		r.entries[id] = Entry{
			Net:        id,
			Name:       nl.NetName(id),
			ArrivalPS:  eng.ArrivalPS(i),
			RequiredPS: eng.RequiredPS(i),
			SlackPS:    eng.SlackPS(i),
		}
	}
	sort.Slice(r.order, func(i, j int) bool { return r.order[i] < r.order[j] })
	return r
}

// Slack returns the slack, in picoseconds, of net, and whether net was
// reached by the analysis at all.
func (r *Report) Slack(net netlist.NetId) (float64, bool) {
	e, ok := r.entries[net]
	if !ok {
		return 0, false
	}
	return e.SlackPS, true
}

// Entry returns the full timing snapshot for net.
func (r *Report) Entry(net netlist.NetId) (Entry, bool) {
	e, ok := r.entries[net]
	return e, ok
}

// Entries returns every reached net's snapshot, ordered by ascending
// NetId, for deterministic report formatting.
func (r *Report) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// Violations returns every net whose slack is negative, ordered by
// ascending NetId.
func (r *Report) Violations() []Entry {
	var out []Entry
	for _, id := range r.order {
		if e := r.entries[id]; e.IsViolation() {
			out = append(out, e)
		}
	}
	return out
}

// WorstSlack returns the entry with the most negative (or, absent any
// violation, the smallest non-negative) slack, and false if the report
// has no entries at all.
func (r *Report) WorstSlack() (Entry, bool) {
	if len(r.order) == 0 {
		return Entry{}, false
	}
	worst := r.entries[r.order[0]]
	for _, id := range r.order[1:] {
		if e := r.entries[id]; e.SlackPS < worst.SlackPS {
			worst = e
		}
	}
	return worst, true
}
