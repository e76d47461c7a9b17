package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjain00/parallel-sta/celllib"
	"github.com/mjain00/parallel-sta/dag"
	"github.com/mjain00/parallel-sta/netlist"
	"github.com/mjain00/parallel-sta/report"
	"github.com/mjain00/parallel-sta/timing"
)

// buildS5Report runs C3-C6 over a chain of n AND2 gates and returns the
// resulting Report, mirroring timing_test.go's s5Chain fixture.
func buildS5Report(t *testing.T, n int) (*report.Report, *netlist.Netlist) {
	t.Helper()
	nl := netlist.New()
	for i := 0; i < n; i++ {
		in := netlist.NetId(i)
		out := netlist.NetId(i + 1)
		nl.AddCell(&netlist.Cell{
			Name:    "u",
			Kind:    celllib.KindAnd2,
			Id:      out,
			Inputs:  []netlist.NetId{in, in},
			Outputs: []netlist.NetId{out},
			Delay:   9,
		})
	}
	nl.SetPrimaryInputs([]netlist.NetId{0})
	nl.SetPrimaryOutputs([]netlist.NetId{netlist.NetId(n)})
	nl.SetNetName(netlist.NetId(n), "y")

	g, err := dag.Build(nl)
	require.NoError(t, err)
	ll, err := dag.Levels(g)
	require.NoError(t, err)

	eng := timing.NewEngine(g, nl, timing.DefaultOptions())
	eng.Forward(ll)

	outIdx, ok := g.IndexOf(netlist.NetId(n))
	require.True(t, ok)
	eng.SeedPrimaryOutputs([]int{outIdx})
	eng.Backward(ll)

	return report.Build(g, nl, eng), nl
}

func TestReport_ViolationsAndWorstSlack(t *testing.T) {
	r, _ := buildS5Report(t, 10)

	violations := r.Violations()
	require.Len(t, violations, 11) // every net 0..10 violates (§8 S5)

	worst, ok := r.WorstSlack()
	require.True(t, ok)
	require.True(t, worst.IsViolation())

	slack, ok := r.Slack(10)
	require.True(t, ok)
	require.Less(t, slack, 0.0)

	entry, ok := r.Entry(10)
	require.True(t, ok)
	require.Equal(t, "y", entry.Name)
}

func TestReport_UnreachedNetIsAbsent(t *testing.T) {
	r, _ := buildS5Report(t, 3)
	_, ok := r.Slack(999)
	require.False(t, ok)
}

func TestReport_NoViolationsOnShortChain(t *testing.T) {
	r, _ := buildS5Report(t, 1)
	require.Empty(t, r.Violations())
	entries := r.Entries()
	require.Len(t, entries, 2)
}
