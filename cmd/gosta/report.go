package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mjain00/parallel-sta/session"
)

// printSlackTable renders res.Report as a human-readable table (§4.7,
// "Consumers format human output; no analysis logic lives here").
func printSlackTable(res *session.Result) {
	t := table.NewWriter()
	t.SetTitle("Slack Report")
	t.AppendHeader(table.Row{"Net", "Name", "Arrival (ps)", "Required (ps)", "Slack (ps)", "Status"})

	for _, e := range res.Report.Entries() {
		name := e.Name
		if name == "" {
			name = "-"
		}
		status := "ok"
		switch {
		case e.IsViolation():
			status = "VIOLATION"
		case e.IsCritical():
			status = "critical"
		}
		t.AppendRow(table.Row{
			int64(e.Net), name,
			fmt.Sprintf("%.2f", e.ArrivalPS),
			fmt.Sprintf("%.2f", e.RequiredPS),
			fmt.Sprintf("%.2f", e.SlackPS),
			status,
		})
	}

	fmt.Println(t.Render())

	violations := res.Report.Violations()
	fmt.Printf("%d net(s) analyzed, %d violation(s)\n", len(res.Report.Entries()), len(violations))
}
