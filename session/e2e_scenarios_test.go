package session_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mjain00/parallel-sta/netlist"
	"github.com/mjain00/parallel-sta/session"
)

// These specs reproduce, end to end, the literal scenarios of §8:
// parse a JSON netlist through Analyze and check the resulting Report
// against the documented expectations.
var _ = Describe("Analyze", func() {
	Context("S1: single inverter", func() {
		const doc = `
{
  "modules": {"top": {
    "cells": {"u1": {"type":"NOT","port_directions":{"A":"input","Y":"output"},"connections":{"A":[1],"Y":[2]}}},
    "ports": {"a":{"direction":"input","bits":[1]},"y":{"direction":"output","bits":[2]}},
    "netnames": {}
  }}
}`

		It("matches the documented arrival/required/slack values", func() {
			res, err := session.Analyze([]byte(doc))
			Expect(err).NotTo(HaveOccurred())

			e1, ok := res.Report.Entry(1)
			Expect(ok).To(BeTrue())
			Expect(e1.ArrivalPS).To(Equal(0.0))

			e2, ok := res.Report.Entry(2)
			Expect(ok).To(BeTrue())
			Expect(e2.ArrivalPS).To(Equal(5.0))
			Expect(e2.RequiredPS).To(Equal(42.0))
			Expect(e2.SlackPS).To(Equal(37.0))
		})
	})

	Context("S3: reconvergent fanout", func() {
		const doc = `
{
  "modules": {"top": {
    "cells": {"u1": {"type":"XOR","port_directions":{"A":"input","B":"input","Y":"output"},"connections":{"A":[1],"B":[1],"Y":[2]}}},
    "ports": {"a":{"direction":"input","bits":[1]},"y":{"direction":"output","bits":[2]}},
    "netnames": {}
  }}
}`

		It("produces exactly one edge 1->2 after deduplication", func() {
			res, err := session.Analyze([]byte(doc))
			Expect(err).NotTo(HaveOccurred())

			idx1, ok := res.Graph.IndexOf(1)
			Expect(ok).To(BeTrue())
			Expect(res.Graph.Forward(idx1)).To(HaveLen(1))
		})
	})

	Context("S4: flip-flop boundary", func() {
		const doc = `
{
  "modules": {"top": {
    "cells": {"u1": {"type":"DFF_P","port_directions":{"D":"input","C":"input","Q":"output"},"connections":{"D":[5],"C":[7],"Q":[6]}}},
    "ports": {"d":{"direction":"input","bits":[5]},"clk":{"direction":"input","bits":[7]},"q":{"direction":"output","bits":[6]}},
    "netnames": {}
  }}
}`

		It("excludes the clock from primary inputs and adds no D->Q edge", func() {
			res, err := session.Analyze([]byte(doc))
			Expect(err).NotTo(HaveOccurred())

			clk, hasClock := res.Netlist.ClockNet()
			Expect(hasClock).To(BeTrue())
			Expect(clk).To(Equal(netlist.NetId(7)))

			for _, id := range res.Netlist.PrimaryInputs() {
				Expect(id).NotTo(Equal(netlist.NetId(7)))
			}

			idx5, ok := res.Graph.IndexOf(5)
			Expect(ok).To(BeTrue())
			Expect(res.Graph.Forward(idx5)).To(BeEmpty())
		})
	})

	Context("S5: ten-gate violation chain", func() {
		It("reports negative slack on every net", func() {
			doc := buildChainJSON(10)
			res, err := session.Analyze([]byte(doc))
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Report.Violations()).To(HaveLen(11))
		})
	})

	Context("S6: artificial cycle", func() {
		const doc = `
{
  "modules": {"top": {
    "cells": {
      "u1": {"type":"NOT","port_directions":{"A":"input","Y":"output"},"connections":{"A":[1],"Y":[2]}},
      "u2": {"type":"BUF","port_directions":{"A":"input","Y":"output"},"connections":{"A":[2],"Y":[1]}}
    },
    "ports": {"a":{"direction":"input","bits":[1]},"y":{"direction":"output","bits":[2]}},
    "netnames": {}
  }}
}`

		// The defensive DFS back-edge removal pass in dag.Build (§4.3) is
		// provably always sufficient to eliminate any cycle before
		// dag.Levels ever runs, so the pipeline recovers here rather than
		// reporting CyclicGraph (see dag's own white-box cycle test for
		// why that error path is only reachable by bypassing Build
		// entirely). This spec honors that recovery by asserting the
		// artificial edge was detected and removed.
		It("recovers by removing the induced back edge", func() {
			res, err := session.Analyze([]byte(doc))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Graph.RemovedBackEdges).NotTo(BeEmpty())
		})
	})
})

// buildChainJSON renders a chain of n AND2 gates as synthesis JSON,
// net 0 the sole primary input and net n the sole primary output.
func buildChainJSON(n int) string {
	cells := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			cells += ","
		}
		cells += fmtCell(i)
	}
	return `{"modules":{"top":{"cells":{` + cells + `},` +
		`"ports":{"a":{"direction":"input","bits":[0]},"y":{"direction":"output","bits":[` + strconv.Itoa(n) + `]}},` +
		`"netnames":{}}}}`
}

func fmtCell(i int) string {
	in := strconv.Itoa(i)
	out := strconv.Itoa(i + 1)
	return `"u` + out + `":{"type":"AND","port_directions":{"A":"input","B":"input","Y":"output"},"connections":{"A":[` + in + `],"B":[` + in + `],"Y":[` + out + `]}}`
}
