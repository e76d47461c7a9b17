// Package netlist is the in-memory representation of a synthesized
// gate-level circuit: cells, nets, primary inputs/outputs, and clock
// identification (§3, §4.2 of the timing-analysis design this package
// implements). It also hosts the synthesis-tool JSON ingester (§6.1),
// which is an external collaborator to the timing-analysis core but is
// shipped here as the only concrete producer of a Netlist.
package netlist

import "github.com/mjain00/parallel-sta/celllib"

// NetId identifies a wire. Ids come from the input data and are not
// necessarily contiguous or dense; callers must not assume density.
type NetId int64

// Cell is a driver gate instance.
//
// Id is the NetId of the cell's first output (tie-break: lowest index in
// the cell's declared output-bit list, §3). Every output NetId appears
// as the Id of exactly one Cell; primary-input nets have no driver.
type Cell struct {
	Name    string // instance name, for diagnostics
	Kind    celllib.CellKind
	Id      NetId
	Inputs  []NetId
	Outputs []NetId

	Delay int64   // d_cell, picoseconds (celllib.CellParams.DelayPS)
	R     float64 // driving resistance, ohms
	C     float64 // input capacitance, farads
}

// Netlist holds a fully parsed, library-attached circuit ready for
// graph construction (C3).
type Netlist struct {
	cells map[NetId]*Cell // driver NetId -> Cell
	order []NetId         // deterministic iteration order (parse order)

	primaryInputs  []NetId
	primaryOutputs []NetId
	clockNet       *NetId
	netNames       map[NetId]string
}

// New builds an empty Netlist. Exported for tests and for callers that
// construct a Netlist programmatically rather than via Parse.
func New() *Netlist {
	return &Netlist{
		cells:    make(map[NetId]*Cell),
		netNames: make(map[NetId]string),
	}
}

// AddCell attaches a fully formed cell to the netlist, indexed by its
// Id (first output). Library parameters must already be populated on c
// (Parse does this in loadCells via celllib.Params) before calling AddCell.
func (nl *Netlist) AddCell(c *Cell) {
	if _, exists := nl.cells[c.Id]; !exists {
		nl.order = append(nl.order, c.Id)
	}
	nl.cells[c.Id] = c
}

// Cells returns all cells in deterministic (parse) order.
func (nl *Netlist) Cells() []*Cell {
	out := make([]*Cell, 0, len(nl.order))
	for _, id := range nl.order {
		out = append(out, nl.cells[id])
	}
	return out
}

// DriverOf returns the cell that drives net id, if any. Primary-input
// nets have no driver and return ok=false.
func (nl *Netlist) DriverOf(id NetId) (*Cell, bool) {
	c, ok := nl.cells[id]
	return c, ok
}

// PrimaryInputs returns the NetIds driven from outside the circuit,
// excluding the clock net.
func (nl *Netlist) PrimaryInputs() []NetId { return nl.primaryInputs }

// PrimaryOutputs returns the observed NetIds.
func (nl *Netlist) PrimaryOutputs() []NetId { return nl.primaryOutputs }

// ClockNet returns the NetId identified as the clock pin of a
// sequential cell during parsing, if any.
func (nl *Netlist) ClockNet() (NetId, bool) {
	if nl.clockNet == nil {
		return 0, false
	}
	return *nl.clockNet, true
}

// NetName returns the human-readable label for id, or "" if none was
// recorded.
func (nl *Netlist) NetName(id NetId) string {
	return nl.netNames[id]
}

// SetNetName records a human-readable label for id.
func (nl *Netlist) SetNetName(id NetId, name string) {
	nl.netNames[id] = name
}

// SetPrimaryInputs replaces the primary-input set. Exported so Parse (and
// tests) can construct a Netlist without exposing mutable internal slices.
func (nl *Netlist) SetPrimaryInputs(ids []NetId) { nl.primaryInputs = ids }

// SetPrimaryOutputs replaces the primary-output set.
func (nl *Netlist) SetPrimaryOutputs(ids []NetId) { nl.primaryOutputs = ids }

// SetClockNet records the clock net identified during parsing.
func (nl *Netlist) SetClockNet(id NetId) {
	v := id
	nl.clockNet = &v
}
