package netlist

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/mjain00/parallel-sta/celllib"
)

// ParseOptions configures Parse. The zero value is the default: no
// diagnostic logging.
type ParseOptions struct {
	// Verbose enables diagnostic logging for recovered errors
	// (MalformedInput, NonIntegerBit, UnknownCellType), mirroring the
	// -v/--verbose CLI flag of §6.2.
	Verbose bool
}

// Option configures a ParseOptions value.
type Option func(*ParseOptions)

// WithVerbose enables diagnostic logging of recovered parse errors.
func WithVerbose(v bool) Option {
	return func(o *ParseOptions) { o.Verbose = v }
}

// --- wire-format structures (§6.1) ------------------------------------

type rawTop struct {
	Modules map[string]rawModule `json:"modules"`
}

type rawModule struct {
	Cells    map[string]rawCell    `json:"cells"`
	Ports    map[string]rawPort    `json:"ports"`
	Netnames map[string]rawNetname `json:"netnames"`
}

type rawCell struct {
	Type           string                     `json:"type"`
	PortDirections map[string]string          `json:"port_directions"`
	Connections    map[string][]json.RawMessage `json:"connections"`
}

type rawPort struct {
	Direction string            `json:"direction"`
	Bits      []json.RawMessage `json:"bits"`
}

type rawNetname struct {
	Bits []json.RawMessage `json:"bits"`
}

// Parse reads a synthesis-tool JSON document (§6.1) and builds a
// Netlist. Only the top module is analyzed; when multiple modules are
// present, the module whose name sorts first lexicographically is
// treated as top and only its cells, ports and netnames populate the
// returned Netlist; the other modules are not read or validated.
//
// Recovered errors (MalformedInput, NonIntegerBit, UnknownCellType, §7)
// are logged when Verbose is set and do not abort parsing; only a
// document that is not valid JSON or the absence of any module
// (ErrNoModules) is fatal.
func Parse(data []byte, opts ...Option) (*Netlist, error) {
	var o ParseOptions
	for _, opt := range opts {
		opt(&o)
	}

	var top rawTop
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("netlist: decode top-level JSON: %w", err)
	}
	if len(top.Modules) == 0 {
		return nil, ErrNoModules
	}

	names := make([]string, 0, len(top.Modules))
	for name := range top.Modules {
		names = append(names, name)
	}
	sort.Strings(names)
	topName := names[0]
	mod := top.Modules[topName]

	nl := New()
	p := &parser{nl: nl, opts: o}
	p.loadNetnames(mod.Netnames)
	p.loadCells(mod.Cells)
	p.loadPorts(mod.Ports)
	return nl, nil
}

type parser struct {
	nl   *Netlist
	opts ParseOptions
}

func (p *parser) warnf(sentinel error, format string, args ...interface{}) {
	if !p.opts.Verbose {
		return
	}
	if sentinel != nil {
		log.Printf("%s: %s", sentinel, fmt.Sprintf(format, args...))
	} else {
		log.Printf(format, args...)
	}
}

func (p *parser) loadNetnames(netnames map[string]rawNetname) {
	for name, nn := range netnames {
		bits, _ := p.decodeBits(nn.Bits)
		if len(bits) == 1 {
			p.nl.SetNetName(bits[0], name)
		} else {
			for i, id := range bits {
				p.nl.SetNetName(id, fmt.Sprintf("%s[%d]", name, i))
			}
		}
	}
}

// loadCells decodes every cell, skipping malformed ones (§7
// MalformedInput) and falling back to celllib.KindUnknown for
// unrecognized types (§7 UnknownCellType — not an error).
func (p *parser) loadCells(cells map[string]rawCell) {
	instNames := make([]string, 0, len(cells))
	for name := range cells {
		instNames = append(instNames, name)
	}
	sort.Strings(instNames) // deterministic traversal

	for _, instName := range instNames {
		rc := cells[instName]
		if rc.PortDirections == nil || rc.Connections == nil {
			p.warnf(ErrMalformedInput, "cell %q missing port_directions or connections", instName)
			continue
		}

		kind := celllib.ParseKind(rc.Type)
		if kind == celllib.KindUnknown && rc.Type != "" {
			p.warnf(nil, "cell %q: unknown cell type %q, using fallback params", instName, rc.Type)
		}

		outputPorts, inputPorts := p.splitPorts(instName, rc.PortDirections)

		var outputs []NetId
		for _, port := range outputPorts {
			bits, err := p.decodeBits(rc.Connections[port])
			if err != nil {
				p.warnf(ErrNonIntegerBit, "cell %q port %q: %v", instName, port, err)
			}
			outputs = append(outputs, bits...)
		}
		var inputs []NetId
		var clockCandidate (*NetId)
		for _, port := range inputPorts {
			bits, err := p.decodeBits(rc.Connections[port])
			if err != nil {
				p.warnf(ErrNonIntegerBit, "cell %q port %q: %v", instName, port, err)
			}
			inputs = append(inputs, bits...)
			if port == "C" && len(bits) > 0 {
				v := bits[0]
				clockCandidate = &v
			}
		}
		// The C port may also appear without a declared direction entry
		// for some synthesis flows; fall back to raw Connections.
		if clockCandidate == nil {
			if raw, ok := rc.Connections["C"]; ok {
				if bits, err := p.decodeBits(raw); err == nil && len(bits) > 0 {
					v := bits[0]
					clockCandidate = &v
				}
			}
		}

		if len(outputs) == 0 {
			p.warnf(ErrMalformedInput, "cell %q has no output connections, skipping", instName)
			continue
		}

		params := celllib.Params(kind)
		c := &Cell{
			Name:    instName,
			Kind:    kind,
			Id:      outputs[0],
			Inputs:  inputs,
			Outputs: outputs,
			Delay:   params.DelayPS,
			R:       params.R,
			C:       params.C,
		}
		p.nl.AddCell(c)

		// Clock identification (§6.1): the net on the C port of any
		// sequential cell is recorded as the clock.
		if kind.IsSequential() && clockCandidate != nil && p.nl.clockNet == nil {
			p.nl.SetClockNet(*clockCandidate)
		}
	}
}

// splitPorts partitions a cell's declared ports into (outputs, inputs),
// each sorted by port name for deterministic "first output" tie-breaking
// (§3: ties break on lowest index in the declared output-bit list, and
// since raw JSON object key order is not preserved by encoding/json,
// alphabetical port order is the deterministic substitute).
func (p *parser) splitPorts(instName string, dirs map[string]string) (outputs, inputs []string) {
	names := make([]string, 0, len(dirs))
	for name := range dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		switch dirs[name] {
		case "output":
			outputs = append(outputs, name)
		case "input":
			inputs = append(inputs, name)
		default:
			p.warnf(ErrMalformedInput, "cell %q port %q: unrecognized direction %q", instName, name, dirs[name])
		}
	}
	return outputs, inputs
}

func (p *parser) loadPorts(ports map[string]rawPort) {
	var primaryInputs, primaryOutputs []NetId
	names := make([]string, 0, len(ports))
	for name := range ports {
		names = append(names, name)
	}
	sort.Strings(names)

	clk, hasClock := p.nl.ClockNet()
	for _, name := range names {
		port := ports[name]
		bits, err := p.decodeBits(port.Bits)
		if err != nil {
			p.warnf(ErrNonIntegerBit, "port %q: %v", name, err)
		}
		switch port.Direction {
		case "input":
			for _, id := range bits {
				if hasClock && id == clk {
					continue // clock net is excluded from primary inputs (§6.1)
				}
				primaryInputs = append(primaryInputs, id)
			}
		case "output":
			primaryOutputs = append(primaryOutputs, bits...)
		default:
			p.warnf(ErrMalformedInput, "port %q: unrecognized direction %q", name, port.Direction)
		}
	}
	p.nl.SetPrimaryInputs(primaryInputs)
	p.nl.SetPrimaryOutputs(primaryOutputs)
}

// decodeBits converts a raw bits list into NetIds, skipping (and
// reporting via the returned error, non-fatal) any entry that is not an
// integer — §7 NonIntegerBit. Yosys-style string constants ("0","1",
// "x","z") in a bits list carry no NetId; they are skipped and reported
// through the returned error like any other non-integer entry.
func (p *parser) decodeBits(raw []json.RawMessage) ([]NetId, error) {
	out := make([]NetId, 0, len(raw))
	var firstErr error
	for _, r := range raw {
		var n int64
		if err := json.Unmarshal(r, &n); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %s", ErrNonIntegerBit, string(r))
			}
			continue
		}
		out = append(out, NetId(n))
	}
	return out, firstErr
}
