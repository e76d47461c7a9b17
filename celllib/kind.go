package celllib

// CellKind is a closed enumeration of standard-cell types recognized by
// the synthesis-tool netlist format (§6.1 of the spec this library was
// built against). Unrecognized type strings map to KindUnknown at parse
// time; analysis proceeds with the fallback parameters in Params.
type CellKind int

const (
	KindUnknown CellKind = iota

	KindBuf
	KindInv

	KindAnd2
	KindAnd3
	KindAnd4
	KindNand2
	KindNand3
	KindNand4

	KindOr2
	KindOr3
	KindOr4
	KindNor2
	KindNor3
	KindNor4

	KindXor2
	KindXnor2

	KindAoi21
	KindAoi22
	KindOai21
	KindOai22

	KindHalfAdder

	KindDffP
	KindDffN
	KindDffPR
	KindDffPS
	KindDffScan

	KindClkBuf
)

// String reports the canonical cell-type name used in reports and logs.
func (k CellKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

var kindNames = map[CellKind]string{
	KindUnknown:  "UNKNOWN",
	KindBuf:      "BUF",
	KindInv:      "NOT",
	KindAnd2:     "AND2",
	KindAnd3:     "AND3",
	KindAnd4:     "AND4",
	KindNand2:    "NAND2",
	KindNand3:    "NAND3",
	KindNand4:    "NAND4",
	KindOr2:      "OR2",
	KindOr3:      "OR3",
	KindOr4:      "OR4",
	KindNor2:     "NOR2",
	KindNor3:     "NOR3",
	KindNor4:     "NOR4",
	KindXor2:     "XOR2",
	KindXnor2:    "XNOR2",
	KindAoi21:    "AOI21",
	KindAoi22:    "AOI22",
	KindOai21:    "OAI21",
	KindOai22:    "OAI22",
	KindHalfAdder: "HA",
	KindDffP:     "DFF_P",
	KindDffN:     "DFF_N",
	KindDffPR:    "DFF_PR",
	KindDffPS:    "DFF_PS",
	KindDffScan:  "DFF_SCAN",
	KindClkBuf:   "CLKBUF",
}

// typeAliases maps the raw `type` string as it appears in the synthesis
// JSON (§6.1) to its CellKind. Lookups are case-sensitive; an unmatched
// string falls back to KindUnknown (UnknownCellType, §7 — not an error).
var typeAliases = map[string]CellKind{
	"BUF":      KindBuf,
	"NOT":      KindInv,
	"INV":      KindInv,
	"AND2":     KindAnd2,
	"AND":      KindAnd2,
	"AND3":     KindAnd3,
	"AND4":     KindAnd4,
	"NAND2":    KindNand2,
	"NAND3":    KindNand3,
	"NAND4":    KindNand4,
	"OR2":      KindOr2,
	"OR3":      KindOr3,
	"OR4":      KindOr4,
	"NOR2":     KindNor2,
	"NOR3":     KindNor3,
	"NOR4":     KindNor4,
	"XOR2":     KindXor2,
	"XOR":      KindXor2,
	"XNOR2":    KindXnor2,
	"XNOR":     KindXnor2,
	"AOI21":    KindAoi21,
	"AOI22":    KindAoi22,
	"OAI21":    KindOai21,
	"OAI22":    KindOai22,
	"HA":       KindHalfAdder,
	"DFF_P":    KindDffP,
	"DFF_N":    KindDffN,
	"DFF_PR":   KindDffPR,
	"DFF_PS":   KindDffPS,
	"DFF_SCAN": KindDffScan,
	"CLKBUF":   KindClkBuf,
}

// ParseKind resolves a raw synthesis-tool type string to a CellKind,
// falling back to KindUnknown for anything it does not recognize.
func ParseKind(raw string) CellKind {
	if k, ok := typeAliases[raw]; ok {
		return k
	}
	return KindUnknown
}

// sequentialKinds is the subset of CellKind representing flip-flops.
// Every kind in this set reports a sentinel (non-positive) intrinsic
// delay: downstream code treats it as a timing endpoint rather than a
// combinational pass-through (§4.1).
var sequentialKinds = map[CellKind]bool{
	KindDffP:    true,
	KindDffN:    true,
	KindDffPR:   true,
	KindDffPS:   true,
	KindDffScan: true,
}

// IsSequential reports whether kind is a flip-flop.
func (k CellKind) IsSequential() bool {
	return sequentialKinds[k]
}

// clockBufferKinds is the subset of CellKind dedicated to clock
// distribution buffering.
var clockBufferKinds = map[CellKind]bool{
	KindClkBuf: true,
}

// IsClockBuffer reports whether kind is a dedicated clock buffer.
func (k CellKind) IsClockBuffer() bool {
	return clockBufferKinds[k]
}
