package celllib_test

import (
	"testing"

	"github.com/mjain00/parallel-sta/celllib"
)

func TestParams_SequentialSentinel(t *testing.T) {
	for _, k := range []celllib.CellKind{
		celllib.KindDffP, celllib.KindDffN, celllib.KindDffPR,
		celllib.KindDffPS, celllib.KindDffScan,
	} {
		if !k.IsSequential() {
			t.Errorf("%v: want IsSequential true", k)
		}
		p := celllib.Params(k)
		if p.DelayPS > 0 {
			t.Errorf("%v: DelayPS = %d; want <= 0 (sequential sentinel)", k, p.DelayPS)
		}
	}
}

func TestParams_UnknownFallback(t *testing.T) {
	p := celllib.Params(celllib.KindUnknown)
	if p.DelayPS != 0 || p.R != 100 || p.C != 0.3e-12 {
		t.Errorf("unknown fallback = %+v; want {0 100 3e-13}", p)
	}
	// A CellKind value outside the table entirely still resolves (MissingCellParams, §7).
	p2 := celllib.Params(celllib.CellKind(9999))
	if p2 != p {
		t.Errorf("missing-entry fallback = %+v; want %+v", p2, p)
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		raw  string
		want celllib.CellKind
	}{
		{"NOT", celllib.KindInv},
		{"AND2", celllib.KindAnd2},
		{"DFF_P", celllib.KindDffP},
		{"totally-unrecognized", celllib.KindUnknown},
	}
	for _, c := range cases {
		if got := celllib.ParseKind(c.raw); got != c.want {
			t.Errorf("ParseKind(%q) = %v; want %v", c.raw, got, c.want)
		}
	}
}

func TestCombinationalParamsPositive(t *testing.T) {
	combinational := []celllib.CellKind{
		celllib.KindBuf, celllib.KindInv, celllib.KindAnd2, celllib.KindNand2,
		celllib.KindOr2, celllib.KindNor2, celllib.KindXor2, celllib.KindXnor2,
		celllib.KindAoi21, celllib.KindOai21, celllib.KindHalfAdder, celllib.KindClkBuf,
	}
	for _, k := range combinational {
		if k.IsSequential() {
			t.Errorf("%v: unexpectedly sequential", k)
		}
		if p := celllib.Params(k); p.DelayPS <= 0 {
			t.Errorf("%v: DelayPS = %d; want > 0", k, p.DelayPS)
		}
	}
}

func TestClockBuffer(t *testing.T) {
	if !celllib.KindClkBuf.IsClockBuffer() {
		t.Error("KindClkBuf: want IsClockBuffer true")
	}
	if celllib.KindBuf.IsClockBuffer() {
		t.Error("KindBuf: want IsClockBuffer false")
	}
}
