package content

import (
	"strings"
	"testing"

	"github.com/gedetika/dart-pdf/geometry"
)

func TestSetLineWidthRejectsNegative(t *testing.T) {
	e := NewEmitter(nil)
	e.SetLineWidth(-1)
	if e.Err == nil {
		t.Fatal("expected an error for a negative line width")
	}
}

func TestSetLineDashEmitsArrayAndPhase(t *testing.T) {
	e := NewEmitter(nil)
	e.SetLineDash([]float64{3, 1}, 0)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	want := "[3 1] 0 d\n"
	if got := string(e.Bytes()); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestSetMiterLimitRejectsBelowOne(t *testing.T) {
	e := NewEmitter(nil)
	e.SetMiterLimit(0.5)
	if e.Err == nil {
		t.Fatal("expected an error for a miter limit below 1")
	}
}

func TestSetGraphicStateRegistersResourceName(t *testing.T) {
	e := NewEmitter(nil)
	e.SetGraphicState(fakeExtGState{name: "GS1"})
	out := string(e.Bytes())
	if !strings.HasPrefix(out, "/E1 gs") {
		t.Errorf("expected an allocated /E1 resource name, got %q", out)
	}
}

func TestSetTransformAccumulatesCTM(t *testing.T) {
	e := NewEmitter(nil)
	before := e.CTM()
	e.SetTransform(geometry.Translate(5, 5))
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	if e.CTM() == before {
		t.Errorf("expected CTM to change after SetTransform")
	}
}
