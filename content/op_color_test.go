package content

import (
	"testing"

	"github.com/gedetika/dart-pdf/content/color"
)

func TestSetFillColorEmitsOperator(t *testing.T) {
	e := NewEmitter(nil)
	e.SetFillColor(color.RGB{R: 1, G: 0, B: 0.5})
	want := "1 0 0.5 rg\n"
	if got := string(e.Bytes()); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestSetFillColorSuppressesRedundantReemission(t *testing.T) {
	e := NewEmitter(nil)
	e.SetFillColor(color.Gray(0.2))
	e.SetFillColor(color.Gray(0.2))
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	want := "0.2 g\n"
	if got := string(e.Bytes()); got != want {
		t.Errorf("expected the second identical fill color to be suppressed, got %q want %q", got, want)
	}
}

func TestSetStrokeColorAlwaysEmits(t *testing.T) {
	e := NewEmitter(nil)
	e.SetStrokeColor(color.Gray(0.2))
	e.SetStrokeColor(color.Gray(0.2))
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	want := "0.2 G\n0.2 G\n"
	if got := string(e.Bytes()); got != want {
		t.Errorf("stroke color re-emission should not be suppressed, got %q want %q", got, want)
	}
}

func TestApplyShaderRegistersResourceName(t *testing.T) {
	e := NewEmitter(nil)
	e.ApplyShader(fakeShading{name: "Sh1"})
	if got := string(e.Bytes()); got != "/Sh1 sh\n" {
		t.Errorf("got %q", got)
	}
}

func TestSetFillPatternEmitsColorSpaceThenName(t *testing.T) {
	e := NewEmitter(nil)
	e.SetFillPattern(fakePattern{name: "P1"})
	want := "/Pattern cs\n/P1 scn\n"
	if got := string(e.Bytes()); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
