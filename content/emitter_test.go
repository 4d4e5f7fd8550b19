package content

import (
	"strings"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:      "0",
		1:      "1",
		1.5:    "1.5",
		-2.25:  "-2.25",
		100:    "100",
	}
	for in, want := range cases {
		if got := format(in); got != want {
			t.Errorf("format(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestPathOperators(t *testing.T) {
	e := NewEmitter(nil)
	e.MoveTo(0, 0)
	e.LineTo(10, 0)
	e.CurveTo(10, 5, 5, 10, 0, 10)
	e.ClosePath()
	e.FillPath(false)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	got := e.Bytes()
	want := "0 0 m\n10 0 l\n10 5 5 10 0 10 c\nh\nf\n"
	if string(got) != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestSaveRestoreBalance(t *testing.T) {
	e := NewEmitter(nil)
	e.SaveContext()
	e.SaveContext()
	e.RestoreContext()
	e.RestoreContext()
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	if len(e.stack) != 0 {
		t.Errorf("stack not balanced: %d left", len(e.stack))
	}
}

// RestoreContext on an empty stack silently no-ops, per §7's
// StackUnderflow contract, rather than setting an error.
func TestRestoreContextEmptyStackIsNoop(t *testing.T) {
	e := NewEmitter(nil)
	e.RestoreContext()
	if e.Err != nil {
		t.Fatalf("expected silent no-op, got error: %v", e.Err)
	}
	if len(e.Bytes()) != 0 {
		t.Errorf("expected no bytes emitted, got %q", e.Bytes())
	}
}

func TestDrawEllipseTokenCounts(t *testing.T) {
	e := NewEmitter(nil)
	e.DrawEllipse(5, 5, 3, 2)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	out := string(e.Bytes())
	if n := strings.Count(out, " m\n"); n != 1 {
		t.Errorf("expected exactly 1 m token, got %d in %q", n, out)
	}
	if n := strings.Count(out, " c\n"); n != 4 {
		t.Errorf("expected exactly 4 c tokens, got %d in %q", n, out)
	}
}

func TestEllipticalArcCoincidentEndpointsEmitNothing(t *testing.T) {
	e := NewEmitter(nil)
	e.MoveTo(10, 10)
	e.EllipticalArc(10, 10, 5, 5, 0, false, false, 10, 10)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	out := string(e.Bytes())
	if strings.Contains(out, " c\n") || strings.Contains(out, " l\n") {
		t.Errorf("expected no drawing tokens for coincident endpoints, got %q", out)
	}
}

func TestEllipticalArcTinyRadiusEmitsLine(t *testing.T) {
	e := NewEmitter(nil)
	e.MoveTo(0, 0)
	e.EllipticalArc(0, 0, 1e-12, 1e-12, 0, false, false, 10, 10)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	out := string(e.Bytes())
	if !strings.HasSuffix(out, "10 10 l\n") {
		t.Errorf("expected a single line token, got %q", out)
	}
}
