package content

import (
	"strings"
	"testing"
)

func TestDrawRoundedRectClampsOversizedRadii(t *testing.T) {
	e := NewEmitter(nil)
	e.DrawRoundedRect(0, 0, 10, 10, 100, 100)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	out := string(e.Bytes())
	if n := strings.Count(out, " c\n"); n != 4 {
		t.Errorf("expected 4 corner curves, got %d in %q", n, out)
	}
	if n := strings.Count(out, " l\n"); n != 2 {
		t.Errorf("expected 2 connecting line segments, got %d in %q", n, out)
	}
	if !strings.HasSuffix(out, "h\n") {
		t.Errorf("expected DrawRoundedRect to close its path, got %q", out)
	}
}

func TestDrawRoundedRectZeroRadiiStillFourCurves(t *testing.T) {
	e := NewEmitter(nil)
	e.DrawRoundedRect(0, 0, 10, 5, 0, 0)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	if n := strings.Count(string(e.Bytes()), " c\n"); n != 4 {
		t.Errorf("expected 4 (degenerate) corner curves even with zero radii, got %d", n)
	}
}

func TestEllipticalArcQuarterCircleEmitsOneSegment(t *testing.T) {
	e := NewEmitter(nil)
	e.MoveTo(10, 0)
	e.EllipticalArc(10, 0, 10, 10, 0, false, true, 0, 10)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	out := string(e.Bytes())
	if n := strings.Count(out, " c\n"); n != 1 {
		t.Errorf("a quarter-circle arc should need exactly 1 cubic segment, got %d in %q", n, out)
	}
}

func TestEllipticalArcLargeArcNeedsMultipleSegments(t *testing.T) {
	e := NewEmitter(nil)
	e.MoveTo(10, 0)
	e.EllipticalArc(10, 0, 10, 10, 0, true, true, 0, 10)
	if e.Err != nil {
		t.Fatalf("unexpected error: %v", e.Err)
	}
	out := string(e.Bytes())
	if n := strings.Count(out, " c\n"); n < 2 {
		t.Errorf("a large arc sweeping past π/2 should split into multiple segments, got %d in %q", n, out)
	}
}
