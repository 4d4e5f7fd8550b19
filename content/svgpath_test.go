package content

import "testing"

// literalPath is a trivial SvgPathParser test double that replays a
// pre-built list of events, standing in for real SVG tokenization (out
// of scope for this package).
type literalPath struct {
	moveTo  [2]float64
	lineTo  [2]float64
	cubicTo [6]float64
}

func (p literalPath) Parse(d string, sink PathSink) error {
	sink.MoveTo(p.moveTo[0], p.moveTo[1])
	sink.LineTo(p.lineTo[0], p.lineTo[1])
	sink.CubicTo(p.cubicTo[0], p.cubicTo[1], p.cubicTo[2], p.cubicTo[3], p.cubicTo[4], p.cubicTo[5])
	return nil
}

func TestPathBoundsLineEndpoints(t *testing.T) {
	p := literalPath{
		moveTo:  [2]float64{0, 0},
		lineTo:  [2]float64{10, 2},
		cubicTo: [6]float64{10, 2, 10, 2, 10, 2}, // degenerate cubic, no extrema
	}
	rect, err := PathBounds(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if rect.X != 0 || rect.Y != 0 || rect.Right() != 10 || rect.Bottom() != 2 {
		t.Errorf("unexpected bounds: %+v", rect)
	}
}

func TestPathBoundsCubicExtrema(t *testing.T) {
	// A cubic bulging well past its endpoints on the Y axis.
	p := literalPath{
		moveTo:  [2]float64{0, 0},
		lineTo:  [2]float64{0, 0},
		cubicTo: [6]float64{0, 100, 10, 100, 10, 0},
	}
	rect, err := PathBounds(p, "")
	if err != nil {
		t.Fatal(err)
	}
	if rect.Bottom() <= 10 {
		t.Errorf("expected the cubic's bulge to extend bounds beyond endpoints, got %+v", rect)
	}
}

func TestPathBoundsEmptyPathIsZeroRect(t *testing.T) {
	rect, err := PathBounds(emptyPathParser{}, "")
	if err != nil {
		t.Fatal(err)
	}
	if rect != (Rect{}) {
		t.Errorf("expected zero rect for an empty path, got %+v", rect)
	}
}

type emptyPathParser struct{}

func (emptyPathParser) Parse(d string, sink PathSink) error { return nil }
