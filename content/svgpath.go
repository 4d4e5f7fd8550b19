package content

import (
	"math"

	"github.com/gedetika/dart-pdf/geometry"
)

// PathSink receives path-construction events. It is implemented by
// *Emitter (to draw) and by boundingBoxSink (to measure), so an
// SvgPathParser can drive either one, or both in parallel over the same
// token stream.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	Close()
}

// CubicTo adapts Emitter's CurveTo to the PathSink contract.
func (e *Emitter) CubicTo(x1, y1, x2, y2, x3, y3 float64) { e.CurveTo(x1, y1, x2, y2, x3, y3) }

// Close adapts Emitter's ClosePath to the PathSink contract.
func (e *Emitter) Close() { e.ClosePath() }

// DrawShape feeds the tokens of an SVG path string into the emitter via
// parser, per §4.1's drawShape contract.
func (e *Emitter) DrawShape(parser SvgPathParser, d string) error {
	return parser.Parse(d, e)
}

// PathBounds replays the same event stream into a non-emitting bounding
// box adapter, returning the tight union of line endpoints and cubic
// extrema, per §4.1's parallel bounding-box adapter and §8's testable
// property for it.
func PathBounds(parser SvgPathParser, d string) (geometry.Rect, error) {
	b := &boundingBoxSink{}
	err := parser.Parse(d, b)
	if err != nil {
		return geometry.Rect{}, err
	}
	return b.rect(), nil
}

// boundingBoxSink tracks (xMin,yMin,xMax,yMax) without emitting any
// bytes, the "parallel adapter" from §4.1.
type boundingBoxSink struct {
	haveAny            bool
	xMin, yMin         float64
	xMax, yMax         float64
	curX, curY         float64
	startX, startY     float64
}

func (b *boundingBoxSink) visit(x, y float64) {
	if !b.haveAny {
		b.xMin, b.xMax = x, x
		b.yMin, b.yMax = y, y
		b.haveAny = true
		return
	}
	if x < b.xMin {
		b.xMin = x
	}
	if x > b.xMax {
		b.xMax = x
	}
	if y < b.yMin {
		b.yMin = y
	}
	if y > b.yMax {
		b.yMax = y
	}
}

func (b *boundingBoxSink) MoveTo(x, y float64) {
	b.visit(x, y)
	b.curX, b.curY = x, y
	b.startX, b.startY = x, y
}

func (b *boundingBoxSink) LineTo(x, y float64) {
	b.visit(x, y)
	b.curX, b.curY = x, y
}

// CubicTo visits the endpoint plus any extrema of the cubic's derivative
// per axis, solving 3at²+2bt+c=0 with a=-P0+3P1-3P2+P3, b=3P0-6P1+3P2,
// c=-3P0+3P1 and accepting roots strictly in (0,1), per §4.1.
func (b *boundingBoxSink) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	cubicExtrema(b.curX, x1, x2, x3, b.visitX)
	cubicExtrema(b.curY, y1, y2, y3, b.visitY)
	b.visit(x3, y3)
	b.curX, b.curY = x3, y3
}

func (b *boundingBoxSink) visitX(t, x0, x1, x2, x3 float64) {
	x := cubicAt(t, x0, x1, x2, x3)
	if x < b.xMin {
		b.xMin = x
	}
	if x > b.xMax {
		b.xMax = x
	}
}

func (b *boundingBoxSink) visitY(t, y0, y1, y2, y3 float64) {
	y := cubicAt(t, y0, y1, y2, y3)
	if y < b.yMin {
		b.yMin = y
	}
	if y > b.yMax {
		b.yMax = y
	}
}

func (b *boundingBoxSink) Close() {
	b.curX, b.curY = b.startX, b.startY
}

func (b *boundingBoxSink) rect() geometry.Rect {
	if !b.haveAny {
		return geometry.Rect{}
	}
	return geometry.Rect{X: b.xMin, Y: b.yMin, Width: b.xMax - b.xMin, Height: b.yMax - b.yMin}
}

func cubicAt(t, p0, p1, p2, p3 float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// cubicExtrema finds roots of the cubic's derivative strictly in (0,1)
// and calls visit(t, p0,p1,p2,p3) for each.
func cubicExtrema(p0, p1, p2, p3 float64, visit func(t, p0, p1, p2, p3 float64)) {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 3*p0 - 6*p1 + 3*p2
	c := -3*p0 + 3*p1

	for _, t := range quadraticRoots(3*a, 2*b, c) {
		if t > 0 && t < 1 {
			visit(t, p0, p1, p2, p3)
		}
	}
}

// quadraticRoots solves a*t^2 + b*t + c = 0.
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
