package layout

import "github.com/gedetika/dart-pdf/content"

// PositionedSpan is either a *Word or an *EmbeddedWidget, produced by the
// line-breaking pass.
type PositionedSpan interface {
	isPositionedSpan()
	width() float64
}

// Word is a single run of text placed at offset, the baseline anchor in
// layout-local coordinates.
type Word struct {
	Text    string
	Style   TextStyle
	Metrics content.FontMetrics
	Offset  Point
}

func (*Word) isPositionedSpan() {}
func (w *Word) width() float64  { return w.Metrics.AdvanceWidth }

// EmbeddedWidget places a laid-out Widget inline; its geometry is
// delegated to the widget's own box.
type EmbeddedWidget struct {
	Widget content.Widget
	Style  TextStyle
	Offset Point
}

func (*EmbeddedWidget) isPositionedSpan() {}
func (w *EmbeddedWidget) width() float64  { return w.Widget.Box().Width }

// DecorationRun is a visual adornment covering a contiguous span-index
// range. Its rectangle, computed by the paint pass, is the union of the
// contained spans' bounds.
type DecorationRun struct {
	Style      TextStyle
	Annotation content.AnnotationBuilder
	StartSpan  int
	EndSpan    int
}

// LineDescriptor records where a line's spans live in the flat span
// array and the line's geometry.
type LineDescriptor struct {
	FirstSpanIndex int
	SpanCount      int
	BaselineDrop   float64
	WordsWidth     float64
	TextDirection  TextDirection
	TextAlign      TextAlign
}
