package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/gedetika/dart-pdf/content"
	"github.com/gedetika/dart-pdf/content/color"
)

func TestPaintDrawsTextAndUnderline(t *testing.T) {
	style := baseStyle()
	style.Decoration = DecorationUnderline
	style.DecorationThickness = 1

	e := &Engine{}
	res := e.Layout(textSpan("Hi"), style, ParagraphStyle{Scale: 1},
		BoxConstraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)})

	emitter := content.NewEmitter(nil)
	res.Paint(nil, emitter, Point{})
	if emitter.Err != nil {
		t.Fatalf("unexpected error: %v", emitter.Err)
	}
	out := string(emitter.Bytes())
	if !strings.Contains(out, "TJ") {
		t.Errorf("expected a TJ text-showing operator, got %q", out)
	}
	if !strings.Contains(out, "S\n") {
		t.Errorf("expected an underline stroke (S), got %q", out)
	}
}

func TestPaintDoubleDecorationDrawsTwoStrokes(t *testing.T) {
	style := baseStyle()
	style.Decoration = DecorationLineThrough
	style.DecorationStyle = DecorationStyleDouble
	style.DecorationThickness = 1
	style.DecorationColor = color.Gray(0)

	e := &Engine{}
	res := e.Layout(textSpan("Hi"), style, ParagraphStyle{Scale: 1},
		BoxConstraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)})

	emitter := content.NewEmitter(nil)
	res.Paint(nil, emitter, Point{})
	if emitter.Err != nil {
		t.Fatalf("unexpected error: %v", emitter.Err)
	}
	if n := strings.Count(string(emitter.Bytes()), "S\n"); n != 2 {
		t.Errorf("expected 2 strokes for a double decoration, got %d", n)
	}
}
