// Package fakefont provides a minimal, table-driven content.Font used by
// this module's own tests. It answers StringMetrics from a fixed
// per-rune advance and a handful of constant ascent/descent/top/bottom
// values — no font file is parsed, the same "two glyphs is enough"
// minimalism the reference pack's own dummy test font uses.
package fakefont

import (
	"fmt"
	"io"

	"github.com/gedetika/dart-pdf/content"
)

// Font is a fixed-width, fixed-metrics content.Font stand-in for tests.
type Font struct {
	AdvancePerRune float64
	AscentUnits    float64
	DescentUnits   float64
	NameStr        string
}

// New returns a Font with reasonable defaults for a 1-unit em square.
func New() *Font {
	return &Font{AdvancePerRune: 0.6, AscentUnits: 0.75, DescentUnits: 0.25, NameStr: "FakeFont"}
}

// StringMetrics implements content.Font.
func (f *Font) StringMetrics(text string, letterSpacing float64) content.FontMetrics {
	n := len([]rune(text))
	advance := float64(n)*f.AdvancePerRune + float64(max0(n-1))*letterSpacing
	return content.FontMetrics{
		Left: 0, Top: f.AscentUnits, Right: advance, Bottom: -f.DescentUnits,
		Ascent: f.AscentUnits, Descent: f.DescentUnits,
		Width: advance, Height: f.AscentUnits + f.DescentUnits,
		AdvanceWidth: advance, MaxHeight: f.AscentUnits + f.DescentUnits,
	}
}

func max0(x int) int {
	if x < 0 {
		return 0
	}
	return x
}

// Descent implements content.Font.
func (f *Font) Descent() float64 { return f.DescentUnits }

// Name implements content.Font.
func (f *Font) Name() string { return f.NameStr }

// PutText implements content.Font with a bare, unescaped PDF string
// literal — adequate for a test double, not for real font encodings.
func (f *Font) PutText(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "(%s)", text)
	return err
}
