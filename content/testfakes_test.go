package content

import (
	"fmt"
	"io"
)

// fakeFont is the minimal content.Font test double used across this
// package's operator tests; it writes text as a literal PDF string
// without any real encoding.
type fakeFont struct{ name string }

func (f fakeFont) StringMetrics(text string, letterSpacing float64) FontMetrics { return FontMetrics{} }
func (f fakeFont) Descent() float64                                             { return 0 }
func (f fakeFont) Name() string                                                 { return f.name }
func (f fakeFont) PutText(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "(%s)", text)
	return err
}

type fakeExtGState struct{ name string }

func (g fakeExtGState) ExtGStateName() string { return g.name }

type fakeShading struct{ name string }

func (s fakeShading) ShadingName() string { return s.name }

type fakePattern struct{ name string }

func (p fakePattern) PatternName() string { return p.name }

type fakeXObject struct{ w, h float64 }

func (x fakeXObject) Size() (float64, float64) { return x.w, x.h }
