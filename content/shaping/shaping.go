// Package shaping provides the default ArabicShaper implementation
// consumed by the layout engine, built on golang.org/x/text/unicode/bidi.
// Full Arabic contextual glyph shaping is itself a font-rendering
// concern and stays out of scope; what this package does is the
// logical-to-visual reordering step bidi text needs before line
// breaking, which is the part the layout engine's contract actually
// calls for.
package shaping

import "golang.org/x/text/unicode/bidi"

// BidiReorder is the default content.ArabicShaper: it reorders the
// runs of a paragraph into visual order using the Unicode Bidirectional
// Algorithm. Text that forms a single directional run (all left-to-right
// or all right-to-left) is returned untouched.
type BidiReorder struct{}

// Convert reorders text into visual order.
func (BidiReorder) Convert(text string) string {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return text
	}
	ordering, err := p.Order()
	if err != nil {
		return text
	}
	if ordering.NumRuns() <= 1 {
		return text
	}
	out := make([]byte, 0, len(text))
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		s := run.String()
		if run.Direction() == bidi.RightToLeft {
			s = reverseRunes(s)
		}
		out = append(out, s...)
	}
	return string(out)
}

func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
