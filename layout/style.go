// Package layout implements the inline-text layout engine: it walks a
// tree of styled inline spans and produces positioned glyph runs and
// decoration runs within a bounded rectangle, ready for a later paint
// pass to drive the content-stream emitter.
package layout

import (
	"github.com/gedetika/dart-pdf/content"
	"github.com/gedetika/dart-pdf/geometry"
)

// TextDecoration is a bitset of {underline, overline, lineThrough}.
type TextDecoration uint8

const (
	DecorationUnderline  TextDecoration = 1 << 0
	DecorationOverline   TextDecoration = 1 << 1
	DecorationLineThrough TextDecoration = 1 << 2
)

func (d TextDecoration) Has(bit TextDecoration) bool { return d&bit != 0 }

// DecorationStyle selects single or double decoration lines.
type DecorationStyle int

const (
	DecorationStyleSingle DecorationStyle = iota
	DecorationStyleDouble
)

// FontStyle selects upright or italic glyph variants.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// TextAlign controls how a finished line is realigned within its box.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// TextDirection controls whether a line's spans are laid out LTR or
// mirrored RTL during realignment.
type TextDirection int

const (
	DirectionLTR TextDirection = iota
	DirectionRTL
)

// TextStyle is the immutable, mergeable style attached to a span. Fields
// left at their zero value are treated as "not set" and are inherited
// from the parent during merge, except where noted.
type TextStyle struct {
	Font                content.Font
	FontSize            float64
	Color               content.Color
	Background          content.BackgroundDecoration
	Decoration          TextDecoration
	DecorationStyle     DecorationStyle
	DecorationColor     content.Color
	DecorationThickness float64
	LetterSpacing       float64
	// WordSpacing multiplies the space advance between words: 1 is normal
	// spacing, and the zero value gives no gap at all (in MergeFrom zero
	// means "inherit").
	WordSpacing         float64
	LineSpacing         float64
	RenderingMode       content.TextRenderMode
	FontStyle           FontStyle
	FontWeight          int
}

// MergeFrom returns the result of overriding base with every explicitly
// set field of override (right-biased merge, per §3's style contract).
// Scalar fields use their Go zero value as the "unset" sentinel; this
// means an override that explicitly wants zero (e.g. LetterSpacing: 0)
// is indistinguishable from "inherit" — the same zero-value-means-
// inherit trade-off the style-merge vocabulary in the wider pack makes
// for its own rich-text style type.
func (base TextStyle) MergeFrom(override TextStyle) TextStyle {
	out := base
	if override.Font != nil {
		out.Font = override.Font
	}
	if override.FontSize != 0 {
		out.FontSize = override.FontSize
	}
	if override.Color != nil {
		out.Color = override.Color
	}
	if override.Background != nil {
		out.Background = override.Background
	}
	if override.Decoration != 0 {
		out.Decoration = override.Decoration
	}
	if override.DecorationStyle != DecorationStyleSingle {
		out.DecorationStyle = override.DecorationStyle
	}
	if override.DecorationColor != nil {
		out.DecorationColor = override.DecorationColor
	}
	if override.DecorationThickness != 0 {
		out.DecorationThickness = override.DecorationThickness
	}
	if override.LetterSpacing != 0 {
		out.LetterSpacing = override.LetterSpacing
	}
	if override.WordSpacing != 0 {
		out.WordSpacing = override.WordSpacing
	}
	if override.LineSpacing != 0 {
		out.LineSpacing = override.LineSpacing
	}
	if override.RenderingMode != content.RenderFill {
		out.RenderingMode = override.RenderingMode
	}
	if override.FontStyle != FontStyleNormal {
		out.FontStyle = override.FontStyle
	}
	if override.FontWeight != 0 {
		out.FontWeight = override.FontWeight
	}
	return out
}

// Equal reports whether two styles carry the same values, used by the
// decoration-merge rule (§4.2: "compare the two immutable attribute
// tuples").
func (a TextStyle) Equal(b TextStyle) bool {
	return a.Font == b.Font &&
		a.FontSize == b.FontSize &&
		a.Color == b.Color &&
		a.Background == b.Background &&
		a.Decoration == b.Decoration &&
		a.DecorationStyle == b.DecorationStyle &&
		a.DecorationColor == b.DecorationColor &&
		a.DecorationThickness == b.DecorationThickness &&
		a.LetterSpacing == b.LetterSpacing &&
		a.WordSpacing == b.WordSpacing &&
		a.LineSpacing == b.LineSpacing &&
		a.RenderingMode == b.RenderingMode &&
		a.FontStyle == b.FontStyle &&
		a.FontWeight == b.FontWeight
}

type (
	Point          = geometry.Point
	Rect           = geometry.Rect
	Size           = geometry.Size
	BoxConstraints = geometry.BoxConstraints
)
