package content

import (
	"io"

	"github.com/gedetika/dart-pdf/geometry"
)

type (
	Rect           = geometry.Rect
	Size           = geometry.Size
	BoxConstraints = geometry.BoxConstraints
)

// Font is the external collaborator that supplies glyph metrics and
// PDF-string encoding. Font file parsing and character encoding live on
// the other side of this interface, never inside this package.
type Font interface {
	// StringMetrics measures text, including the effect of extra
	// per-character spacing (already divided by fontSize*scale, matching
	// the layout engine's call convention).
	StringMetrics(text string, letterSpacing float64) FontMetrics
	// Descent is the font's descent in unscaled design units; the layout
	// engine multiplies it by fontSize*scale itself where the algorithm
	// calls for that.
	Descent() float64
	// Name is the resource-dictionary base font name.
	Name() string
	// PutText writes a PDF string literal for text to w, handling
	// whatever encoding and escaping the font's encoding requires.
	PutText(w io.Writer, text string) error
}

// FontMetrics is the measurement result returned by Font.StringMetrics,
// expressed in font design units already scaled by point size.
type FontMetrics struct {
	Left, Top, Right, Bottom float64
	Ascent, Descent          float64
	Width, Height            float64
	AdvanceWidth             float64
	MaxHeight                float64
}

// Scale multiplies every field of m by s.
func (m FontMetrics) Scale(s float64) FontMetrics {
	return FontMetrics{
		Left: m.Left * s, Top: m.Top * s, Right: m.Right * s, Bottom: m.Bottom * s,
		Ascent: m.Ascent * s, Descent: m.Descent * s,
		Width: m.Width * s, Height: m.Height * s,
		AdvanceWidth: m.AdvanceWidth * s, MaxHeight: m.MaxHeight * s,
	}
}

// Page is the resource-registration collaborator: it owns the page's
// resource dictionary and hands back the name the emitter should use to
// refer to a registered object in the content stream.
type Page interface {
	AddFont(f Font) (name string)
	AddXObject(obj XObject) (name string)
	AddShader(s Shading) (name string)
	AddPattern(p Pattern) (name string)
	AddExtGState(g ExtGState) (name string)
	StateName(g ExtGState) string
	DefaultFont() Font
}

// XObject is a placeable external object (image or form), registered via
// the "Do" operator.
type XObject interface {
	// Size returns the XObject's intrinsic pixel/unit dimensions. DrawImage
	// does not use it: its cm matrix comes from the target rectangle only.
	Size() (w, h float64)
}

// Shading is a PDF shading dictionary, placed via the "sh" operator.
type Shading interface{ ShadingName() string }

// Pattern is a PDF tiling or shading pattern, set via "scn"/"SCN" with
// colorspace /Pattern.
type Pattern interface{ PatternName() string }

// ExtGState is an opaque graphics-state parameter dictionary, set via
// "gs".
type ExtGState interface{ ExtGStateName() string }

// Widget is laid out and painted by the owning document; the layout
// engine only calls into it, it never constructs one.
type Widget interface {
	Layout(ctx any, constraints BoxConstraints) Size
	Paint(ctx any, e *Emitter)
	Box() Rect
	SetBox(Rect)
}

// AnnotationBuilder constructs a PDF annotation at a given page-absolute
// rectangle; construction logic itself is out of scope for this package.
type AnnotationBuilder interface {
	Build(ctx any, rect Rect)
}

// BackgroundDecoration paints an arbitrary background behind a rectangle
// (gradients, images, ...), invoked by the paint pass before the running
// fill color is restored.
type BackgroundDecoration interface {
	Paint(ctx any, e *Emitter, rect Rect)
}

// ArabicShaper rewrites logical-order text into its visually shaped form
// before line breaking. The default implementation lives in
// content/shaping, built on golang.org/x/text/unicode/bidi.
type ArabicShaper interface {
	Convert(text string) string
}

// SvgPathParser feeds path-construction events into a PathSink. Path
// tokenization itself (the SVG mini-language grammar) is out of scope;
// this package only consumes the event stream.
type SvgPathParser interface {
	Parse(d string, sink PathSink) error
}
