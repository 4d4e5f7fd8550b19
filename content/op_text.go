package content

import (
	"bytes"
	"fmt"

	"github.com/gedetika/dart-pdf/pdferr"
)

// TextRenderMode is the "Tr" operand.
type TextRenderMode int

const (
	RenderFill        TextRenderMode = 0
	RenderStroke      TextRenderMode = 1
	RenderFillStroke  TextRenderMode = 2
	RenderInvisible   TextRenderMode = 3
)

// FontOptions carries the optional per-call text-state operators that
// accompany a font change (Tc, Tw, Tz, Ts, Tr), each applied only when
// its value differs from the emitter's currently tracked value.
type FontOptions struct {
	CharSpace   *float64
	WordSpace   *float64
	HScale      *float64 // percent, e.g. 100 for normal
	Rise        *float64
	RenderMode  *TextRenderMode
}

// SetFont implements "/Fn size Tf" plus the optional Tc/Tw/Tz/Ts/Tr
// operators; Tr is omitted when the mode is the fill default, per §4.1.
func (e *Emitter) SetFont(f Font, size float64, opts FontOptions) {
	if !e.isValid("SetFont", objText) {
		return
	}
	if size <= 0 {
		e.fail(pdferr.InvalidArgument, "SetFont", fmt.Errorf("non-positive font size %v", size))
		return
	}
	name := e.resolveFont(f)
	e.font = f
	e.fontSize = size
	e.writeln("/"+name, e.coord(size), "Tf")

	if opts.CharSpace != nil && *opts.CharSpace != e.charSpace {
		e.charSpace = *opts.CharSpace
		e.writeln(e.coord(e.charSpace), "Tc")
	}
	if opts.WordSpace != nil && *opts.WordSpace != e.wordSpace {
		e.wordSpace = *opts.WordSpace
		e.writeln(e.coord(e.wordSpace), "Tw")
	}
	if opts.HScale != nil && *opts.HScale != e.hScale*100 {
		e.hScale = *opts.HScale / 100
		e.writeln(e.coord(*opts.HScale), "Tz")
	}
	if opts.Rise != nil && *opts.Rise != e.rise {
		e.rise = *opts.Rise
		e.writeln(e.coord(e.rise), "Ts")
	}
	if opts.RenderMode != nil && int(*opts.RenderMode) != e.renderMode {
		e.renderMode = int(*opts.RenderMode)
		if *opts.RenderMode != RenderFill {
			e.writeln(fmt.Sprint(e.renderMode), "Tr")
		}
	}
}

// MoveTextPosition implements "Td".
func (e *Emitter) MoveTextPosition(x, y float64) {
	if !e.isValid("MoveTextPosition", objText) {
		return
	}
	e.writeln(e.coord(x), e.coord(y), "Td")
}

// SetLeading implements "TL".
func (e *Emitter) SetLeading(leading float64) {
	if !e.isValid("SetLeading", objText) {
		return
	}
	e.leading = leading
	e.writeln(e.coord(leading), "TL")
}

// MoveToNextLineAndSet implements "TD": like Td, but also sets the
// leading to -ty.
func (e *Emitter) MoveToNextLineAndSet(x, y float64) {
	if !e.isValid("MoveToNextLineAndSet", objText) {
		return
	}
	e.leading = -y
	e.writeln(e.coord(x), e.coord(y), "TD")
}

// NextLine implements "T*": move to the start of the next line using the
// current leading.
func (e *Emitter) NextLine() {
	if !e.isValid("NextLine", objText) {
		return
	}
	e.writeln("T*")
}

// ShowText implements "Tj": a single PDF string literal, no per-glyph
// positioning adjustments.
func (e *Emitter) ShowText(text string) {
	if !e.isValid("ShowText", objText) {
		return
	}
	if e.font == nil {
		e.fail(pdferr.Unsupported, "ShowText", fmt.Errorf("no font set"))
		return
	}
	var buf bytes.Buffer
	if err := e.font.PutText(&buf, text); err != nil {
		e.fail(pdferr.InvalidArgument, "ShowText", err)
		return
	}
	e.writeln(buf.String(), "Tj")
}

// ShowTextKerned implements "TJ": text runs interleaved with per-element
// kerning adjustments (expressed in thousandths of text space, negative
// values move right).
func (e *Emitter) ShowTextKerned(runs []string, kerns []float64) {
	if !e.isValid("ShowTextKerned", objText) {
		return
	}
	if e.font == nil {
		e.fail(pdferr.Unsupported, "ShowTextKerned", fmt.Errorf("no font set"))
		return
	}
	if len(kerns) != 0 && len(kerns) != len(runs)-1 {
		e.fail(pdferr.InvalidArgument, "ShowTextKerned", fmt.Errorf("kerns must have len(runs)-1 entries"))
		return
	}
	var out bytes.Buffer
	out.WriteByte('[')
	for i, r := range runs {
		if i > 0 {
			out.WriteByte(' ')
			if len(kerns) > 0 {
				out.WriteString(e.coord(kerns[i-1]))
				out.WriteByte(' ')
			}
		}
		if err := e.font.PutText(&out, r); err != nil {
			e.fail(pdferr.InvalidArgument, "ShowTextKerned", err)
			return
		}
	}
	out.WriteByte(']')
	e.writeln(out.String(), "TJ")
}

func (e *Emitter) resolveFont(f Font) string {
	if e.page != nil {
		return e.page.AddFont(f)
	}
	return e.res.register(catFont, f)
}

// DrawString is the bundled convenience form from §4.1's operation
// table: it opens a fresh text object, positions it at (x,y), sets the
// font, shows the text as a one-element TJ array, and closes the text
// object again.
func (e *Emitter) DrawString(f Font, size float64, text string, x, y float64, opts FontOptions) {
	e.BeginText()
	e.MoveTextPosition(x, y)
	e.SetFont(f, size, opts)
	e.ShowTextKerned([]string{text}, nil)
	e.EndText()
}
