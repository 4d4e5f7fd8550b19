package content

import (
	"fmt"

	"github.com/gedetika/dart-pdf/geometry"
	"github.com/gedetika/dart-pdf/internal/float"
	"github.com/gedetika/dart-pdf/pdferr"
)

// This file implements the general/special graphics-state operators:
// cm, w, J, j, M, d, ri, i, gs.

// SetTransform implements "cm": it concatenates M onto the CTM and emits
// the six coefficients. The new CTM is M.Mul(old CTM) in the row-vector
// convention of geometry.CTM, so M is applied before the previous CTM.
func (e *Emitter) SetTransform(M geometry.CTM) {
	if !e.isValid("SetTransform", objPage) {
		return
	}
	a := geometry.Affine6(M)
	if !e.checkFinite("SetTransform", a[0], a[1], a[2], a[3], a[4], a[5]) {
		return
	}
	e.ctx.ctm = M.Mul(e.ctx.ctm)
	e.writeln(
		float.Format(a[0], 3), float.Format(a[1], 3), float.Format(a[2], 3),
		float.Format(a[3], 3), float.Format(a[4], 3), float.Format(a[5], 3), "cm")
}

// SetLineWidth implements "w".
func (e *Emitter) SetLineWidth(width float64) {
	if !e.isValid("SetLineWidth", objPage|objText) {
		return
	}
	if width < 0 {
		e.fail(pdferr.InvalidArgument, "SetLineWidth", fmt.Errorf("negative width %v", width))
		return
	}
	e.writeln(e.coord(width), "w")
}

// LineCapStyle is the "J" operand.
type LineCapStyle int

const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// SetLineCap implements "J".
func (e *Emitter) SetLineCap(cap LineCapStyle) {
	if !e.isValid("SetLineCap", objPage|objText) {
		return
	}
	if cap < 0 || cap > 2 {
		e.fail(pdferr.InvalidArgument, "SetLineCap", fmt.Errorf("invalid line cap %d", cap))
		return
	}
	e.writeln(fmt.Sprint(int(cap)), "J")
}

// LineJoinStyle is the "j" operand.
type LineJoinStyle int

const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// SetLineJoin implements "j".
func (e *Emitter) SetLineJoin(join LineJoinStyle) {
	if !e.isValid("SetLineJoin", objPage|objText) {
		return
	}
	if join < 0 || join > 2 {
		e.fail(pdferr.InvalidArgument, "SetLineJoin", fmt.Errorf("invalid line join %d", join))
		return
	}
	e.writeln(fmt.Sprint(int(join)), "j")
}

// SetMiterLimit implements "M".
func (e *Emitter) SetMiterLimit(limit float64) {
	if !e.isValid("SetMiterLimit", objPage|objText) {
		return
	}
	if limit < 1 {
		e.fail(pdferr.InvalidArgument, "SetMiterLimit", fmt.Errorf("miter limit %v < 1", limit))
		return
	}
	e.writeln(float.Format(limit, 4), "M")
}

// SetLineDash implements "d".
func (e *Emitter) SetLineDash(pattern []float64, phase float64) {
	if !e.isValid("SetLineDash", objPage|objText) {
		return
	}
	if phase < 0 {
		e.fail(pdferr.InvalidArgument, "SetLineDash", fmt.Errorf("negative phase %v", phase))
		return
	}
	if e.Err != nil {
		return
	}
	e.buf.WriteByte('[')
	for i, x := range pattern {
		if i > 0 {
			e.buf.WriteByte(' ')
		}
		e.buf.WriteString(float.Format(x, 3))
	}
	e.buf.WriteString("] ")
	e.buf.WriteString(float.Format(phase, 3))
	e.buf.WriteString(" d\n")
}

// RenderingIntent is the "ri" operand.
type RenderingIntent string

const (
	IntentAbsoluteColorimetric RenderingIntent = "AbsoluteColorimetric"
	IntentRelativeColorimetric RenderingIntent = "RelativeColorimetric"
	IntentSaturation           RenderingIntent = "Saturation"
	IntentPerceptual           RenderingIntent = "Perceptual"
)

// SetRenderingIntent implements "ri".
func (e *Emitter) SetRenderingIntent(intent RenderingIntent) {
	if !e.isValid("SetRenderingIntent", objPage|objText) {
		return
	}
	e.writeln("/"+string(intent), "ri")
}

// SetFlatnessTolerance implements "i".
func (e *Emitter) SetFlatnessTolerance(flatness float64) {
	if !e.isValid("SetFlatnessTolerance", objPage|objText) {
		return
	}
	if flatness < 0 || flatness > 100 {
		e.fail(pdferr.InvalidArgument, "SetFlatnessTolerance", fmt.Errorf("flatness %v out of range", flatness))
		return
	}
	e.writeln(float.Format(flatness, 3), "i")
}

// SetGraphicState implements "gs", registering g as an ExtGState resource.
func (e *Emitter) SetGraphicState(g ExtGState) {
	if !e.isValid("SetGraphicState", objPage|objText) {
		return
	}
	name := e.resolveExtGState(g)
	e.writeln("/"+name, "gs")
}

func (e *Emitter) resolveExtGState(g ExtGState) string {
	if e.page != nil {
		return e.page.AddExtGState(g)
	}
	return e.res.register(catExtGState, g)
}
