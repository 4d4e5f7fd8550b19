package content

import "fmt"

// Color is implemented by the concrete color value types in
// content/color (Gray, RGB, CMYK). It is the minimal contract the
// emitter needs: which operator to emit, and the operand values.
type Color interface {
	Components() []float64
	// Operator returns the one- or two-letter operator token for this
	// color model ("rg"/"RG", "g"/"G", "k"/"K").
	Operator(stroke bool) string
}

func (e *Emitter) emitColor(op string, c Color, stroke bool) {
	if !e.isValid(op, objPage|objText) {
		return
	}
	comps := c.Components()
	for _, v := range comps {
		if !e.checkFinite(op, v) {
			return
		}
	}
	// Redundant re-emission of the color already active is suppressed,
	// the same way the teacher's op-color.go skips re-emitting rg/k when
	// the new color equals the currently active one.
	if e.haveColor && colorsEqual(e.lastColor, c) && !stroke {
		return
	}
	args := make([]string, 0, len(comps)+1)
	for _, v := range comps {
		args = append(args, e.coord(v))
	}
	args = append(args, c.Operator(stroke))
	e.writeln(args...)
	if !stroke {
		e.lastColor = c
		e.haveColor = true
	}
}

func colorsEqual(a, b Color) bool {
	ca, cb := a.Components(), b.Components()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}
	return true
}

// SetFillColor implements the RGB/CMYK/Gray fill-color operators
// ("rg"/"k"/"g").
func (e *Emitter) SetFillColor(c Color) { e.emitColor("SetFillColor", c, false) }

// SetStrokeColor implements the corresponding uppercase stroke-color
// operators ("RG"/"K"/"G").
func (e *Emitter) SetStrokeColor(c Color) { e.emitColor("SetStrokeColor", c, true) }

// ApplyShader implements "sh", registering s as a Shading resource.
func (e *Emitter) ApplyShader(s Shading) {
	if !e.isValid("ApplyShader", objPage) {
		return
	}
	name := s.ShadingName()
	if e.page != nil {
		name = e.page.AddShader(s)
	}
	e.writeln("/"+name, "sh")
}

// SetFillPattern implements "/Pattern cs /Name scn".
func (e *Emitter) SetFillPattern(p Pattern) { e.emitPattern(p, false) }

// SetStrokePattern implements "/Pattern CS /Name SCN" (uppercase for
// stroke).
func (e *Emitter) SetStrokePattern(p Pattern) { e.emitPattern(p, true) }

func (e *Emitter) emitPattern(p Pattern, stroke bool) {
	if !e.isValid("SetPattern", objPage|objText) {
		return
	}
	name := p.PatternName()
	cs, scn := "cs", "scn"
	if stroke {
		cs, scn = "CS", "SCN"
	}
	e.writeln("/Pattern", cs)
	e.writeln(fmt.Sprintf("/%s", name), scn)
}
