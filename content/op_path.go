package content

// This file implements the path-construction and path-painting operators
// from §4.1's operation table: m, l, c, re, h, f/f*, S/s, B/B*/b/b*, W/W*.

// MoveTo implements "m".
func (e *Emitter) MoveTo(x, y float64) {
	if !e.isValid("MoveTo", objPage) || !e.checkFinite("MoveTo", x, y) {
		return
	}
	e.current = objPath
	e.writeln(e.coord(x), e.coord(y), "m")
}

// LineTo implements "l".
func (e *Emitter) LineTo(x, y float64) {
	if !e.isValid("LineTo", objPage|objPath) || !e.checkFinite("LineTo", x, y) {
		return
	}
	e.current = objPath
	e.writeln(e.coord(x), e.coord(y), "l")
}

// CurveTo implements "c": a cubic Bézier from the current point through
// control points (x1,y1), (x2,y2) to (x3,y3).
func (e *Emitter) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !e.isValid("CurveTo", objPage|objPath) || !e.checkFinite("CurveTo", x1, y1, x2, y2, x3, y3) {
		return
	}
	e.current = objPath
	e.writeln(e.coord(x1), e.coord(y1), e.coord(x2), e.coord(y2), e.coord(x3), e.coord(y3), "c")
}

// DrawRect implements "re".
func (e *Emitter) DrawRect(x, y, w, h float64) {
	if !e.isValid("DrawRect", objPage|objPath) || !e.checkFinite("DrawRect", x, y, w, h) {
		return
	}
	e.current = objPath
	e.writeln(e.coord(x), e.coord(y), e.coord(w), e.coord(h), "re")
}

// ClosePath implements "h".
func (e *Emitter) ClosePath() {
	if !e.isValid("ClosePath", objPage|objPath) {
		return
	}
	e.writeln("h")
}

// FillPath implements "f"/"f*" and returns to the page-level object.
func (e *Emitter) FillPath(evenOdd bool) {
	if !e.isValid("FillPath", objPage|objPath) {
		return
	}
	e.current = objPage
	if evenOdd {
		e.writeln("f*")
	} else {
		e.writeln("f")
	}
}

// StrokePath implements "S"/"s".
func (e *Emitter) StrokePath(closeFirst bool) {
	if !e.isValid("StrokePath", objPage|objPath) {
		return
	}
	e.current = objPage
	if closeFirst {
		e.writeln("s")
	} else {
		e.writeln("S")
	}
}

// FillAndStrokePath implements "B"/"B*"/"b"/"b*".
func (e *Emitter) FillAndStrokePath(evenOdd, closeFirst bool) {
	if !e.isValid("FillAndStrokePath", objPage|objPath) {
		return
	}
	e.current = objPage
	switch {
	case closeFirst && evenOdd:
		e.writeln("b*")
	case closeFirst:
		e.writeln("b")
	case evenOdd:
		e.writeln("B*")
	default:
		e.writeln("B")
	}
}

// ClipPath implements "W"/"W*". If end is true, a no-op path-painting
// operator "n" is emitted immediately after, the usual way a clip-only
// path is terminated without drawing anything.
func (e *Emitter) ClipPath(evenOdd, end bool) {
	if !e.isValid("ClipPath", objPage|objPath) {
		return
	}
	if evenOdd {
		e.writeln("W*")
	} else {
		e.writeln("W")
	}
	if end {
		e.current = objPage
		e.writeln("n")
	}
}
