package content

import "math"

// ellipseKappa is the magic constant approximating a quarter circle with
// a single cubic Bézier: k = 0.551784 ≈ 4(√2−1)/3.
const ellipseKappa = 0.551784

// DrawEllipse draws an ellipse centered at (cx,cy) with radii (rx,ry) as
// four cubic Béziers, matching the "exactly 1 m and 4 c" testable
// property from §8.
func (e *Emitter) DrawEllipse(cx, cy, rx, ry float64) {
	if !e.isValid("DrawEllipse", objPage) || !e.checkFinite("DrawEllipse", cx, cy, rx, ry) {
		return
	}
	kx := rx * ellipseKappa
	ky := ry * ellipseKappa

	e.MoveTo(cx+rx, cy)
	e.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	e.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	e.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	e.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
}

// DrawRoundedRect draws a rectangle with corner radii (rh,rv), as four
// corner cubics connected by line segments, per §4.1.
func (e *Emitter) DrawRoundedRect(x, y, w, h, rh, rv float64) {
	if !e.isValid("DrawRoundedRect", objPage) || !e.checkFinite("DrawRoundedRect", x, y, w, h, rh, rv) {
		return
	}
	if rh > w/2 {
		rh = w / 2
	}
	if rv > h/2 {
		rv = h / 2
	}
	kx := rh * ellipseKappa
	ky := rv * ellipseKappa

	left, right := x, x+w
	bottom, top := y, y+h

	e.MoveTo(left, bottom+rv)
	e.CurveTo(left, bottom+rv-ky, left+rh-kx, bottom, left+rh, bottom)
	e.LineTo(right-rh, bottom)
	e.CurveTo(right-rh+kx, bottom, right, bottom+rv-ky, right, bottom+rv)
	e.LineTo(right, top-rv)
	e.CurveTo(right, top-rv+ky, right-rh+kx, top, right-rh, top)
	e.LineTo(left+rh, top)
	e.CurveTo(left+rh-kx, top, left, top-rv+ky, left, top-rv)
	e.ClosePath()
}

// EllipticalArc converts an SVG-style endpoint-parameterized elliptical
// arc (x0,y0) -> (x1,y1) into a sequence of curveTo calls, following the
// endpoint-to-center conversion of SVG 1.1 Appendix F.6.5.
func (e *Emitter) EllipticalArc(x0, y0, rx, ry, phi float64, largeArc, sweep bool, x1, y1 float64) {
	if !e.isValid("EllipticalArc", objPage|objPath) {
		return
	}
	if !e.checkFinite("EllipticalArc", x0, y0, rx, ry, phi, x1, y1) {
		return
	}

	if x0 == x1 && y0 == y1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx < 1e-10 || ry < 1e-10 {
		e.LineTo(x1, y1)
		return
	}

	cphi, sphi := math.Cos(phi), math.Sin(phi)

	// Step 1: translate so the midpoint of (x0,y0),(x1,y1) becomes the
	// origin, then rotate by -phi into the ellipse's own frame.
	dx2, dy2 := (x0-x1)/2, (y0-y1)/2
	x1p := cphi*dx2 + sphi*dy2
	y1p := -sphi*dx2 + cphi*dy2

	// Step 2: correct out-of-range radii.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 3: compute the center in the rotated frame.
	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 {
		co = sign * math.Sqrt(math.Max(0, num/den))
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * -(ry * x1p / rx)

	cx := cphi*cxp - sphi*cyp + (x0+x1)/2
	cy := sphi*cxp + cphi*cyp + (y0+y1)/2

	theta1 := angleBetween(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := angleBetween((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	emitArcSegments(e, cx, cy, rx, ry, phi, theta1, dtheta)
}

func angleBetween(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
	cosA := dot / lenProd
	if cosA > 1 {
		cosA = 1
	} else if cosA < -1 {
		cosA = -1
	}
	ang := math.Acos(cosA)
	if ux*vy-uy*vx < 0 {
		ang = -ang
	}
	return ang
}

// emitArcSegments splits the arc into fragments no larger than π/2 and
// emits a cubic Bézier per fragment, using the control-point distance
// κ = (4/3)·(1−cos(α/2))/sin(α/2) from §4.1.
func emitArcSegments(e *Emitter, cx, cy, rx, ry, phi, theta1, dtheta float64) {
	n := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	alpha := dtheta / float64(n)
	kappa := (4.0 / 3.0) * (1 - math.Cos(alpha/2)) / math.Sin(alpha/2)

	cphi, sphi := math.Cos(phi), math.Sin(phi)
	pointAt := func(theta float64) (x, y, dx, dy float64) {
		ct, st := math.Cos(theta), math.Sin(theta)
		ex, ey := rx*ct, ry*st
		x = cphi*ex - sphi*ey + cx
		y = sphi*ex + cphi*ey + cy
		// tangent direction (d/dtheta of the ellipse point)
		tx, ty := -rx*st, ry*ct
		dx = cphi*tx - sphi*ty
		dy = sphi*tx + cphi*ty
		return
	}

	theta := theta1
	for i := 0; i < n; i++ {
		x0, y0, dx0, dy0 := pointAt(theta)
		theta2 := theta + alpha
		x1, y1, dx1, dy1 := pointAt(theta2)

		c1x, c1y := x0+kappa*dx0, y0+kappa*dy0
		c2x, c2y := x1-kappa*dx1, y1-kappa*dy1

		e.CurveTo(c1x, c1y, c2x, c2y, x1, y1)
		theta = theta2
	}
}
