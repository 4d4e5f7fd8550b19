package geometry

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// CTM is the current transformation matrix of a graphics context. It is
// backed by [matrix.Matrix] from seehuhn.de/go/geom so that the graphics
// context's transform stack composes with the same affine algebra the rest
// of the ecosystem already uses for glyph and image matrices, rather than
// a second hand-rolled 2x2+translation type.
//
// The six components are stored in the order of the PDF "cm" operator: if
// M = [a b c d e f], a vector (x, y, 1) is transformed into
// (x y 1) * M = (a*x+c*y+e, b*x+d*y+f, 1).
type CTM = matrix.Matrix

// Identity is the identity transform.
var Identity = matrix.Matrix{1, 0, 0, 1, 0, 0}

// Translate returns a transform that moves the origin by (dx, dy).
func Translate(dx, dy float64) CTM {
	return matrix.Matrix{1, 0, 0, 1, dx, dy}
}

// Scale returns a transform that scales the axes independently.
func Scale(sx, sy float64) CTM {
	return matrix.Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a transform that rotates by phi radians.
func Rotate(phi float64) CTM {
	c := math.Cos(phi)
	s := math.Sin(phi)
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

// Apply transforms the point p by M.
func Apply(M CTM, p Point) Point {
	x, y := M.Apply(p.X, p.Y)
	return Point{x, y}
}

// Affine6 returns the six coefficients in "cm"-operator order, for emitting
// a content-stream cm operator.
func Affine6(M CTM) [6]float64 {
	return [6]float64{M[0], M[1], M[2], M[3], M[4], M[5]}
}

// FromAffine6 builds a CTM from six cm-operator coefficients.
func FromAffine6(a, b, c, d, e, f float64) CTM {
	return matrix.Matrix{a, b, c, d, e, f}
}
