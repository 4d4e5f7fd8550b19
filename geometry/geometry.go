// Package geometry provides the plain value types shared by the
// content-stream emitter and the inline layout engine: points, sizes,
// rectangles and affine transforms.
package geometry

import "math"

// Point is a location in a 2-D coordinate system.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle, anchored at its top-left corner with
// the Y axis pointing down, matching the convention used throughout the
// layout engine (line boxes grow downward from the top of a paragraph).
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// BoxConstraints bounds the width and height a widget or line of text may
// occupy.
type BoxConstraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Inset shrinks r by dx on each side horizontally and dy on each side
// vertically. Negative values grow the rectangle.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
}

// Union returns the smallest rectangle containing both r and s. The zero
// Rect is treated as "no box yet" and is absorbed without contributing an
// origin at (0,0).
func (r Rect) Union(s Rect) Rect {
	if r == (Rect{}) {
		return s
	}
	if s == (Rect{}) {
		return r
	}
	left := math.Min(r.Left(), s.Left())
	top := math.Min(r.Top(), s.Top())
	right := math.Max(r.Right(), s.Right())
	bottom := math.Max(r.Bottom(), s.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
