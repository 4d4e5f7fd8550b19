// Package imageres provides a concrete image XObject resource backed by
// a decoded raster image. Image *decoding* (PNG/JPEG parsing, color
// profile handling) stays a caller concern — this package only wraps an
// already-decoded image.Image well enough to answer the Size() query
// content.XObject needs, and offers a resampling helper built on
// golang.org/x/image/draw for callers that need to fit a source image
// into a target pixel size before embedding it.
package imageres

import (
	goimage "image"

	"golang.org/x/image/draw"
)

// Image adapts a decoded raster image to content.XObject.
type Image struct {
	Src goimage.Image
}

// Size returns the image's pixel dimensions.
func (img Image) Size() (w, h float64) {
	b := img.Src.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Resample scales src to exactly (w,h) pixels using bilinear
// interpolation, the same golang.org/x/image/draw transform the
// reference pack's converter package uses for affine image placement.
func Resample(src goimage.Image, w, h int) *goimage.RGBA {
	dst := goimage.NewRGBA(goimage.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
