package imageres

import (
	"image"
	"image/color"
	"testing"
)

func TestImageSizeReportsPixelBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	img := Image{Src: src}
	w, h := img.Size()
	if w != 40 || h != 20 {
		t.Errorf("Size() = (%v, %v), want (40, 20)", w, h)
	}
}

func TestResampleProducesRequestedDimensions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.White)
		}
	}
	dst := Resample(src, 5, 5)
	b := dst.Bounds()
	if b.Dx() != 5 || b.Dy() != 5 {
		t.Errorf("Resample produced %dx%d, want 5x5", b.Dx(), b.Dy())
	}
}
