// Package color provides the DeviceGray/DeviceRGB/DeviceCMYK value types
// consumed by the emitter's SetFillColor/SetStrokeColor operators. Color
// management (ICC profiles, color space objects, image decoding) is out
// of scope here — these are the three device color models a content
// stream can set directly, nothing more.
package color

// Gray is a DeviceGray color, g in [0,1].
type Gray float64

func (g Gray) Components() []float64 { return []float64{float64(g)} }
func (g Gray) Operator(stroke bool) string {
	if stroke {
		return "G"
	}
	return "g"
}

// RGB is a DeviceRGB color.
type RGB struct{ R, G, B float64 }

func (c RGB) Components() []float64 { return []float64{c.R, c.G, c.B} }
func (c RGB) Operator(stroke bool) string {
	if stroke {
		return "RG"
	}
	return "rg"
}

// CMYK is a DeviceCMYK color.
type CMYK struct{ C, M, Y, K float64 }

func (c CMYK) Components() []float64 { return []float64{c.C, c.M, c.Y, c.K} }
func (c CMYK) Operator(stroke bool) string {
	if stroke {
		return "K"
	}
	return "k"
}
