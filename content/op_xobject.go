package content

import (
	"fmt"

	"github.com/gedetika/dart-pdf/geometry"
	"github.com/gedetika/dart-pdf/pdferr"
)

func matrixFromCM(m [6]float64) geometry.CTM {
	return geometry.FromAffine6(m[0], m[1], m[2], m[3], m[4], m[5])
}

// ImageOrientation is the EXIF-style orientation tag (1-8) the image
// placement matrix table is indexed by.
type ImageOrientation int

const (
	OrientTopLeft     ImageOrientation = 1
	OrientTopRight    ImageOrientation = 2
	OrientBottomRight ImageOrientation = 3
	OrientBottomLeft  ImageOrientation = 4
	OrientLeftTop     ImageOrientation = 5
	OrientRightTop    ImageOrientation = 6
	OrientRightBottom ImageOrientation = 7
	OrientLeftBottom  ImageOrientation = 8
)

// orientationMatrix returns the six cm coefficients [a b c d e f] placing
// a unit image into the (x,y,w,h) rectangle under orientation o, per
// §4.1's fixed 8-entry table.
func orientationMatrix(o ImageOrientation, x, y, w, h float64) ([6]float64, error) {
	switch o {
	case OrientTopLeft:
		return [6]float64{w, 0, 0, h, x, y}, nil
	case OrientTopRight:
		return [6]float64{-w, 0, 0, h, w + x, y}, nil
	case OrientBottomRight:
		return [6]float64{-w, 0, 0, -h, w + x, h + y}, nil
	case OrientBottomLeft:
		return [6]float64{w, 0, 0, -h, x, h + y}, nil
	case OrientLeftTop:
		return [6]float64{0, -h, -w, 0, w + x, h + y}, nil
	case OrientRightTop:
		return [6]float64{0, -h, w, 0, x, h + y}, nil
	case OrientRightBottom:
		return [6]float64{0, h, w, 0, x, y}, nil
	case OrientLeftBottom:
		return [6]float64{0, h, -w, 0, w + x, y}, nil
	default:
		return [6]float64{}, fmt.Errorf("unknown image orientation %d", o)
	}
}

// DrawImage implements "drawImage": q, the orientation cm, /Name Do, Q.
func (e *Emitter) DrawImage(img XObject, x, y, w, h float64, o ImageOrientation) {
	if !e.isValid("DrawImage", objPage) {
		return
	}
	if !e.checkFinite("DrawImage", x, y, w, h) {
		return
	}
	m, err := orientationMatrix(o, x, y, w, h)
	if err != nil {
		e.fail(pdferr.Unsupported, "DrawImage", err)
		return
	}

	e.SaveContext()
	if e.Err != nil {
		return
	}
	e.ctx.ctm = matrixFromCM(m).Mul(e.ctx.ctm)
	e.writeln(e.coord(m[0]), e.coord(m[1]), e.coord(m[2]), e.coord(m[3]), e.coord(m[4]), e.coord(m[5]), "cm")

	name := e.resolveXObject(img)
	e.writeln("/"+name, "Do")
	e.RestoreContext()
}

// DrawXObject implements a bare "/Name Do" without the orientation
// wrapper, for callers that manage their own transform (forms, or images
// already positioned by an outer cm).
func (e *Emitter) DrawXObject(obj XObject) {
	if !e.isValid("DrawXObject", objPage) {
		return
	}
	name := e.resolveXObject(obj)
	e.writeln("/"+name, "Do")
}

func (e *Emitter) resolveXObject(obj XObject) string {
	if e.page != nil {
		return e.page.AddXObject(obj)
	}
	return e.res.register(catXObject, obj)
}
