package colour

import "math"

// PhaseMag converts an argument and a lightness directly into a pixel colour.
//
// The hue position is 3*arg/pi shifted into [0, 6), so arg = -pi and arg = pi
// land on the same sextant boundary. Negative lightness darkens towards black
// (value 1+lightness, saturation 1); non-negative lightness washes out towards
// white (value 1, saturation 1-lightness). The six-case piecewise HSV formula
// then interpolates each channel between bottom and top.
func PhaseMag(arg, lightness float64) RGB {
	h := 3 * arg / math.Pi
	if h < 0 {
		h += 6
	}
	if h >= 6 {
		h -= 6
	}

	var bottom, top float64
	if lightness < 0 {
		bottom, top = 0, 1+lightness
	} else {
		bottom, top = lightness, 1
	}

	sextant := math.Floor(h)
	f := h - sextant
	span := top - bottom
	rising := bottom + span*f
	falling := top - span*f

	switch int(sextant) {
	case 0:
		return RGB{R: top, G: rising, B: bottom}
	case 1:
		return RGB{R: falling, G: top, B: bottom}
	case 2:
		return RGB{R: bottom, G: top, B: rising}
	case 3:
		return RGB{R: bottom, G: falling, B: top}
	case 4:
		return RGB{R: rising, G: bottom, B: top}
	default:
		return RGB{R: top, G: bottom, B: falling}
	}
}
