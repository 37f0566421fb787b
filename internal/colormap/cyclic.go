package colormap

import (
	"math"

	"github.com/hsluv/hsluv-go"
	"github.com/lucasb-eyer/go-colorful"
)

// Cyclic colormaps return the same colour at t = 0 and t = 1, so the seam
// at arg = ±pi is invisible.

// HSLuv walks the hue circle of the HSLuv space at fixed saturation and
// lightness, giving a rainbow of even perceived brightness.
type HSLuv struct {
	Saturation float64
	Lightness  float64
}

// DefaultHSLuv is the registered "hsluv" colormap.
var DefaultHSLuv = HSLuv{Saturation: 100, Lightness: 65}

// At implements Colormap.
func (c HSLuv) At(t float64) colorful.Color {
	r, g, b := hsluv.HsluvToRGB(360*wrap(t), c.Saturation, c.Lightness)
	return colorful.Color{R: unit(r), G: unit(g), B: unit(b)}
}

// HSV walks the HSV hue circle at full saturation and value.
type HSV struct{}

// At implements Colormap.
func (HSV) At(t float64) colorful.Color {
	return colorful.Hsv(360*wrap(t), 1, 1)
}

// wrap folds t into [0, 1) so that t = 1 lands on t = 0.
func wrap(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	w := t - math.Floor(t)
	if w >= 1 {
		w = 0
	}
	return w
}

// unit trims the small overshoots hsluv conversions produce at the gamut edge.
func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
