package colour

import "github.com/lucasb-eyer/go-colorful"

// HLS is a colour in hue/lightness/saturation form.
// H is in degrees [0, 360); L and S are nominally in [0, 1].
type HLS struct {
	H float64
	L float64
	S float64
}

// ToHLS converts an RGB colour to HLS.
func ToHLS(c RGB) HLS {
	h, s, l := c.Colorful().Hsl()
	return HLS{H: h, L: l, S: s}
}

// FromHLS converts an HLS colour back to RGB. Lightness outside [0, 1] is
// not clamped, so the result may leave the unit cube.
func FromHLS(v HLS) RGB {
	return FromColorful(colorful.Hsl(v.H, v.S, v.L))
}

// AdjustLightness returns v with delta added to its lightness, unclamped.
func (v HLS) AdjustLightness(delta float64) HLS {
	v.L += delta
	return v
}
