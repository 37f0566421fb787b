// Package colour provides the pixel colour type and the colour-space
// conversions used to turn complex samples into pixels.
package colour

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a pixel colour with float channels.
// Channels are nominally in [0, 1] but may leave that range before the
// renderer clips them.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// White is the colour written over undefined samples.
var White = RGB{R: 1, G: 1, B: 1}

// Black is the zero-value colour.
var Black = RGB{}

// FromColorful converts a go-colorful colour to RGB without clamping.
func FromColorful(c colorful.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// ToRGB converts any color.Color to RGB, discarding alpha.
func ToRGB(c color.Color) RGB {
	if cf, ok := c.(colorful.Color); ok {
		return FromColorful(cf)
	}
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	cf, _ := colorful.MakeColor(c)
	return FromColorful(cf)
}

// Colorful returns c as a go-colorful colour.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Clamped returns c with every channel clipped to [0, 1]. NaN becomes 0.
func (c RGB) Clamped() RGB {
	return RGB{R: clip(c.R), G: clip(c.G), B: clip(c.B)}
}

func clip(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(math.Round(clip(v) * 255))
}

// RGBA implements color.Color. Channels are clipped first.
func (c RGB) RGBA() (r, g, b, a uint32) {
	cl := c.Clamped()
	return uint32(math.Round(cl.R * 0xffff)), uint32(math.Round(cl.G * 0xffff)), uint32(math.Round(cl.B * 0xffff)), 0xffff
}

// RGBA8 returns the clipped colour quantised to 8 bits per channel.
func (c RGB) RGBA8() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

// String returns the colour as "rgb(r, g, b)" with float channels.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%.4f, %.4f, %.4f)", c.R, c.G, c.B)
}

// Hex returns the clipped colour as a hex string (e.g., "#1a2b3c").
func (c RGB) Hex() string {
	q := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", q.R, q.G, q.B)
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
}

// Swatch converts colours to their JSON form.
func Swatch(colors []RGB) []ColorJSON {
	out := make([]ColorJSON, len(colors))
	for i, c := range colors {
		out[i] = ColorJSON{Hex: c.Hex(), RGB: c}
	}
	return out
}
