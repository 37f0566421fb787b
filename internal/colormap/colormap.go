// Package colormap provides continuous colormaps that map a normalised
// scalar in [0, 1] to a colour.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColormap is returned when a colormap cannot serve lookups in [0, 1].
var ErrInvalidColormap = errors.New("colormap: invalid colormap")

// Colormap maps normalised values in [0, 1] to colours.
type Colormap interface {
	At(t float64) colorful.Color
}

// Func adapts a plain lookup function returning any color.Color.
// Alpha is discarded.
type Func func(t float64) color.Color

// At implements Colormap.
func (f Func) At(t float64) colorful.Color {
	c := f(t)
	if cf, ok := c.(colorful.Color); ok {
		return cf
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return colorful.Color{}
	}
	// Un-premultiply so that translucent colours keep their hue.
	return colorful.Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
}

// Linear is a piecewise linear colormap over evenly spaced stops.
type Linear struct {
	name  string
	stops []colorful.Color
}

// NewLinear creates a Linear colormap from at least two stops.
func NewLinear(name string, stops []colorful.Color) (*Linear, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: %q needs at least 2 stops, got %d", ErrInvalidColormap, name, len(stops))
	}
	cp := make([]colorful.Color, len(stops))
	copy(cp, stops)
	return &Linear{name: name, stops: cp}, nil
}

// mustLinear8 builds a Linear colormap from 8-bit RGB stops.
func mustLinear8(name string, stops [][3]uint8) *Linear {
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		cs[i] = colorful.Color{R: float64(s[0]) / 255, G: float64(s[1]) / 255, B: float64(s[2]) / 255}
	}
	l, err := NewLinear(name, cs)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the colormap name.
func (c *Linear) Name() string {
	return c.name
}

// Len returns the number of stops.
func (c *Linear) Len() int {
	return len(c.stops)
}

// At returns the colour at position t. t is clamped to [0, 1]; NaN maps to
// the first stop.
func (c *Linear) At(t float64) colorful.Color {
	if math.IsNaN(t) || t <= 0 {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1]
	}

	idx := t * float64(len(c.stops)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(c.stops) {
		upper = len(c.stops) - 1
	}

	frac := idx - float64(lower)
	lo, hi := c.stops[lower], c.stops[upper]
	return colorful.Color{
		R: lo.R + frac*(hi.R-lo.R),
		G: lo.G + frac*(hi.G-lo.G),
		B: lo.B + frac*(hi.B-lo.B),
	}
}

// samplePoints are the positions Validate looks a colormap up at.
var samplePoints = []float64{0, 0.125, 0.25, 0.5, 0.75, 0.875, 1}

const channelSlack = 1e-9

// Validate checks that cm accepts every sample point in [0, 1] and returns
// finite channels within [0, 1]. A panicking colormap is reported as an error.
func Validate(cm Colormap) (err error) {
	if cm == nil {
		return fmt.Errorf("%w: nil colormap", ErrInvalidColormap)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: lookup panicked: %v", ErrInvalidColormap, r)
		}
	}()

	for _, t := range samplePoints {
		c := cm.At(t)
		for _, v := range [3]float64{c.R, c.G, c.B} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite channel at t=%v", ErrInvalidColormap, t)
			}
			if v < -channelSlack || v > 1+channelSlack {
				return fmt.Errorf("%w: channel %v out of range at t=%v", ErrInvalidColormap, v, t)
			}
		}
	}
	return nil
}
