package colormap

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	imgload "github.com/davidlowryduda/phase-mag-plot/internal/image"
)

// FromImage builds a colormap from a gradient image. Wide images are sampled
// left to right along their middle row, tall images top to bottom along their
// middle column.
func FromImage(name string, img image.Image) (*Linear, error) {
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: gradient image %q is empty", ErrInvalidColormap, name)
	}

	var stops []colorful.Color
	if b.Dx() >= b.Dy() {
		y := b.Min.Y + b.Dy()/2
		for x := b.Min.X; x < b.Max.X; x++ {
			stops = append(stops, opaque(img, x, y))
		}
	} else {
		x := b.Min.X + b.Dx()/2
		for y := b.Min.Y; y < b.Max.Y; y++ {
			stops = append(stops, opaque(img, x, y))
		}
	}
	return NewLinear(name, stops)
}

// opaque reads a pixel and drops its alpha.
func opaque(img image.Image, x, y int) colorful.Color {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return colorful.Color{}
	}
	return c
}

// Load reads a gradient image from disk and turns it into a colormap named
// after the file.
func Load(path string) (*Linear, error) {
	img, err := imgload.NewFileLoader().Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load colormap image: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromImage(name, img)
}
