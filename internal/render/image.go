package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/davidlowryduda/phase-mag-plot/internal/colour"
	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
)

// ToImage converts buf to an 8-bit image. Channels are clipped to [0,1] and
// the rows are flipped so that YMin ends up at the bottom of the image.
func ToImage(buf *domain.PixelBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Cols, buf.Rows))
	for row := 0; row < buf.Rows; row++ {
		y := buf.Rows - 1 - row
		for col, c := range buf.Row(row) {
			q := c.RGBA8()
			img.SetNRGBA(col, y, color.NRGBA{R: q.R, G: q.G, B: q.B, A: 0xff})
		}
	}
	return img
}

// Resample scales src to width x height with interp. A zero width or height
// keeps the source dimension.
func Resample(src image.Image, width, height int, interp draw.Interpolator) *image.NRGBA {
	sb := src.Bounds()
	if width <= 0 {
		width = sb.Dx()
	}
	if height <= 0 {
		height = sb.Dy()
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	interp.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}

// pixels reads one image row back as colours.
func pixels(img *image.NRGBA, y int) []colour.RGB {
	b := img.Bounds()
	out := make([]colour.RGB, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		out = append(out, colour.ToRGB(img.NRGBAAt(x, y)))
	}
	return out
}
