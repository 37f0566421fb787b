package domain

import (
	"fmt"
	"math"
	"sync"

	"github.com/davidlowryduda/phase-mag-plot/internal/colormap"
	"github.com/davidlowryduda/phase-mag-plot/internal/colour"
	"github.com/davidlowryduda/phase-mag-plot/internal/lightness"
)

// CellEncoder colours a single sample. ok is false for undefined samples,
// whose colour is later replaced by the mask.
type CellEncoder func(z complex128) (c colour.RGB, ok bool)

// PhaseMagEncoder returns the inline HSV encoder for the given lightness model.
func PhaseMagEncoder(model lightness.Model) CellEncoder {
	return func(z complex128) (colour.RGB, bool) {
		r, arg, ok := Polar(z)
		if !ok {
			return colour.Black, false
		}
		l, ok := model.Lightness(r, arg)
		if !ok {
			return colour.Black, false
		}
		return colour.PhaseMag(arg, l), true
	}
}

// ColormapEncoder returns the colormap encoder. The hue comes from cm at
// (arg+pi)/(2pi); when contoured or tiled, ContourStrength times the
// lightness is added to the HLS lightness of that colour.
func ColormapEncoder(model lightness.Model, cm colormap.Colormap, contoured bool) CellEncoder {
	adjust := contoured || model.Tiled
	return func(z complex128) (colour.RGB, bool) {
		r, arg, ok := Polar(z)
		if !ok {
			return colour.Black, false
		}
		l, ok := model.Lightness(r, arg)
		if !ok {
			return colour.Black, false
		}
		t := (arg + math.Pi) / (2 * math.Pi)
		hls := colour.ToHLS(colour.FromColorful(cm.At(t)))
		if adjust {
			hls = hls.AdjustLightness(ContourStrength * l)
		}
		return colour.FromHLS(hls), true
	}
}

// Encode colours every cell of g with enc using the given number of workers,
// then applies the undefined mask. Output does not depend on workers.
func Encode(g *Grid, enc CellEncoder, workers int) (*PixelBuffer, *Mask) {
	buf := NewPixelBuffer(g.rows, g.cols)
	forEachRow(g.rows, workers, func(row int) {
		base := row * g.cols
		for col := 0; col < g.cols; col++ {
			c, _ := enc(g.data[base+col])
			buf.Pix[base+col] = c
		}
	})

	mask := UndefinedMask(g)
	// Shapes are equal by construction.
	_ = Assemble(buf, mask)
	return buf, mask
}

// forEachRow calls fn for every row in [0, rows). Each row is handled by
// exactly one goroutine.
func forEachRow(rows, workers int, fn func(row int)) {
	if workers <= 1 || rows <= 1 {
		for row := 0; row < rows; row++ {
			fn(row)
		}
		return
	}
	workers = min(workers, rows)

	next := make(chan int, rows)
	for row := 0; row < rows; row++ {
		next <- row
	}
	close(next)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var panicked any
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if panicked == nil {
						panicked = r
					}
					mu.Unlock()
				}
			}()
			for row := range next {
				fn(row)
			}
		}()
	}
	wg.Wait()

	// A panicking colormap is a programming error; surface it on the caller's
	// goroutine.
	if panicked != nil {
		panic(panicked)
	}
}

// PhaseMag renders g with the inline HSV encoder.
func PhaseMag(g *Grid, opts Options) (*PixelBuffer, error) {
	opts.Mode = ModePhaseMag
	return Render(g, opts)
}

// ColorComplex renders g with the colormap encoder.
func ColorComplex(g *Grid, opts Options) (*PixelBuffer, error) {
	opts.Mode = ModeColormap
	return Render(g, opts)
}

// Render validates opts and renders g with the encoder opts.Mode selects.
func Render(g *Grid, opts Options) (*PixelBuffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if g == nil || g.rows == 0 || g.cols == 0 {
		return nil, ErrEmptyGrid
	}

	model := opts.model()
	var enc CellEncoder
	switch opts.Mode {
	case ModeColormap:
		enc = ColormapEncoder(model, opts.colormap(), !opts.NoContours)
	default:
		enc = PhaseMagEncoder(model)
	}

	log := opts.logger()
	workers := opts.workers()
	log.Debug("encoding grid",
		"rows", g.rows, "cols", g.cols,
		"mode", modeName(opts.Mode), "lightness", model.String(),
		"workers", workers)

	buf, mask := Encode(g, enc, workers)
	buf.Extent = opts.Extent()
	buf.Interpolation = opts.interpolation()

	switch n := mask.Count(); {
	case n == len(mask.bits):
		log.Warn("every sample is undefined; the image will be blank")
	case n > 0:
		log.Debug("masked undefined samples", "count", n)
	}
	return buf, nil
}

func modeName(m Mode) string {
	if m == "" {
		return string(ModePhaseMag)
	}
	return string(m)
}

// String describes the options for logging.
func (o Options) String() string {
	rows, cols := o.Dimensions()
	return fmt.Sprintf("%s x=%s y=%s %dx%d tiled=%t", modeName(o.Mode), o.XRange, o.YRange, cols, rows, o.Tiled)
}
