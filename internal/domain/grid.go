// Package domain turns a grid of complex function values into a pixel buffer
// using domain colouring: the argument of each value picks the hue and its
// magnitude drives contour banding.
package domain

import (
	"fmt"
	"math"

	"github.com/davidlowryduda/phase-mag-plot/internal/colour"
)

// Grid is an immutable row-major grid of complex samples.
// Row 0 is the smallest y, column 0 the smallest x.
type Grid struct {
	rows, cols int
	data       []complex128
}

// NewGrid copies rows into a Grid. rows must be non-empty and rectangular.
func NewGrid(rows [][]complex128) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	data := make([]complex128, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return &Grid{rows: len(rows), cols: cols, data: data}, nil
}

// NewGridFromSlice wraps a row-major slice of rows*cols samples. The slice is
// copied.
func NewGridFromSlice(rows, cols int, data []complex128) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d samples for a %dx%d grid", ErrNonRectangular, len(data), rows, cols)
	}
	cp := make([]complex128, len(data))
	copy(cp, data)
	return &Grid{rows: rows, cols: cols, data: cp}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the sample at (row, col).
func (g *Grid) At(row, col int) complex128 {
	return g.data[row*g.cols+col]
}

// Polar returns the magnitude and principal argument of z, with the argument
// in (-pi, pi] whatever the sign of a zero imaginary part. ok is false when
// z cannot be coloured: a NaN or Inf component, a non-finite derived value,
// or a zero magnitude (which must never reach log2).
func Polar(z complex128) (r, arg float64, ok bool) {
	re, im := real(z), imag(z)
	if math.IsNaN(re) || math.IsNaN(im) || math.IsInf(re, 0) || math.IsInf(im, 0) {
		return 0, 0, false
	}
	r = math.Hypot(re, im)
	arg = math.Atan2(im, re)
	if arg == -math.Pi {
		// A negative-zero imaginary part lands on the cut from below.
		arg = math.Pi
	}
	if r <= 0 || math.IsInf(r, 0) || math.IsNaN(arg) {
		return r, arg, false
	}
	return r, arg, true
}

// Mask marks grid cells whose sample is undefined.
type Mask struct {
	rows, cols int
	bits       []bool
}

// UndefinedMask computes the mask of cells Polar rejects.
func UndefinedMask(g *Grid) *Mask {
	m := &Mask{rows: g.rows, cols: g.cols, bits: make([]bool, len(g.data))}
	for i, z := range g.data {
		_, _, ok := Polar(z)
		m.bits[i] = !ok
	}
	return m
}

// Rows returns the number of rows.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mask) Cols() int { return m.cols }

// At reports whether (row, col) is undefined.
func (m *Mask) At(row, col int) bool {
	return m.bits[row*m.cols+col]
}

// Count returns the number of undefined cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Extent is the rectangle of the complex plane a buffer covers.
type Extent struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`
}

// PixelBuffer is the finished row-major colour array handed to a renderer,
// together with the extent it covers and the interpolation the renderer
// should use. Row 0 corresponds to YMin.
type PixelBuffer struct {
	Rows          int
	Cols          int
	Pix           []colour.RGB
	Extent        Extent
	Interpolation string
}

// NewPixelBuffer allocates a rows x cols buffer.
func NewPixelBuffer(rows, cols int) *PixelBuffer {
	return &PixelBuffer{Rows: rows, Cols: cols, Pix: make([]colour.RGB, rows*cols)}
}

// At returns the colour at (row, col).
func (b *PixelBuffer) At(row, col int) colour.RGB {
	return b.Pix[row*b.Cols+col]
}

// Set stores the colour at (row, col).
func (b *PixelBuffer) Set(row, col int, c colour.RGB) {
	b.Pix[row*b.Cols+col] = c
}

// Row returns the colours of one row. The slice aliases the buffer.
func (b *PixelBuffer) Row(row int) []colour.RGB {
	return b.Pix[row*b.Cols : (row+1)*b.Cols]
}

// Assemble overwrites every masked cell of buf with white. It is applied as a
// final pass after encoding.
func Assemble(buf *PixelBuffer, mask *Mask) error {
	if buf.Rows != mask.rows || buf.Cols != mask.cols {
		return fmt.Errorf("%w: buffer %dx%d, mask %dx%d", ErrShapeMismatch, buf.Rows, buf.Cols, mask.rows, mask.cols)
	}
	for i, undefined := range mask.bits {
		if undefined {
			buf.Pix[i] = colour.White
		}
	}
	return nil
}
