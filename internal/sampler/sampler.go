// Package sampler evaluates a complex function over an evenly spaced grid of
// the complex plane.
package sampler

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
)

// Func is a complex function of one complex variable.
type Func func(z complex128) complex128

// undefined is the sample recorded when evaluation fails.
var undefined = complex(math.NaN(), math.NaN())

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n = 1 yields just lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Sampler evaluates functions over a grid.
type Sampler struct {
	logger hclog.Logger
}

// New creates a Sampler. A nil logger discards output.
func New(logger hclog.Logger) *Sampler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Sampler{logger: logger}
}

// Sample evaluates f at cols x rows points spanning xr and yr. Row i holds
// the i-th y value, column j the j-th x value. A panic inside f marks that
// single cell undefined.
func (s *Sampler) Sample(f Func, xr, yr domain.Range, cols, rows int) (*domain.Grid, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: no function to sample", domain.ErrInvalidConfig)
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", domain.ErrInvalidConfig, cols, rows)
	}

	xs := Linspace(xr.Min, xr.Max, cols)
	ys := Linspace(yr.Min, yr.Max, rows)

	data := make([]complex128, 0, rows*cols)
	failures := 0
	for _, y := range ys {
		for _, x := range xs {
			v, ok := eval(f, complex(x, y))
			if !ok {
				failures++
			}
			data = append(data, v)
		}
	}

	if failures > 0 {
		s.logger.Debug("function evaluation failed at some grid points", "count", failures)
	}
	return domain.NewGridFromSlice(rows, cols, data)
}

// eval calls f and recovers from a panic, returning an undefined sample.
func eval(f Func, z complex128) (v complex128, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			v, ok = undefined, false
		}
	}()
	return f(z), true
}

// Sample evaluates f with a Sampler that discards log output.
func Sample(f Func, xr, yr domain.Range, cols, rows int) (*domain.Grid, error) {
	return New(nil).Sample(f, xr, yr, cols, rows)
}
