// Package lightness maps the magnitude (and optionally the argument) of a
// complex sample to a lightness scalar that produces log-scaled contour bands.
//
// Two variants exist. The cyclic variant bands every doubling of the
// magnitude. The tiled variant additionally cuts every half-turn of the
// argument into five sectors, giving a grid of tiles.
package lightness

import (
	"fmt"
	"math"
)

// Base is the lightness offset shared by both variants.
const Base = 0.15

// Sectors is the number of angular sectors per half-turn in tiled mode.
const Sectors = 5

// Tile divisors observed in the two historical tiled implementations.
// They differ only in how strongly each band darkens the tile.
const (
	TileDivisorThree = 3.0
	TileDivisorFour  = 4.0
)

// DefaultTileDivisor is used when a Model is built without an explicit divisor.
const DefaultTileDivisor = TileDivisorThree

// Frac returns the fractional part of t folded into [0, 1).
func Frac(t float64) float64 {
	f := t - math.Floor(t)
	// t - floor(t) can round up to exactly 1 for tiny negative t.
	if f >= 1 {
		f = 0
	}
	return f
}

// usable reports whether r can be passed to log2.
func usable(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}

// Cyclic returns 0.15 - frac(log2 r)/2.
// ok is false when r is zero, negative or non-finite; the result is then 0
// and the caller must treat the sample as undefined.
func Cyclic(r float64) (l float64, ok bool) {
	if !usable(r) {
		return 0, false
	}
	return Base - Frac(math.Log2(r))/2, true
}

// Tiled returns 0.15 - frac(log2 r)/d - frac(5 arg/pi)/d.
// ok is false for unusable magnitudes or a non-finite argument.
func Tiled(r, arg, d float64) (l float64, ok bool) {
	if !usable(r) || math.IsNaN(arg) || math.IsInf(arg, 0) {
		return 0, false
	}
	return Base - Frac(math.Log2(r))/d - Frac(Sectors*arg/math.Pi)/d, true
}

// ValidDivisor reports whether d is one of the known tile divisors.
func ValidDivisor(d float64) bool {
	return d == TileDivisorThree || d == TileDivisorFour
}

// Model selects between the cyclic and tiled variants.
type Model struct {
	Tiled   bool
	Divisor float64
}

// NewModel returns a Model. A zero divisor selects DefaultTileDivisor.
func NewModel(tiled bool, divisor float64) (Model, error) {
	if divisor == 0 {
		divisor = DefaultTileDivisor
	}
	if !ValidDivisor(divisor) {
		return Model{}, fmt.Errorf("unsupported tile divisor %v (valid: %v, %v)", divisor, TileDivisorThree, TileDivisorFour)
	}
	return Model{Tiled: tiled, Divisor: divisor}, nil
}

// Lightness returns the lightness for a sample with magnitude r and argument arg.
func (m Model) Lightness(r, arg float64) (float64, bool) {
	if m.Tiled {
		d := m.Divisor
		if d == 0 {
			d = DefaultTileDivisor
		}
		return Tiled(r, arg, d)
	}
	return Cyclic(r)
}

// String returns a short human-readable name for the model.
func (m Model) String() string {
	if m.Tiled {
		return fmt.Sprintf("tiled(d=%g)", m.Divisor)
	}
	return "cyclic"
}
