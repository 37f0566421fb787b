package domain_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/davidlowryduda/phase-mag-plot/internal/colour"
	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
)

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]complex128
		err  error
	}{
		{"EmptyRows", [][]complex128{}, domain.ErrEmptyGrid},
		{"EmptyCols", [][]complex128{{}}, domain.ErrEmptyGrid},
		{"NonRectangular", [][]complex128{{1, 2}, {3}}, domain.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewGrid(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}

	if _, err := domain.NewGridFromSlice(2, 2, []complex128{1, 2, 3}); !errors.Is(err, domain.ErrNonRectangular) {
		t.Errorf("NewGridFromSlice short data error = %v", err)
	}
	if _, err := domain.NewGridFromSlice(0, 2, nil); !errors.Is(err, domain.ErrEmptyGrid) {
		t.Errorf("NewGridFromSlice zero rows error = %v", err)
	}
}

func TestGridIsCopied(t *testing.T) {
	rows := [][]complex128{{1, 2}, {3, 4}}
	g, err := domain.NewGrid(rows)
	if err != nil {
		t.Fatal(err)
	}
	rows[0][0] = 99
	if g.At(0, 0) != 1 {
		t.Errorf("grid changed after caller mutated input: %v", g.At(0, 0))
	}
	if g.Rows() != 2 || g.Cols() != 2 || g.At(1, 0) != 3 {
		t.Errorf("unexpected grid layout")
	}
}

func TestPolar(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	cases := []struct {
		name string
		z    complex128
		ok   bool
	}{
		{"one", 1, true},
		{"negative real", -2, true},
		{"imaginary", 3i, true},
		{"zero", 0, false},
		{"nan real", complex(nan, 0), false},
		{"nan imag", complex(1, nan), false},
		{"inf", complex(inf, 1), false},
		{"cmplx inf", cmplx.Inf(), false},
		{"overflowing magnitude", complex(math.MaxFloat64, math.MaxFloat64), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := domain.Polar(tc.z)
			if ok != tc.ok {
				t.Errorf("Polar(%v) ok = %v, want %v", tc.z, ok, tc.ok)
			}
		})
	}

	r, arg, _ := domain.Polar(-1)
	if r != 1 || arg != math.Pi {
		t.Errorf("Polar(-1) = %v, %v", r, arg)
	}
}

func TestPolarNegativeZeroImaginary(t *testing.T) {
	below := complex(-1, math.Copysign(0, -1))
	if _, arg, ok := domain.Polar(below); !ok || arg != math.Pi {
		t.Errorf("Polar(-1-0i) arg = %v, want pi", arg)
	}

	g, err := domain.NewGrid([][]complex128{{below, -1}})
	if err != nil {
		t.Fatal(err)
	}
	for _, mode := range domain.ValidModes() {
		opts := domain.DefaultOptions()
		opts.Mode = mode
		buf, err := domain.Render(g, opts)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if buf.At(0, 0) != buf.At(0, 1) {
			t.Errorf("%s: -1-0i rendered %v, -1+0i rendered %v", mode, buf.At(0, 0), buf.At(0, 1))
		}
	}
}

func TestUndefinedMask(t *testing.T) {
	g, _ := domain.NewGrid([][]complex128{
		{1, 0, complex(math.NaN(), 1)},
		{2i, cmplx.Inf(), -1},
	})
	m := domain.UndefinedMask(g)
	want := [][]bool{{false, true, true}, {false, true, false}}
	for r := range want {
		for c := range want[r] {
			if m.At(r, c) != want[r][c] {
				t.Errorf("mask(%d,%d) = %v, want %v", r, c, m.At(r, c), want[r][c])
			}
		}
	}
	if m.Count() != 3 {
		t.Errorf("Count() = %d, want 3", m.Count())
	}
}

func TestAssemble(t *testing.T) {
	g, _ := domain.NewGrid([][]complex128{{0, 1}})
	buf := domain.NewPixelBuffer(1, 2)
	buf.Set(0, 0, colour.RGB{R: 0.3, G: 0.2, B: 0.1})
	buf.Set(0, 1, colour.RGB{R: 0.3, G: 0.2, B: 0.1})

	if err := domain.Assemble(buf, domain.UndefinedMask(g)); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if buf.At(0, 0) != colour.White {
		t.Errorf("masked pixel = %+v, want white", buf.At(0, 0))
	}
	if buf.At(0, 1) == colour.White {
		t.Error("defined pixel was overwritten")
	}

	other := domain.NewPixelBuffer(2, 2)
	if err := domain.Assemble(other, domain.UndefinedMask(g)); !errors.Is(err, domain.ErrShapeMismatch) {
		t.Errorf("Assemble mismatched error = %v", err)
	}
}
