package colour

import (
	"math"
	"testing"
)

func TestHLSRoundTrip(t *testing.T) {
	colors := []RGB{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 0.5, B: 1},
		{R: 0.2, G: 0.2, B: 0.2},
		{R: 0, G: 0.1262, B: 0.3015},
		{R: 0.9957, G: 0.9093, B: 0.2178},
		{R: 0.31, G: 0.77, B: 0.42},
		White,
		Black,
	}

	for _, c := range colors {
		got := FromHLS(ToHLS(c).AdjustLightness(0))
		if !near(got, c) {
			t.Errorf("round trip of %+v = %+v", c, got)
		}
	}
}

func TestToHLS(t *testing.T) {
	v := ToHLS(RGB{R: 1})
	if math.Abs(v.H) > tol || math.Abs(v.L-0.5) > tol || math.Abs(v.S-1) > tol {
		t.Errorf("ToHLS(red) = %+v, want H=0 L=0.5 S=1", v)
	}

	grey := ToHLS(RGB{R: 0.4, G: 0.4, B: 0.4})
	if grey.S != 0 || math.Abs(grey.L-0.4) > tol {
		t.Errorf("ToHLS(grey) = %+v", grey)
	}
}

func TestAdjustLightnessIsUnclamped(t *testing.T) {
	v := ToHLS(RGB{R: 0.9, G: 0.9, B: 0.9}).AdjustLightness(0.4)
	if math.Abs(v.L-1.3) > tol {
		t.Fatalf("L = %v, want 1.3", v.L)
	}
	got := FromHLS(v)
	if got.R <= 1 {
		t.Errorf("FromHLS() = %+v, want channels above 1", got)
	}
}
