package colormap

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

const tol = 1e-9

func same(a, b colorful.Color) bool {
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol && math.Abs(a.B-b.B) < tol
}

func TestLinearAt(t *testing.T) {
	cm, err := NewLinear("bw", []colorful.Color{{R: 0, G: 0, B: 0}, {R: 1, G: 1, B: 1}})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, 0},
		{"middle", 0.5, 0.5},
		{"quarter", 0.25, 0.25},
		{"end", 1, 1},
		{"below range", -3, 0},
		{"above range", 7, 1},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cm.At(tt.t)
			if !same(got, colorful.Color{R: tt.want, G: tt.want, B: tt.want}) {
				t.Errorf("At(%v) = %+v, want grey %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestNewLinearNeedsTwoStops(t *testing.T) {
	_, err := NewLinear("one", []colorful.Color{{}})
	if !errors.Is(err, ErrInvalidColormap) {
		t.Errorf("NewLinear(1 stop) error = %v, want ErrInvalidColormap", err)
	}
}

func TestCividisEndpoints(t *testing.T) {
	start := Cividis.At(0)
	end := Cividis.At(1)
	if start.Hex() != "#00224e" {
		t.Errorf("cividis(0) = %s", start.Hex())
	}
	if end.Hex() != "#fee838" {
		t.Errorf("cividis(1) = %s", end.Hex())
	}
}

func TestBuiltinsValidate(t *testing.T) {
	for _, e := range Entries() {
		if err := Validate(e.Colormap); err != nil {
			t.Errorf("Validate(%s) = %v", e.Name, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		cm   Colormap
	}{
		{"nil", nil},
		{"panics", Func(func(t float64) color.Color { panic("boom") })},
		{"out of range", outOfRange{}},
		{"nan", nanMap{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.cm); !errors.Is(err, ErrInvalidColormap) {
				t.Errorf("Validate() = %v, want ErrInvalidColormap", err)
			}
		})
	}
}

type outOfRange struct{}

func (outOfRange) At(t float64) colorful.Color { return colorful.Color{R: 2 * t} }

type nanMap struct{}

func (nanMap) At(float64) colorful.Color { return colorful.Color{R: math.NaN()} }

func TestFuncDiscardsAlpha(t *testing.T) {
	cm := Func(func(t float64) color.Color {
		return color.NRGBA{R: 255, G: 0, B: 0, A: 128}
	})
	got := cm.At(0.5)
	if math.Abs(got.R-1) > 0.01 || got.G != 0 || got.B != 0 {
		t.Errorf("At() = %+v, want opaque red", got)
	}
}

func TestCyclicColormapsWrap(t *testing.T) {
	for _, name := range []string{"hsluv", "hsv"} {
		cm, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", name, err)
		}
		if !same(cm.At(0), cm.At(1)) {
			t.Errorf("%s: At(0) = %+v, At(1) = %+v", name, cm.At(0), cm.At(1))
		}
	}
}

func TestLookup(t *testing.T) {
	cm, err := Lookup(" CIVIDIS ")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if cm != Default() {
		t.Error("Lookup(cividis) is not the default colormap")
	}

	if _, err := Lookup("jet"); !errors.Is(err, ErrInvalidColormap) {
		t.Errorf("Lookup(jet) error = %v", err)
	}

	names := Names()
	if len(names) != len(Entries()) || names[0] != "cividis" {
		t.Errorf("Names() = %v", names)
	}
}

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	span := max(1, w+h-2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(255 * (x + y) / span)
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	wide, err := FromImage("wide", gradient(16, 3))
	if err != nil {
		t.Fatalf("FromImage(wide): %v", err)
	}
	if wide.Len() != 16 {
		t.Errorf("wide Len() = %d, want 16", wide.Len())
	}
	if wide.At(0).R >= wide.At(1).R {
		t.Error("wide gradient not increasing left to right")
	}

	tall, err := FromImage("tall", gradient(2, 9))
	if err != nil {
		t.Fatalf("FromImage(tall): %v", err)
	}
	if tall.Len() != 9 {
		t.Errorf("tall Len() = %d, want 9", tall.Len())
	}

	if _, err := FromImage("dot", gradient(1, 1)); !errors.Is(err, ErrInvalidColormap) {
		t.Errorf("FromImage(1x1) error = %v, want ErrInvalidColormap", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, gradient(32, 2)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cm, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cm.Name() != "ramp" {
		t.Errorf("Name() = %q, want ramp", cm.Name())
	}
	if err := Validate(cm); err != nil {
		t.Errorf("Validate(loaded) = %v", err)
	}
}
