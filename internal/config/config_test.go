package config

import (
	"errors"
	"testing"

	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if c.Colormap != "cividis" || c.Interpolation != "catrom" || c.PlotPoints != 300 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestOverlay(t *testing.T) {
	c, err := Default().Overlay(env(map[string]string{
		EnvColormap:      "viridis",
		EnvInterpolation: "nearest",
		EnvPlotPoints:    "64",
		EnvWorkers:       "3",
		EnvMode:          "Colormap",
	}))
	if err != nil {
		t.Fatalf("Overlay: %v", err)
	}
	want := Config{Colormap: "viridis", Interpolation: "nearest", PlotPoints: 64, Workers: 3, Mode: domain.ModeColormap}
	if c != want {
		t.Errorf("Overlay() = %+v, want %+v", c, want)
	}
}

func TestOverlayIgnoresEmpty(t *testing.T) {
	c, err := Default().Overlay(env(map[string]string{EnvColormap: "  ", EnvPlotPoints: ""}))
	if err != nil {
		t.Fatalf("Overlay: %v", err)
	}
	if c != Default() {
		t.Errorf("Overlay() = %+v, want defaults", c)
	}
}

func TestOverlayRejects(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"non-numeric points", map[string]string{EnvPlotPoints: "many"}},
		{"zero points", map[string]string{EnvPlotPoints: "0"}},
		{"negative workers", map[string]string{EnvWorkers: "-1"}},
		{"unknown colormap", map[string]string{EnvColormap: "jet"}},
		{"unknown interpolation", map[string]string{EnvInterpolation: "lanczos"}},
		{"unknown mode", map[string]string{EnvMode: "rainbow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Default().Overlay(env(tt.vars))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Overlay() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvColormap, "magma")
	t.Setenv(EnvWorkers, "2")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.Colormap != "magma" || c.Workers != 2 {
		t.Errorf("FromEnv() = %+v", c)
	}
}
