// Package config holds the CLI defaults and their environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/davidlowryduda/phase-mag-plot/internal/colormap"
	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
	"github.com/davidlowryduda/phase-mag-plot/internal/render"
)

// Environment variables read by FromEnv.
const (
	EnvColormap      = "PHASEMAG_COLORMAP"
	EnvInterpolation = "PHASEMAG_INTERPOLATION"
	EnvPlotPoints    = "PHASEMAG_PLOT_POINTS"
	EnvWorkers       = "PHASEMAG_WORKERS"
	EnvMode          = "PHASEMAG_MODE"
)

// ErrInvalid is returned for unusable configuration values.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings the CLI uses as flag defaults.
type Config struct {
	// Colormap is a registered colormap name.
	Colormap string

	// Interpolation is passed through to the renderer.
	Interpolation string

	// PlotPoints is the number of samples per axis.
	PlotPoints int

	// Workers is the number of encoding goroutines. Zero uses every CPU.
	Workers int

	// Mode selects the colouring pipeline.
	Mode domain.Mode
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Colormap:      colormap.DefaultName,
		Interpolation: domain.DefaultInterpolation,
		PlotPoints:    domain.DefaultPlotPoints,
		Mode:          domain.ModePhaseMag,
	}
}

// FromEnv returns Default overlaid with any PHASEMAG_* variables that are set.
func FromEnv() (Config, error) {
	return Default().Overlay(os.LookupEnv)
}

// Overlay applies values from lookup on top of c. Unset or empty variables
// leave the current value.
func (c Config) Overlay(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvColormap); ok {
		c.Colormap = v
	}
	if v, ok := get(EnvInterpolation); ok {
		c.Interpolation = v
	}
	if v, ok := get(EnvMode); ok {
		c.Mode = domain.Mode(strings.ToLower(v))
	}
	if v, ok := get(EnvPlotPoints); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvPlotPoints, v, err)
		}
		c.PlotPoints = n
	}
	if v, ok := get(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvWorkers, v, err)
		}
		c.Workers = n
	}
	return c, c.Validate()
}

// Validate checks that every field names something that exists.
func (c Config) Validate() error {
	if _, err := colormap.Lookup(c.Colormap); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := render.Interpolator(c.Interpolation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.PlotPoints <= 0 {
		return fmt.Errorf("%w: plot points must be positive, got %d", ErrInvalid, c.PlotPoints)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}
	if !slices.Contains(domain.ValidModes(), c.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	}
	return nil
}
