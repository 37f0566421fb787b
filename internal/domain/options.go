package domain

import (
	"fmt"
	"math"
	"runtime"

	"github.com/hashicorp/go-hclog"

	"github.com/davidlowryduda/phase-mag-plot/internal/colormap"
	"github.com/davidlowryduda/phase-mag-plot/internal/lightness"
)

// Mode selects the colour encoder.
type Mode string

const (
	// ModePhaseMag synthesises colours directly with the inline HSV encoder.
	ModePhaseMag Mode = "phase-mag"
	// ModeColormap looks the hue up in a colormap and layers contours in
	// through an HLS adjustment.
	ModeColormap Mode = "colormap"
)

// ValidModes returns the supported encoder modes.
func ValidModes() []Mode {
	return []Mode{ModePhaseMag, ModeColormap}
}

// ContourStrength scales the lightness added to the colormap's HLS lightness.
const ContourStrength = 0.4

// DefaultInterpolation is the interpolation hint passed to renderers.
const DefaultInterpolation = "catrom"

// DefaultPlotPoints is the default number of samples per axis.
const DefaultPlotPoints = 300

// Range is a closed interval [Min, Max] on one axis.
type Range struct {
	Min float64
	Max float64
}

// Validate checks that the range is finite and non-degenerate.
func (r Range) Validate(axis string) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: %s range [%v, %v] must be finite", ErrInvalidConfig, axis, r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: %s range min %v must be less than max %v", ErrInvalidConfig, axis, r.Min, r.Max)
	}
	return nil
}

// String returns the range as "min:max".
func (r Range) String() string {
	return fmt.Sprintf("%g:%g", r.Min, r.Max)
}

// Options configures a plot.
type Options struct {
	XRange Range
	YRange Range

	// PlotPoints is the number of samples along x, and along y unless
	// PlotPointsY is set.
	PlotPoints  int
	PlotPointsY int

	Mode Mode

	// Tiled selects the tiled lightness variant. TileDivisor picks which of
	// the two historical tiled variants is used; zero means the default.
	Tiled       bool
	TileDivisor float64

	// NoContours turns off the lightness adjustment in colormap mode, so the
	// zero value draws contours. Tiled mode always adjusts.
	NoContours bool

	// Colormap is used in colormap mode. Nil selects cividis.
	Colormap colormap.Colormap

	// Interpolation is passed through to the renderer untouched.
	Interpolation string

	// Workers is the number of goroutines encoding rows. Zero means one per CPU.
	Workers int

	Logger hclog.Logger
}

// DefaultOptions returns options for a 300x300 cyclic phase-mag plot over
// [-3, 3] x [-3, 3].
func DefaultOptions() Options {
	return Options{
		XRange:        Range{Min: -3, Max: 3},
		YRange:        Range{Min: -3, Max: 3},
		PlotPoints:    DefaultPlotPoints,
		Mode:          ModePhaseMag,
		Interpolation: DefaultInterpolation,
	}
}

// Validate rejects options that must abort a plot before any grid work.
func (o Options) Validate() error {
	if o.PlotPoints <= 0 {
		return fmt.Errorf("%w: plot points must be positive, got %d", ErrInvalidConfig, o.PlotPoints)
	}
	if o.PlotPointsY < 0 {
		return fmt.Errorf("%w: y plot points must not be negative, got %d", ErrInvalidConfig, o.PlotPointsY)
	}
	if err := o.XRange.Validate("x"); err != nil {
		return err
	}
	if err := o.YRange.Validate("y"); err != nil {
		return err
	}

	switch o.Mode {
	case "", ModePhaseMag:
	case ModeColormap:
		if o.Colormap != nil {
			if err := colormap.Validate(o.Colormap); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
			}
		}
	default:
		return fmt.Errorf("%w: unknown mode %q (valid: %v)", ErrInvalidConfig, o.Mode, ValidModes())
	}

	if _, err := lightness.NewModel(o.Tiled, o.TileDivisor); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, o.Workers)
	}
	return nil
}

// Dimensions returns the grid shape the options describe.
func (o Options) Dimensions() (rows, cols int) {
	rows = o.PlotPoints
	if o.PlotPointsY > 0 {
		rows = o.PlotPointsY
	}
	return rows, o.PlotPoints
}

// Extent returns the plot extent.
func (o Options) Extent() Extent {
	return Extent{XMin: o.XRange.Min, XMax: o.XRange.Max, YMin: o.YRange.Min, YMax: o.YRange.Max}
}

func (o Options) model() lightness.Model {
	m, err := lightness.NewModel(o.Tiled, o.TileDivisor)
	if err != nil {
		// Validate has already rejected bad divisors.
		panic(err)
	}
	return m
}

func (o Options) colormap() colormap.Colormap {
	if o.Colormap == nil {
		return colormap.Default()
	}
	return o.Colormap
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) interpolation() string {
	if o.Interpolation == "" {
		return DefaultInterpolation
	}
	return o.Interpolation
}

func (o Options) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}
