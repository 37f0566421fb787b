package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/draw"
)

// DefaultInterpolation is used when a buffer carries no interpolation name.
const DefaultInterpolation = "catrom"

// ErrUnknownInterpolation is returned for interpolation names with no
// matching resampler.
var ErrUnknownInterpolation = errors.New("render: unknown interpolation")

var interpolators = map[string]draw.Interpolator{
	"catrom":          draw.CatmullRom,
	"bilinear":        draw.BiLinear,
	"approx-bilinear": draw.ApproxBiLinear,
	"nearest":         draw.NearestNeighbor,
	"none":            draw.NearestNeighbor,
}

// Interpolator maps an interpolation name to a resampler. The empty name
// selects DefaultInterpolation.
func Interpolator(name string) (draw.Interpolator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultInterpolation
	}
	interp, ok := interpolators[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownInterpolation, name, strings.Join(InterpolationNames(), ", "))
	}
	return interp, nil
}

// InterpolationNames returns the supported interpolation names, sorted.
func InterpolationNames() []string {
	names := make([]string, 0, len(interpolators))
	for name := range interpolators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
