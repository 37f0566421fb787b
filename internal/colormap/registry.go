package colormap

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultName is the colormap used when none is requested.
const DefaultName = "cividis"

// Entry describes a registered colormap.
type Entry struct {
	Name        string
	Description string
	Cyclic      bool
	Colormap    Colormap
}

var registry = map[string]Entry{
	"cividis": {Name: "cividis", Description: "perceptually uniform, colour-vision deficiency friendly (default)", Colormap: Cividis},
	"viridis": {Name: "viridis", Description: "perceptually uniform blue-green-yellow", Colormap: Viridis},
	"plasma":  {Name: "plasma", Description: "perceptually uniform blue-magenta-yellow", Colormap: Plasma},
	"inferno": {Name: "inferno", Description: "perceptually uniform black-red-yellow", Colormap: Inferno},
	"magma":   {Name: "magma", Description: "perceptually uniform black-purple-cream", Colormap: Magma},
	"hsluv":   {Name: "hsluv", Description: "cyclic hue circle at constant HSLuv lightness", Cyclic: true, Colormap: DefaultHSLuv},
	"hsv":     {Name: "hsv", Description: "cyclic fully saturated HSV hue circle", Cyclic: true, Colormap: HSV{}},
}

// Default returns the default colormap.
func Default() Colormap {
	return Cividis
}

// Lookup returns the registered colormap with the given name.
// Names are case-insensitive.
func Lookup(name string) (Colormap, error) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown colormap %q (available: %s)", ErrInvalidColormap, name, strings.Join(Names(), ", "))
	}
	return e.Colormap, nil
}

// Names returns all registered colormap names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all registered colormaps sorted by name.
func Entries() []Entry {
	names := Names()
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = registry[name]
	}
	return entries
}
