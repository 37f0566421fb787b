package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/davidlowryduda/phase-mag-plot/internal/colormap"
	"github.com/davidlowryduda/phase-mag-plot/internal/config"
	"github.com/davidlowryduda/phase-mag-plot/internal/domain"
	"github.com/davidlowryduda/phase-mag-plot/internal/lightness"
	"github.com/davidlowryduda/phase-mag-plot/internal/render"
	"github.com/davidlowryduda/phase-mag-plot/internal/sampler"
)

// plotFlags holds the flags of the plot command.
type plotFlags struct {
	function      string
	xRange        rangeFlag
	yRange        rangeFlag
	plotPoints    int
	plotPointsY   int
	mode          string
	tiled         bool
	tileDivisor   float64
	contoured     bool
	colormap      string
	colormapFile  string
	interpolation string
	output        string
	width         int
	height        int
	preview       bool
	extentJSON    string
	workers       int
}

func newPlotCmd(g *globalFlags, cfg config.Config) *cobra.Command {
	def := domain.DefaultOptions()
	f := &plotFlags{
		xRange: rangeFlag(def.XRange),
		yRange: rangeFlag(def.YRange),
	}

	cmd := &cobra.Command{
		Use:   "plot [function]",
		Short: "Plot a complex function",
		Long: `Sample a complex function on a grid and write a domain colouring plot.

The function is a built-in name (see "phasemag functions") or a polynomial
given as poly:c_n,...,c_0 with real or complex coefficients, highest degree
first. The output format follows the file extension; a trailing .gz or .xz
compresses the file. Without --output the plot is previewed in the terminal.`,
		Example: `  phasemag plot z^2 -o square.png
  phasemag plot rational -m colormap -c viridis -o rational.png.xz
  phasemag plot poly:1,0,-1 --tiled --tile-divisor 4 --preview
  phasemag plot exp -x -6:6 -y -6:6 -n 600 --width 1200 --height 1200 -o exp.png`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return sampler.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if cmd.Flags().Changed("function") && args[0] != f.function {
					return fmt.Errorf("function given both as argument %q and --function %q", args[0], f.function)
				}
				f.function = args[0]
			}
			return runPlot(cmd, g, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.function, "function", "f", "z", "built-in function name or poly:coefficients")
	flags.VarP(&f.xRange, "x-range", "x", "real axis range")
	flags.VarP(&f.yRange, "y-range", "y", "imaginary axis range")
	flags.IntVarP(&f.plotPoints, "plot-points", "n", cfg.PlotPoints, "samples per axis")
	flags.IntVar(&f.plotPointsY, "plot-points-y", 0, "samples along the imaginary axis (default: --plot-points)")
	flags.StringVarP(&f.mode, "mode", "m", string(cfg.Mode), "colouring mode (phase-mag, colormap)")
	flags.BoolVar(&f.tiled, "tiled", false, "add angular tiles to the magnitude contours")
	flags.Float64Var(&f.tileDivisor, "tile-divisor", lightness.DefaultTileDivisor, "tiled lightness divisor (3 or 4)")
	flags.BoolVar(&f.contoured, "contoured", !def.NoContours, "darken magnitude contours in colormap mode")
	flags.StringVarP(&f.colormap, "colormap", "c", cfg.Colormap, "colormap for colormap mode")
	flags.StringVar(&f.colormapFile, "colormap-file", "", "gradient image to use as the colormap")
	flags.StringVarP(&f.interpolation, "interpolation", "i", cfg.Interpolation,
		"resampling filter ("+strings.Join(render.InterpolationNames(), ", ")+")")
	flags.StringVarP(&f.output, "output", "o", "", "output image file")
	flags.IntVar(&f.width, "width", 0, "output width in pixels (default: grid width)")
	flags.IntVar(&f.height, "height", 0, "output height in pixels (default: grid height)")
	flags.BoolVar(&f.preview, "preview", false, "preview the plot in the terminal")
	flags.StringVar(&f.extentJSON, "extent-json", "", "write the plot extent to this JSON file")
	flags.IntVar(&f.workers, "workers", cfg.Workers, "encoding goroutines (default: one per CPU)")

	cmd.MarkFlagsMutuallyExclusive("colormap", "colormap-file")

	_ = cmd.RegisterFlagCompletionFunc("function", completeFixed(sampler.Names()))
	_ = cmd.RegisterFlagCompletionFunc("colormap", completeFixed(colormap.Names()))
	_ = cmd.RegisterFlagCompletionFunc("interpolation", completeFixed(render.InterpolationNames()))
	_ = cmd.RegisterFlagCompletionFunc("mode", completeFixed(modeNames()))
	return cmd
}

func completeFixed(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func modeNames() []string {
	modes := domain.ValidModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return names
}

// options converts the flags into pipeline options.
func (f *plotFlags) options(logger hclog.Logger) (domain.Options, error) {
	opts := domain.Options{
		XRange:        domain.Range(f.xRange),
		YRange:        domain.Range(f.yRange),
		PlotPoints:    f.plotPoints,
		PlotPointsY:   f.plotPointsY,
		Mode:          domain.Mode(strings.ToLower(f.mode)),
		Tiled:         f.tiled,
		TileDivisor:   f.tileDivisor,
		NoContours:    !f.contoured,
		Interpolation: f.interpolation,
		Workers:       f.workers,
		Logger:        logger,
	}

	var err error
	if f.colormapFile != "" {
		opts.Colormap, err = colormap.Load(f.colormapFile)
		if err != nil {
			return opts, err
		}
	} else {
		opts.Colormap, err = colormap.Lookup(f.colormap)
		if err != nil {
			return opts, err
		}
	}

	if _, err := render.Interpolator(f.interpolation); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

func runPlot(cmd *cobra.Command, g *globalFlags, f *plotFlags) error {
	logger := g.logger(cmd.ErrOrStderr())

	fn, err := sampler.Lookup(f.function)
	if err != nil {
		return err
	}
	opts, err := f.options(logger)
	if err != nil {
		return err
	}
	if f.width < 0 || f.height < 0 {
		return fmt.Errorf("output size must not be negative, got %dx%d", f.width, f.height)
	}
	if f.output != "" {
		if _, _, err := render.EncoderFor(f.output); err != nil {
			return err
		}
	}

	rows, cols := opts.Dimensions()
	logger.Debug("plotting", "function", f.function, "options", opts.String())
	grid, err := sampler.New(logger).Sample(fn, opts.XRange, opts.YRange, cols, rows)
	if err != nil {
		return err
	}

	buf, err := domain.Render(grid, opts)
	if err != nil {
		return err
	}

	adapter := render.New(logger, f.width, f.height)
	out := cmd.OutOrStdout()

	if f.output != "" {
		if err := adapter.WriteFile(f.output, buf); err != nil {
			return err
		}
		g.printf(out, "Wrote %s\n", f.output)
	}
	if f.extentJSON != "" {
		if err := render.WriteExtent(f.extentJSON, buf); err != nil {
			return err
		}
		g.printf(out, "Wrote %s\n", f.extentJSON)
	}
	if f.preview || f.output == "" {
		termCols, termRows := render.StdoutSize()
		// Leave a line for the shell prompt.
		if err := adapter.Preview(out, buf, termCols, max(1, termRows-1)); err != nil {
			return err
		}
	}
	return nil
}
