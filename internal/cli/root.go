// Package cli provides the command-line interface for phasemag.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/davidlowryduda/phase-mag-plot/internal/colour"
	"github.com/davidlowryduda/phase-mag-plot/internal/config"
	"github.com/davidlowryduda/phase-mag-plot/internal/version"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	quiet   bool
	colour  string

	// envErr is a PHASEMAG_* parsing failure, reported when a command runs.
	envErr error
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Flag defaults come from the
// environment (see internal/config).
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	cfg, err := config.FromEnv()
	if err != nil {
		g.envErr = err
		cfg = config.Default()
	}

	rootCmd := &cobra.Command{
		Use:   "phasemag",
		Short: "Domain colouring plots of complex functions",
		Long: `phasemag samples a complex function over a rectangle of the complex plane
and colours each point by its argument (hue) and magnitude (contour lightness).

Undefined points, such as poles, zeros and non-finite values, are drawn white.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if g.verbose && g.quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			if err := g.applyColour(cmd.OutOrStdout()); err != nil {
				return err
			}
			return g.envErr
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&g.colour, "colour", colourAuto, "colour escapes in output (auto, always, never)")
	_ = rootCmd.RegisterFlagCompletionFunc("colour", completeFixed([]string{colourAuto, colourAlways, colourNever}))
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newPlotCmd(g, cfg))
	rootCmd.AddCommand(newColormapsCmd())
	rootCmd.AddCommand(newFunctionsCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Values of --colour.
const (
	colourAuto   = "auto"
	colourAlways = "always"
	colourNever  = "never"
)

// applyColour enables ANSI colour for this run. In auto mode colour is only
// written to a terminal, and NO_COLOR turns it off.
func (g *globalFlags) applyColour(out io.Writer) error {
	switch g.colour {
	case colourAuto, "":
		colour.DisableColourOutput = !colour.SupportsANSIColours(out)
	case colourAlways:
		colour.DisableColourOutput = false
	case colourNever:
		colour.DisableColourOutput = true
	default:
		return fmt.Errorf("invalid --colour %q (valid: %s, %s, %s)", g.colour, colourAuto, colourAlways, colourNever)
	}
	return nil
}

// logger returns the logger for a command run: debug with --verbose, silent
// with --quiet, warnings and errors otherwise.
func (g *globalFlags) logger(w io.Writer) hclog.Logger {
	level := hclog.Warn
	switch {
	case g.verbose:
		level = hclog.Debug
	case g.quiet:
		level = hclog.Off
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "phasemag",
		Output: w,
		Level:  level,
	})
}

// printf writes progress output unless --quiet is set.
func (g *globalFlags) printf(w io.Writer, format string, args ...any) {
	if g.quiet {
		return
	}
	fmt.Fprintf(w, format, args...)
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(version.GetInfo())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
