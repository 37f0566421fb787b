package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davidlowryduda/phase-mag-plot/internal/colormap"
	"github.com/davidlowryduda/phase-mag-plot/internal/colour"
)

// swatchWidth is the number of samples shown per colormap with --preview.
const swatchWidth = 24

// jsonSamples is the number of samples per colormap in --json output.
const jsonSamples = 9

// colormapJSON is one colormap in --json output.
type colormapJSON struct {
	Name        string             `json:"name"`
	Kind        string             `json:"kind"`
	Description string             `json:"description"`
	Swatch      []colour.ColorJSON `json:"swatch"`
}

func newColormapsCmd() *cobra.Command {
	var preview, asJSON bool
	cmd := &cobra.Command{
		Use:   "colormaps",
		Short: "List available colormaps",
		Long: `List the colormaps usable with "phasemag plot --mode colormap --colormap NAME".
Sequential colormaps jump at the negative real axis; cyclic ones do not.

With --json each colormap is listed with colours sampled evenly from t = 0
(argument -pi) to t = 1 (argument pi).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				out := make([]colormapJSON, 0, len(colormap.Entries()))
				for _, e := range colormap.Entries() {
					out = append(out, colormapJSON{
						Name:        e.Name,
						Kind:        kindOf(e),
						Description: e.Description,
						Swatch:      colour.Swatch(samples(e.Colormap, jsonSamples)),
					})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			headers := []string{"NAME", "KIND", "DESCRIPTION"}
			if preview {
				headers = append(headers, "SWATCH")
			}
			table := NewTable(headers)
			table.SetColumnMaxWidth(2, 48)
			for _, e := range colormap.Entries() {
				row := []string{e.Name, kindOf(e), e.Description}
				if preview {
					row = append(row, swatch(e.Colormap, swatchWidth))
				}
				table.AddRow(row)
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
	cmd.Flags().BoolVar(&preview, "preview", false, "show a colour swatch for each colormap")
	cmd.Flags().BoolVar(&asJSON, "json", false, "list colormaps with sampled colours as JSON")
	cmd.MarkFlagsMutuallyExclusive("preview", "json")
	return cmd
}

func kindOf(e colormap.Entry) string {
	if e.Cyclic {
		return "cyclic"
	}
	return "sequential"
}

// samples evaluates cm at n evenly spaced points of [0, 1].
func samples(cm colormap.Colormap, n int) []colour.RGB {
	out := make([]colour.RGB, n)
	for i := range out {
		out[i] = colour.FromColorful(cm.At(float64(i) / float64(n-1)))
	}
	return out
}

// swatch renders n samples of cm as a row of coloured cells.
func swatch(cm colormap.Colormap, n int) string {
	var sb strings.Builder
	for _, c := range samples(cm, n) {
		sb.WriteString(colour.ColourPreview(c, 1))
	}
	return sb.String()
}
