package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidlowryduda/phase-mag-plot/internal/sampler"
)

func newFunctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List built-in functions",
		Long: `List the functions accepted by "phasemag plot".

Polynomials can also be given as poly:c_n,...,c_1,c_0, highest degree first.
Coefficients may be complex, e.g. poly:1,0,-2+1i is z^2 - 2 + i.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := NewTable([]string{"NAME", "EXPRESSION"})
			for _, b := range sampler.Builtins() {
				table.AddRow([]string{b.Name, b.Expr})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
		},
	}
}
