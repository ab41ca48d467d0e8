package cmd

import (
	"github.com/huangsam/magarea/core"
	"github.com/huangsam/magarea/internal/contract"
	"github.com/spf13/cobra"
)

// tableCmd prints medians for the reference scenarios.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Scaling table across reverse, normal, strike-slip and interface scenarios.",
	Long: `Evaluate a grid of inputs against four reference events:
reverse (crustal, rake 90), normal (crustal, rake -90),
strike-slip (crustal, rake 0) and interface (rake 90).

A final sigma row lists the standard deviation of each scenario.
--rake and --regime do not apply here.

Examples:
  # Median magnitude for 1, 500, 1e4 and 1e5 km²
  magarea table

  # Median area for Mw 4, 6, 8 and 9
  magarea table --kind area

  # Custom inputs as CSV
  magarea table --kind mag --values 10,100,1000 --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTable(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot build scaling table", err)
		}
	},
}

// coeffsCmd prints the regression constants.
var coeffsCmd = &cobra.Command{
	Use:   "coeffs",
	Short: "Display the regression coefficients per mechanism.",
	Long: `Show the intercepts, slopes and sigma of every branch along with the formulas.

Examples:
  magarea coeffs
  magarea coeffs --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCoeffs(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot print coefficients", err)
		}
	},
}
