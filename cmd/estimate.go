package cmd

import (
	"github.com/huangsam/magarea/core"
	"github.com/huangsam/magarea/internal/contract"
	"github.com/spf13/cobra"
)

// magCmd evaluates the median magnitude for rupture areas.
var magCmd = &cobra.Command{
	Use:   "mag <area>...",
	Short: "Median moment magnitude for one or more rupture areas (km²).",
	Long: `Evaluate Mw = a + b*log10(A) for each rupture area A in km².

The regression branch follows --rake and --regime. With an undefined rake there
is no branch in either regime, so the median and sigma are reported as N/A.
Pass negative values after "--" so they are not read as flags.

Examples:
  # Shallow reverse-faulting event with a 500 km² rupture
  magarea mag 500 --rake 90

  # Several areas on the subduction interface (any defined rake selects it)
  magarea mag 100 1000 10000 --regime interface --rake 90

  # Export to CSV
  magarea mag 500 --rake -90 --output csv --output-file normal.csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMag(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot evaluate magnitude", err)
		}
	},
}

// areaCmd evaluates the median rupture area for magnitudes.
var areaCmd = &cobra.Command{
	Use:   "area <magnitude>...",
	Short: "Median rupture area (km²) for one or more moment magnitudes.",
	Long: `Evaluate A = 10^(a + b*Mw) for each moment magnitude Mw.
Pass negative magnitudes after "--" so they are not read as flags.

Examples:
  # Strike-slip Mw 7
  magarea area 7 --rake 0

  # Interface megathrust magnitudes as JSON
  magarea area 8 8.5 9 --regime interface --rake 90 --output json

  # Negative magnitudes
  magarea area --rake -90 -- -1 0.5`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteArea(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot evaluate area", err)
		}
	},
}

// stddevCmd reports the standard deviation of the selected branch.
var stddevCmd = &cobra.Command{
	Use:   "stddev",
	Short: "Standard deviation of magnitude and log10 area for a rake and regime.",
	Long: `Report sigma for the branch selected by --rake and --regime.

The relation uses the same sigma for magnitude and for log10 area.

Examples:
  magarea stddev --rake 90
  magarea stddev --regime interface --rake 90`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStdDev(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot evaluate standard deviation", err)
		}
	},
}

// describeCmd names the selected branch.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe the fault mechanism selected by a rake and regime.",
	Long: `Print the mechanism and description of the regression branch.

Examples:
  magarea describe --rake 180
  magarea describe --rake -60 --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDescribe(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot describe event", err)
		}
	},
}
