package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	gtlog "github.com/gtdash/gtdash/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for gtdash.
var rootCmd = &cobra.Command{
	Use:   "gtdash",
	Short: "Explore the Global Terrorism Database from the terminal",
	Long: `gtdash loads a Global Terrorism Database CSV export and turns it into a
dashboard: attacks per year, per-country trends, geolocated points by year,
and a region/country/province breakdown weighted by successful attacks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		gtlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
