package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gtdash/gtdash/internal/config"
	"github.com/gtdash/gtdash/internal/stats"
)

// Countries-specific flag values.
var (
	countriesEncoding string
	countriesSorted   bool
)

// countriesCmd lists the countries that can be passed to report --countries.
var countriesCmd = &cobra.Command{
	Use:   "countries [dataset]",
	Short: "List the countries available for selection",
	Long: `Print every distinct country in the dataset, one per line, in the order
they first appear. These are the values accepted by report --countries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCountries,
}

func init() {
	countriesCmd.Flags().StringVar(&countriesEncoding, "encoding", "", "dataset text encoding (default latin-1)")
	countriesCmd.Flags().BoolVar(&countriesSorted, "sorted", false, "sort countries alphabetically")
}

func runCountries(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(config.Options{
		Dataset:  datasetArg(args),
		Encoding: countriesEncoding,
	})
	if err != nil {
		return err
	}

	table, _, err := loadTable(opts)
	if err != nil {
		return err
	}

	countries := stats.Countries(table)
	if countriesSorted {
		sort.Strings(countries)
	}
	w := cmd.OutOrStdout()
	for _, c := range countries {
		_, _ = fmt.Fprintln(w, c)
	}
	return nil
}
