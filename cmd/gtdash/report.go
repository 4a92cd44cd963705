package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gtdash/gtdash/internal/config"
	"github.com/gtdash/gtdash/internal/dashboard"
)

// Report-specific flag values.
var (
	reportEncoding     string
	reportSections     string
	reportCountries    string
	reportFormat       string
	reportTopProvinces int
	reportPreviewRows  int
	reportOutput       string
)

// reportCmd renders the dashboard for a dataset.
var reportCmd = &cobra.Command{
	Use:   "report [dataset]",
	Short: "Render the incident dashboard",
	Long: `Load a Global Terrorism Database CSV export and render the dashboard:
a dataset summary, attacks per year, per-country trends for the selected
countries, geolocated points per year, and the region/country/province
breakdown of successful attacks.

The dataset defaults to ./data/terrorism.csv read as latin-1. Settings may
also come from .gtdash.yaml or .gtdash.toml in the working directory; flags
take precedence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportEncoding, "encoding", "", "dataset text encoding (default latin-1)")
	reportCmd.Flags().StringVar(&reportSections, "sections", "", "comma-separated list of dashboard sections to include")
	reportCmd.Flags().StringVar(&reportCountries, "countries", "", "comma-separated list of countries for the per-country chart")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format: text or json (default text)")
	reportCmd.Flags().IntVar(&reportTopProvinces, "top-provinces", 0, "provinces kept per country in the breakdown (default 5)")
	reportCmd.Flags().IntVar(&reportPreviewRows, "preview-rows", 0, "rows shown in the dataset preview (default 4)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path (default: stdout)")
}

func runReport(cmd *cobra.Command, args []string) error {
	// 1. Resolve options from flags and config files.
	opts, err := resolveOptions(config.Options{
		Dataset:      datasetArg(args),
		Encoding:     reportEncoding,
		Format:       reportFormat,
		Sections:     splitList(reportSections),
		Countries:    splitList(reportCountries),
		TopProvinces: reportTopProvinces,
		PreviewRows:  reportPreviewRows,
	})
	if err != nil {
		return err
	}

	names, unknown := dashboard.ResolveSections(opts.Sections)
	if len(unknown) > 0 {
		return exitError(ExitInvalidArgs, "gtdash: unknown section %q", unknown[0])
	}

	// 2. Load the dataset.
	table, loadTime, err := loadTable(opts)
	if err != nil {
		return err
	}

	// 3. Build sections.
	results, err := dashboard.Build(cmd.Context(), dashboard.Input{
		Table:        table,
		Countries:    opts.Countries,
		TopProvinces: opts.TopProvinces,
		PreviewRows:  opts.PreviewRows,
	}, names)
	if err != nil {
		return exitError(ExitRenderFailure, "gtdash: building dashboard failed (%v)", err)
	}

	// 4. Render into memory, then write the destination. The output file
	// is only created once rendering has succeeded.
	meta := dashboard.Meta{
		Dataset:     opts.Dataset,
		Encoding:    opts.Encoding,
		Records:     table.Len(),
		Countries:   opts.Countries,
		LoadTime:    loadTime,
		GeneratedAt: time.Now(),
	}
	var buf bytes.Buffer
	if err := renderDashboard(opts.Format, meta, results, &buf); err != nil {
		return exitError(ExitRenderFailure, "gtdash: rendering failed (%v)", err)
	}
	if err := writeReport(cmd.OutOrStdout(), reportOutput, buf.Bytes()); err != nil {
		return exitError(ExitRenderFailure, "gtdash: %v", err)
	}

	slog.Info("report complete", "sections", len(results), "records", table.Len())
	return nil
}

func renderDashboard(format string, meta dashboard.Meta, results []dashboard.Result, w io.Writer) error {
	if format == "json" {
		return dashboard.RenderJSON(meta, results, w)
	}
	return dashboard.RenderText(meta, results, w)
}

// writeReport writes data to the file at path, or to stdout when path is
// empty.
func writeReport(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	}
	f, err := cmdFS.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file %q (%w)", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
