package dashboard

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/gtdash/gtdash/internal/stats"
)

// countriesSection reports yearly incidents for the selected countries,
// one column per country.
type countriesSection struct{}

func (countriesSection) Name() string        { return "countries" }
func (countriesSection) Description() string { return "Incidents over years for selected countries" }

type countriesPanel struct {
	series []stats.CountrySeries
}

func (countriesSection) Build(in Input) (Panel, error) {
	series := stats.CountryYearlyCounts(in.Table, in.Countries)
	if len(series) == 0 {
		return nil, fmt.Errorf("countries: %w", ErrNoSelection)
	}
	return &countriesPanel{series: series}, nil
}

func (p *countriesPanel) Data() any { return p.series }

func (p *countriesPanel) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	_, _ = fmt.Fprintf(ew, "%s\n", SectionTitle("Incidents Over Years for Selected Countries"))

	cols := []Column{{Header: "Year", Align: AlignRight}}
	byCountry := make([]map[int]int, len(p.series))
	years := make(map[int]bool)
	for i, s := range p.series {
		cols = append(cols, Column{Header: s.Country, Align: AlignRight})
		byCountry[i] = make(map[int]int, len(s.Points))
		for _, pt := range s.Points {
			byCountry[i][pt.Year] = pt.Count
			years[pt.Year] = true
		}
	}

	sorted := make([]int, 0, len(years))
	for y := range years {
		sorted = append(sorted, y)
	}
	sort.Ints(sorted)

	tbl := NewTable(cols...)
	for _, y := range sorted {
		row := []string{strconv.Itoa(y)}
		for i := range p.series {
			if n, ok := byCountry[i][y]; ok {
				row = append(row, formatInt(n))
			} else {
				row = append(row, "-")
			}
		}
		tbl.AddRow(row...)
	}
	totals := []string{"Total"}
	for _, s := range p.series {
		totals = append(totals, formatInt(stats.Total(s.Points)))
	}
	tbl.AddRow(totals...)

	if err := tbl.Render(ew); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ew, "\n")
	return ew.err
}
