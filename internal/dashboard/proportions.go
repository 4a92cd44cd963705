// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"fmt"
	"io"

	"github.com/gtdash/gtdash/internal/stats"
)

// proportionsSection builds the region/country/province sunburst.
type proportionsSection struct{}

func (proportionsSection) Name() string { return "proportions" }
func (proportionsSection) Description() string {
	return "Proportions: part of the world/country/province"
}

// ProportionsData is the chart-ready value of the proportions section: the
// nested hierarchy and the same tree flattened into sunburst sectors.
type ProportionsData struct {
	TopProvinces int                  `json:"top_provinces"`
	Regions      []stats.RegionNode   `json:"regions"`
	Sectors      []stats.SunburstNode `json:"sectors"`
}

type proportionsPanel struct {
	data ProportionsData
}

func (proportionsSection) Build(in Input) (Panel, error) {
	n := in.TopProvinces
	if n <= 0 {
		n = stats.DefaultTopProvinces
	}
	regions := stats.Proportions(in.Table, n)
	return &proportionsPanel{data: ProportionsData{
		TopProvinces: n,
		Regions:      regions,
		Sectors:      stats.FlattenProportions(regions),
	}}, nil
}

func (p *proportionsPanel) Data() any { return p.data }

func (p *proportionsPanel) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	_, _ = fmt.Fprintf(ew, "%s\n", SectionTitle("Proportions: part of the world/country/province"))
	_, _ = fmt.Fprintf(ew, "  Top %d provinces per country, weighted by successful attacks\n\n", p.data.TopProvinces)
	if len(p.data.Regions) == 0 {
		_, _ = fmt.Fprintf(ew, "  No provinces recorded.\n\n")
		return ew.err
	}

	tbl := NewTable(
		Column{Header: "Region / Country / Province"},
		Column{Header: "Attacks", Align: AlignRight},
		Column{Header: "Successful", Align: AlignRight},
		Column{Header: "Rate", Align: AlignRight, Color: ColorSuccessRate},
	)
	for _, r := range p.data.Regions {
		regionCount := 0
		for _, c := range r.Countries {
			for _, pr := range c.Provinces {
				regionCount += pr.Count
			}
		}
		tbl.AddRow(r.Region, formatInt(regionCount), formatInt(r.Weight), formatPercent(r.Weight, regionCount))
		for _, c := range r.Countries {
			countryCount := 0
			for _, pr := range c.Provinces {
				countryCount += pr.Count
			}
			tbl.AddRow("  "+c.Country, formatInt(countryCount), formatInt(c.Weight), formatPercent(c.Weight, countryCount))
			for _, pr := range c.Provinces {
				tbl.AddRow("    "+pr.Province, formatInt(pr.Count), formatInt(pr.Weight), formatPercent(pr.Weight, pr.Count))
			}
		}
	}
	if err := tbl.Render(ew); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ew, "\n")
	return ew.err
}
