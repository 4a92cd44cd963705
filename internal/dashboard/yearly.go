// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gtdash/gtdash/internal/stats"
)

// barWidth is the widest bar drawn in line-chart sections.
const barWidth = 40

// yearlySection reports worldwide incidents per year.
type yearlySection struct{}

func (yearlySection) Name() string        { return "yearly" }
func (yearlySection) Description() string { return "Total amount of attacks per year (worldwide)" }

type yearlyPanel struct {
	points []stats.YearCount
}

func (yearlySection) Build(in Input) (Panel, error) {
	return &yearlyPanel{points: stats.YearlyCounts(in.Table)}, nil
}

func (p *yearlyPanel) Data() any { return p.points }

func (p *yearlyPanel) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	_, _ = fmt.Fprintf(ew, "%s\n", SectionTitle("Total amount of attacks per year (worldwide)"))
	if len(p.points) == 0 {
		_, _ = fmt.Fprintf(ew, "  No incidents.\n\n")
		return ew.err
	}

	peak := 0
	for _, pt := range p.points {
		peak = max(peak, pt.Count)
	}

	tbl := NewTable(
		Column{Header: "Year", Align: AlignRight},
		Column{Header: "Attacks", Align: AlignRight},
		Column{Header: "", Color: ColorBar},
	)
	for _, pt := range p.points {
		tbl.AddRow(strconv.Itoa(pt.Year), formatInt(pt.Count), Bar(pt.Count, peak, barWidth))
	}
	if err := tbl.Render(ew); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ew, "  Total: %s\n\n", formatInt(stats.Total(p.points)))
	return ew.err
}
