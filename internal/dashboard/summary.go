package dashboard

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gtdash/gtdash/internal/incident"
	"github.com/gtdash/gtdash/internal/stats"
)

// summarySection shows the headline metrics and a short data preview.
type summarySection struct{}

func (summarySection) Name() string        { return "summary" }
func (summarySection) Description() string { return "Headline metrics and data preview" }

// SummaryData is the chart-ready value of the summary section.
type SummaryData struct {
	Metrics stats.Summary     `json:"metrics"`
	Preview []incident.Record `json:"preview"`
}

type summaryPanel struct {
	data SummaryData
}

func (summarySection) Build(in Input) (Panel, error) {
	return &summaryPanel{data: SummaryData{
		Metrics: stats.Summarize(in.Table),
		Preview: stats.Preview(in.Table, in.PreviewRows),
	}}, nil
}

func (p *summaryPanel) Data() any { return p.data }

func (p *summaryPanel) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	m := p.data.Metrics
	_, _ = fmt.Fprintf(ew, "%s\n", SectionTitle("Global Terrorism BI"))
	_, _ = fmt.Fprintf(ew, "  Cases: %s   Years: %s   Countries: %s\n\n",
		colorMetric(m.Cases), colorMetric(m.Years), colorMetric(m.Countries))

	if len(p.data.Preview) == 0 {
		_, _ = fmt.Fprintf(ew, "  No incidents loaded.\n\n")
		return ew.err
	}

	tbl := NewTable(
		Column{Header: "Event"},
		Column{Header: "Year", Align: AlignRight},
		Column{Header: "Country"},
		Column{Header: "Region"},
		Column{Header: "Province/State"},
		Column{Header: "City"},
		Column{Header: "Success", Align: AlignRight},
	)
	for _, r := range p.data.Preview {
		tbl.AddRow(r.EventID, strconv.Itoa(r.Year), r.Country, r.Region, r.ProvState, r.City,
			strconv.Itoa(r.SuccessFlag()))
	}
	if err := tbl.Render(ew); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ew, "\n")
	return ew.err
}
