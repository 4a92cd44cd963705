package dashboard

import (
	"fmt"
	"io"

	"github.com/gtdash/gtdash/internal/stats"
)

// mapSection provides the map points, one animation frame per year.
type mapSection struct{}

func (mapSection) Name() string        { return "map" }
func (mapSection) Description() string { return "Map: attacks around the world, animated by year" }

type mapPanel struct {
	frames []stats.GeoFrame
}

func (mapSection) Build(in Input) (Panel, error) {
	return &mapPanel{frames: stats.GeoFrames(in.Table)}, nil
}

func (p *mapPanel) Data() any { return p.frames }

// Render summarizes each frame; the points themselves are only in Data.
func (p *mapPanel) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	_, _ = fmt.Fprintf(ew, "%s\n", SectionTitle("Map: Attacks Around the World"))
	if len(p.frames) == 0 {
		_, _ = fmt.Fprintf(ew, "  No incidents.\n\n")
		return ew.err
	}

	tbl := NewTable(
		Column{Header: "Frame"},
		Column{Header: "Points", Align: AlignRight},
		Column{Header: "Located", Align: AlignRight},
		Column{Header: "Countries", Align: AlignRight},
	)
	total, located := 0, 0
	for _, f := range p.frames {
		countries := make(map[string]bool)
		n := 0
		for _, pt := range f.Points {
			countries[pt.Country] = true
			if pt.Located() {
				n++
			}
		}
		total += len(f.Points)
		located += n
		tbl.AddRow(f.Year, formatInt(len(f.Points)), formatInt(n), formatInt(len(countries)))
	}
	if err := tbl.Render(ew); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ew, "  %s of %s points have coordinates\n\n",
		formatInt(located), formatInt(total))
	return ew.err
}
