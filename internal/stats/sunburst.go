package stats

// regionPalette is the fixed sunburst color for each GTD region.
var regionPalette = map[string]string{
	"Middle East & North Africa":  "#224c6e",
	"South Asia":                  "#2a658f",
	"Sub-Saharan Africa":          "#3883a9",
	"South America":               "#5aaed2",
	"Western Europe":              "#8ad5eb",
	"Central America & Caribbean": "#b9e5f3",
	"Southeast Asia":              "#d4eff8",
	"Eastern Europe":              "#c8f4fc",
	"North America":               "#b9f9fd",
}

// fallbackColor is used for regions outside the palette.
const fallbackColor = "#aafcff"

// RegionColor returns the display color of a region.
func RegionColor(region string) string {
	if c, ok := regionPalette[region]; ok {
		return c
	}
	return fallbackColor
}

// SunburstNode is one sector of a flattened sunburst. Parent is empty for
// the outer ring.
type SunburstNode struct {
	ID     string `json:"id"`
	Parent string `json:"parent"`
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Color  string `json:"color"`
}

// FlattenProportions turns the hierarchy into parent-linked sectors, outer
// ring first within each region. Sector ids are slash-joined paths.
func FlattenProportions(regions []RegionNode) []SunburstNode {
	var out []SunburstNode
	for _, r := range regions {
		out = append(out, SunburstNode{ID: r.Region, Label: r.Region, Value: r.Weight, Color: r.Color})
		for _, c := range r.Countries {
			cid := r.Region + "/" + c.Country
			out = append(out, SunburstNode{ID: cid, Parent: r.Region, Label: c.Country, Value: c.Weight, Color: r.Color})
			for _, p := range c.Provinces {
				out = append(out, SunburstNode{
					ID:     cid + "/" + p.Province,
					Parent: cid,
					Label:  p.Province,
					Value:  p.Weight,
					Color:  r.Color,
				})
			}
		}
	}
	return out
}
