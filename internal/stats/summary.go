package stats

import "github.com/gtdash/gtdash/internal/incident"

// DefaultPreviewRows is how many records the data preview shows.
const DefaultPreviewRows = 4

// Summary holds the headline metric widgets.
type Summary struct {
	Cases     int `json:"cases"`
	Years     int `json:"years"`
	Countries int `json:"countries"`
}

// Summarize counts records, distinct years and distinct countries.
func Summarize(t *incident.Table) Summary {
	years := make(map[int]struct{})
	countries := make(map[string]struct{})
	t.Each(func(_ int, r incident.Record) bool {
		years[r.Year] = struct{}{}
		countries[r.Country] = struct{}{}
		return true
	})
	return Summary{Cases: t.Len(), Years: len(years), Countries: len(countries)}
}

// Preview returns the first n records (fewer if the table is shorter).
func Preview(t *incident.Table, n int) []incident.Record {
	if n <= 0 {
		n = DefaultPreviewRows
	}
	if n > t.Len() {
		n = t.Len()
	}
	out := make([]incident.Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, t.At(i))
	}
	return out
}

// Countries lists distinct country names in order of first appearance.
func Countries(t *incident.Table) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	t.Each(func(_ int, r incident.Record) bool {
		if r.Country != "" && !seen[r.Country] {
			seen[r.Country] = true
			out = append(out, r.Country)
		}
		return true
	})
	return out
}
