package stats

import (
	"sort"
	"strconv"

	"github.com/gtdash/gtdash/internal/incident"
)

// GeoPoint is one incident placed on the map. Year is a categorical label
// so the presentation layer can animate frame by frame.
type GeoPoint struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Country   string   `json:"country"`
	Year      string   `json:"year"`
}

// Located reports whether the point carries both coordinates.
func (p GeoPoint) Located() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// GeoFrame holds the points of a single animation frame.
type GeoFrame struct {
	Year   string     `json:"year"`
	Points []GeoPoint `json:"points"`
}

// GeoPoints returns one point per record, in table order. Records without
// coordinates are kept with nil latitude/longitude.
func GeoPoints(t *incident.Table) []GeoPoint {
	out := make([]GeoPoint, 0, t.Len())
	t.Each(func(_ int, r incident.Record) bool {
		out = append(out, geoPoint(r))
		return true
	})
	return out
}

// GeoFrames groups map points into one frame per year, ascending by year.
// Points keep table order within a frame.
func GeoFrames(t *incident.Table) []GeoFrame {
	byYear := make(map[int][]GeoPoint)
	t.Each(func(_ int, r incident.Record) bool {
		byYear[r.Year] = append(byYear[r.Year], geoPoint(r))
		return true
	})

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]GeoFrame, 0, len(years))
	for _, y := range years {
		out = append(out, GeoFrame{Year: strconv.Itoa(y), Points: byYear[y]})
	}
	return out
}

// GeoPointsForYear returns the map points whose year label equals year.
func GeoPointsForYear(t *incident.Table, year string) []GeoPoint {
	out := make([]GeoPoint, 0)
	t.Each(func(_ int, r incident.Record) bool {
		if strconv.Itoa(r.Year) == year {
			out = append(out, geoPoint(r))
		}
		return true
	})
	return out
}

func geoPoint(r incident.Record) GeoPoint {
	return GeoPoint{
		Latitude:  copyFloat(r.Latitude),
		Longitude: copyFloat(r.Longitude),
		Country:   r.Country,
		Year:      strconv.Itoa(r.Year),
	}
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
