// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

// Package stats computes the dashboard aggregations over an incident table.
// Every function is pure: it reads the table and returns freshly allocated
// results, so repeated calls on the same table return equal values.
package stats

import (
	"sort"

	"github.com/gtdash/gtdash/internal/incident"
)

// YearCount is one point of a yearly incident series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// CountrySeries is the yearly incident series restricted to one country.
type CountrySeries struct {
	Country string      `json:"country"`
	Points  []YearCount `json:"points"`
}

// YearlyCounts counts incidents per year, ascending by year. Years with no
// incidents are absent from the result.
func YearlyCounts(t *incident.Table) []YearCount {
	counts := make(map[int]int)
	t.Each(func(_ int, r incident.Record) bool {
		counts[r.Year]++
		return true
	})
	return sortedYearCounts(counts)
}

// CountryYearlyCounts returns one yearly series per selected country, in
// selection order with duplicates dropped. A country missing from the table
// yields a series with no points. An empty selection yields nil.
func CountryYearlyCounts(t *incident.Table, countries []string) []CountrySeries {
	selected := dedupe(countries)
	if len(selected) == 0 {
		return nil
	}

	out := make([]CountrySeries, 0, len(selected))
	for _, c := range selected {
		out = append(out, CountrySeries{Country: c, Points: YearlyCounts(t.ByCountry(c))})
	}
	return out
}

// Total sums the counts of a series.
func Total(points []YearCount) int {
	n := 0
	for _, p := range points {
		n += p.Count
	}
	return n
}

func sortedYearCounts(counts map[int]int) []YearCount {
	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{Year: y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
