// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"github.com/gtdash/gtdash/internal/incident"
)

// DefaultTopProvinces is how many provinces per country the sunburst keeps.
const DefaultTopProvinces = 5

// RegionNode is the outer ring of the region/country/province hierarchy.
type RegionNode struct {
	Region    string        `json:"region"`
	Color     string        `json:"color,omitempty"`
	Weight    int           `json:"weight"`
	Countries []CountryNode `json:"countries"`
}

// CountryNode is the middle ring of the hierarchy.
type CountryNode struct {
	Country   string         `json:"country"`
	Weight    int            `json:"weight"`
	Provinces []ProvinceNode `json:"provinces"`
}

// ProvinceNode is a leaf. Count is the number of incidents in the province
// (within the leaf's region); Weight is the number of successful ones.
type ProvinceNode struct {
	Province string `json:"province"`
	Count    int    `json:"count"`
	Weight   int    `json:"weight"`
}

// ProvinceCount is a province ranked by incident count within its country.
type ProvinceCount struct {
	Country  string `json:"country"`
	Province string `json:"province"`
	Count    int    `json:"count"`
}

type countryProvince struct {
	country, province string
}

// TopProvinces ranks provinces by incident count within each country and
// keeps at most n per country. Records with an empty province are ignored.
// Ties are broken by province name. Countries are returned in name order.
func TopProvinces(t *incident.Table, n int) []ProvinceCount {
	if n <= 0 {
		n = DefaultTopProvinces
	}

	counts := make(map[countryProvince]int)
	t.Each(func(_ int, r incident.Record) bool {
		if r.ProvState != "" {
			counts[countryProvince{r.Country, r.ProvState}]++
		}
		return true
	})

	byCountry := make(map[string][]ProvinceCount)
	for k, c := range counts {
		byCountry[k.country] = append(byCountry[k.country], ProvinceCount{
			Country:  k.country,
			Province: k.province,
			Count:    c,
		})
	}

	countries := sortedKeys(byCountry)
	var out []ProvinceCount
	for _, country := range countries {
		ranked := byCountry[country]
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].Count != ranked[j].Count {
				return ranked[i].Count > ranked[j].Count
			}
			return ranked[i].Province < ranked[j].Province
		})
		if len(ranked) > n {
			ranked = ranked[:n]
		}
		out = append(out, ranked...)
	}
	return out
}

// Proportions builds the region → country → top-n province hierarchy. Each
// leaf is weighted by the sum of the success flag over its records; interior
// nodes carry the sum of their children. If a (country, province) pair is
// recorded under more than one region, it appears once under each.
func Proportions(t *incident.Table, n int) []RegionNode {
	top := TopProvinces(t, n)
	rank := make(map[countryProvince]int, len(top))
	for i, pc := range top {
		rank[countryProvince{pc.Country, pc.Province}] = i
	}

	type leafKey struct {
		region string
		countryProvince
	}
	type leafAgg struct {
		count, weight int
	}
	leaves := make(map[leafKey]*leafAgg)
	t.Each(func(_ int, r incident.Record) bool {
		cp := countryProvince{r.Country, r.ProvState}
		if _, ok := rank[cp]; !ok {
			return true
		}
		k := leafKey{r.Region, cp}
		agg := leaves[k]
		if agg == nil {
			agg = &leafAgg{}
			leaves[k] = agg
		}
		agg.count++
		agg.weight += r.SuccessFlag()
		return true
	})

	tree := make(map[string]map[string][]ProvinceNode)
	for k, agg := range leaves {
		countries := tree[k.region]
		if countries == nil {
			countries = make(map[string][]ProvinceNode)
			tree[k.region] = countries
		}
		countries[k.country] = append(countries[k.country], ProvinceNode{
			Province: k.province,
			Count:    agg.count,
			Weight:   agg.weight,
		})
	}

	out := make([]RegionNode, 0, len(tree))
	for _, region := range sortedKeys(tree) {
		node := RegionNode{Region: region, Color: RegionColor(region)}
		for _, country := range sortedKeys(tree[region]) {
			provinces := tree[region][country]
			sort.Slice(provinces, func(i, j int) bool {
				return rank[countryProvince{country, provinces[i].Province}] <
					rank[countryProvince{country, provinces[j].Province}]
			})
			cn := CountryNode{Country: country, Provinces: provinces}
			for _, p := range provinces {
				cn.Weight += p.Weight
			}
			node.Weight += cn.Weight
			node.Countries = append(node.Countries, cn)
		}
		out = append(out, node)
	}
	return out
}

// FindCountry returns the country node for name across all regions, merging
// entries when the country appears under several regions.
func FindCountry(regions []RegionNode, name string) (CountryNode, bool) {
	var out CountryNode
	found := false
	for _, r := range regions {
		for _, c := range r.Countries {
			if c.Country != name {
				continue
			}
			found = true
			out.Country = name
			out.Weight += c.Weight
			out.Provinces = append(out.Provinces, c.Provinces...)
		}
	}
	return out, found
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
