// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

// Package incident loads the Global Terrorism Database export into an
// immutable, typed table of incident records.
package incident

// Record is a single terrorism event.
type Record struct {
	EventID   string   `json:"eventid,omitempty"`
	Year      int      `json:"year"`
	Country   string   `json:"country"`
	Region    string   `json:"region"`
	ProvState string   `json:"provstate"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Success   bool     `json:"success"`
}

// SuccessFlag returns the success flag as 0 or 1.
func (r Record) SuccessFlag() int {
	if r.Success {
		return 1
	}
	return 0
}

// clone returns a copy that shares no pointers with r.
func (r Record) clone() Record {
	r.Latitude = cloneFloat(r.Latitude)
	r.Longitude = cloneFloat(r.Longitude)
	return r
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Column names as they appear in the GTD export header.
const (
	ColEventID   = "eventid"
	ColYear      = "iyear"
	ColCountry   = "country_txt"
	ColRegion    = "region_txt"
	ColProvState = "provstate"
	ColCity      = "city"
	ColLatitude  = "latitude"
	ColLongitude = "longitude"
	ColSuccess   = "success"
)

// requiredColumns must all be present in the header for a load to succeed.
var requiredColumns = []string{
	ColYear,
	ColCountry,
	ColRegion,
	ColProvState,
	ColLatitude,
	ColLongitude,
	ColSuccess,
}
