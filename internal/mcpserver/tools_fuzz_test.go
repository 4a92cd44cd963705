package mcpserver

import (
	"context"
	"strings"
	"testing"
)

func FuzzSplitAndTrim(f *testing.F) {
	f.Add("")
	f.Add(",")
	f.Add("Iraq, Peru")
	f.Add("  ,  ,  ")

	f.Fuzz(func(t *testing.T, input string) {
		for _, s := range splitAndTrim(input) {
			if s == "" {
				t.Error("splitAndTrim returned empty string")
			}
			if strings.TrimSpace(s) != s {
				t.Errorf("splitAndTrim returned untrimmed string: %q", s)
			}
		}
	})
}

func FuzzHandleGeoPoints(f *testing.F) {
	f.Add("")
	f.Add("1990")
	f.Add(" 1991 ")
	f.Add("-0")

	tl := newTools()
	f.Fuzz(func(t *testing.T, year string) {
		result, _, err := tl.handleGeoPoints(context.Background(), nil, GeoPointsInput{Year: year})
		if err != nil {
			t.Fatalf("handleGeoPoints(%q): %v", year, err)
		}
		if len(result.Content) != 1 {
			t.Fatalf("expected one content block, got %d", len(result.Content))
		}
	})
}
