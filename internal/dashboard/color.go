// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Shared color printers for dashboard sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
	colorFaint  = color.New(color.Faint)
)

// SectionTitle renders a bold section title followed by an underline.
func SectionTitle(title string) string {
	return colorBold.Sprint(title) + "\n" + strings.Repeat("-", utf8.RuneCountInString(title))
}

// ColorSuccessRate colors a percentage label such as "87.5%": 90% and above
// is red, 60% and above yellow, anything lower green.
func ColorSuccessRate(val string) string {
	pct, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
	if err != nil {
		return val
	}
	switch {
	case pct >= 90:
		return colorRed.Sprint(val)
	case pct >= 60:
		return colorYellow.Sprint(val)
	default:
		return colorGreen.Sprint(val)
	}
}

// ColorBar renders bar glyphs in cyan.
func ColorBar(val string) string {
	if val == "" {
		return val
	}
	return colorCyan.Sprint(val)
}

// colorMetric renders a headline metric value.
func colorMetric(n int) string {
	return colorBold.Sprint(formatInt(n))
}

// formatPercent formats part/whole as a one-decimal percentage label.
func formatPercent(part, whole int) string {
	if whole == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(whole))
}

// formatInt formats an integer with comma separators.
func formatInt(n int) string {
	if n < 0 {
		return "-" + formatInt(-n)
	}
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%s,%03d", formatInt(n/1000), n%1000)
}
