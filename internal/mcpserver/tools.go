package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gtdash/gtdash/internal/config"
	"github.com/gtdash/gtdash/internal/dashboard"
	"github.com/gtdash/gtdash/internal/incident"
	"github.com/gtdash/gtdash/internal/stats"
)

// SummaryInput is the input schema for the summary MCP tool.
type SummaryInput struct {
	PreviewRows int `json:"preview_rows,omitempty" jsonschema:"Number of records to include in the preview (default 4)"`
}

// CountriesInput is the input schema for the countries MCP tool.
type CountriesInput struct {
	Sorted bool `json:"sorted,omitempty" jsonschema:"Sort alphabetically instead of first-appearance order"`
}

// YearlyCountsInput is the input schema for the yearly_counts MCP tool.
type YearlyCountsInput struct{}

// CountryCountsInput is the input schema for the country_counts MCP tool.
type CountryCountsInput struct {
	Countries string `json:"countries" jsonschema:"Comma-separated list of countries to chart"`
}

// GeoPointsInput is the input schema for the geo_points MCP tool.
type GeoPointsInput struct {
	Year string `json:"year,omitempty" jsonschema:"Only return points for this year (e.g. 1990); default groups all points into one frame per year"`
}

// ProportionsInput is the input schema for the proportions MCP tool.
type ProportionsInput struct {
	TopProvinces int    `json:"top_provinces,omitempty" jsonschema:"Provinces kept per country (default 5)"`
	Country      string `json:"country,omitempty" jsonschema:"Return only this country's provinces, merged across regions"`
}

// DashboardInput is the input schema for the dashboard MCP tool.
type DashboardInput struct {
	Sections     string `json:"sections,omitempty" jsonschema:"Comma-separated list of dashboard sections to include (default: all)"`
	Countries    string `json:"countries,omitempty" jsonschema:"Comma-separated list of countries for the per-country chart"`
	TopProvinces int    `json:"top_provinces,omitempty" jsonschema:"Provinces kept per country in the breakdown (default 5)"`
}

// SummaryOutput is the JSON body returned by the summary tool.
type SummaryOutput struct {
	Dataset string            `json:"dataset"`
	Summary stats.Summary     `json:"summary"`
	Preview []incident.Record `json:"preview"`
}

// CountryCountsOutput is the JSON body returned by the country_counts tool.
type CountryCountsOutput struct {
	Series  []stats.CountrySeries `json:"series"`
	Message string                `json:"message,omitempty"`
}

// ProportionsOutput is the JSON body returned by the proportions tool.
type ProportionsOutput struct {
	TopProvinces int                  `json:"top_provinces"`
	Regions      []stats.RegionNode   `json:"regions,omitempty"`
	Sectors      []stats.SunburstNode `json:"sectors,omitempty"`
	Country      *stats.CountryNode   `json:"country,omitempty"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// readOnly are the annotations shared by every gtdash tool.
func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// tools holds the dataset the handlers answer from.
type tools struct {
	ds Dataset
}

// register adds all gtdash tools to the MCP server.
func (t *tools) register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "summary",
		Description: "Headline metrics for the loaded Global Terrorism Database: number of cases, distinct years, distinct countries, and a preview of the first records.",
		Annotations: readOnly(),
	}, t.handleSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "countries",
		Description: "List the distinct countries in the dataset. These are the values accepted by country_counts and dashboard.",
		Annotations: readOnly(),
	}, t.handleCountries)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "yearly_counts",
		Description: "Total number of attacks per year worldwide, ascending by year.",
		Annotations: readOnly(),
	}, t.handleYearlyCounts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "country_counts",
		Description: "Number of attacks per year for each selected country.",
		Annotations: readOnly(),
	}, t.handleCountryCounts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "geo_points",
		Description: "Incident coordinates with country and year, grouped into one frame per year or filtered to a single year.",
		Annotations: readOnly(),
	}, t.handleGeoPoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "proportions",
		Description: "Region > country > province breakdown of successful attacks, keeping the top provinces per country by attack count. Set country to get one country's provinces merged across regions.",
		Annotations: readOnly(),
	}, t.handleProportions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dashboard",
		Description: "Build the full dashboard document (summary, yearly, countries, map, proportions) as JSON.",
		Annotations: readOnly(),
	}, t.handleDashboard)
}

func (t *tools) handleSummary(_ context.Context, _ *mcp.CallToolRequest, input SummaryInput) (*mcp.CallToolResult, any, error) {
	if input.PreviewRows < 0 || input.PreviewRows > config.MaxPreviewRows {
		return nil, nil, fmt.Errorf("preview_rows must be between 0 and %d, got %d", config.MaxPreviewRows, input.PreviewRows)
	}
	return jsonResult(SummaryOutput{
		Dataset: t.ds.Path,
		Summary: stats.Summarize(t.ds.Table),
		Preview: stats.Preview(t.ds.Table, input.PreviewRows),
	})
}

func (t *tools) handleCountries(_ context.Context, _ *mcp.CallToolRequest, input CountriesInput) (*mcp.CallToolResult, any, error) {
	countries := stats.Countries(t.ds.Table)
	if input.Sorted {
		sort.Strings(countries)
	}
	return jsonResult(countries)
}

func (t *tools) handleYearlyCounts(_ context.Context, _ *mcp.CallToolRequest, _ YearlyCountsInput) (*mcp.CallToolResult, any, error) {
	return jsonResult(stats.YearlyCounts(t.ds.Table))
}

func (t *tools) handleCountryCounts(_ context.Context, _ *mcp.CallToolRequest, input CountryCountsInput) (*mcp.CallToolResult, any, error) {
	series := stats.CountryYearlyCounts(t.ds.Table, splitAndTrim(input.Countries))
	out := CountryCountsOutput{Series: series}
	if len(series) == 0 {
		out.Series = []stats.CountrySeries{}
		out.Message = dashboard.NoSelectionMessage
	}
	return jsonResult(out)
}

func (t *tools) handleGeoPoints(_ context.Context, _ *mcp.CallToolRequest, input GeoPointsInput) (*mcp.CallToolResult, any, error) {
	year := strings.TrimSpace(input.Year)
	if year == "" {
		return jsonResult(stats.GeoFrames(t.ds.Table))
	}
	return jsonResult(stats.GeoFrame{
		Year:   year,
		Points: stats.GeoPointsForYear(t.ds.Table, year),
	})
}

func (t *tools) handleProportions(_ context.Context, _ *mcp.CallToolRequest, input ProportionsInput) (*mcp.CallToolResult, any, error) {
	n, err := topProvinces(input.TopProvinces)
	if err != nil {
		return nil, nil, err
	}
	regions := stats.Proportions(t.ds.Table, n)
	if input.Country != "" {
		node, ok := stats.FindCountry(regions, input.Country)
		if !ok {
			return nil, nil, fmt.Errorf("country %q has no incidents in the dataset", input.Country)
		}
		return jsonResult(ProportionsOutput{TopProvinces: n, Country: &node})
	}
	return jsonResult(ProportionsOutput{
		TopProvinces: n,
		Regions:      regions,
		Sectors:      stats.FlattenProportions(regions),
	})
}

func (t *tools) handleDashboard(ctx context.Context, _ *mcp.CallToolRequest, input DashboardInput) (*mcp.CallToolResult, any, error) {
	n, err := topProvinces(input.TopProvinces)
	if err != nil {
		return nil, nil, err
	}

	names, unknown := dashboard.ResolveSections(splitAndTrim(input.Sections))
	if len(unknown) > 0 {
		return nil, nil, fmt.Errorf("unknown section %q (available: %s)", unknown[0], strings.Join(dashboard.List(), ", "))
	}

	countries := splitAndTrim(input.Countries)
	results, err := dashboard.Build(ctx, dashboard.Input{
		Table:        t.ds.Table,
		Countries:    countries,
		TopProvinces: n,
	}, names)
	if err != nil {
		return nil, nil, fmt.Errorf("building dashboard failed: %w", err)
	}

	slog.Debug("dashboard built", "sections", len(results))
	return jsonResult(dashboard.NewDocument(dashboard.Meta{
		Dataset:     t.ds.Path,
		Encoding:    t.ds.Encoding,
		Records:     t.ds.Table.Len(),
		Countries:   countries,
		LoadTime:    t.ds.LoadTime,
		GeneratedAt: time.Now(),
	}, results))
}

// topProvinces validates a requested top-N and applies the default.
func topProvinces(n int) (int, error) {
	if n < 0 || n > config.MaxTopProvinces {
		return 0, fmt.Errorf("top_provinces must be between 0 and %d, got %d", config.MaxTopProvinces, n)
	}
	if n == 0 {
		return stats.DefaultTopProvinces, nil
	}
	return n, nil
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("JSON marshal: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
