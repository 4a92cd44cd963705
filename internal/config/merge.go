package config

import "github.com/gtdash/gtdash/internal/incident"

// Merge layers CLI options over the project config, the project config over
// the global config, and fills anything still unset with defaults. Zero-value
// fields fall through to the next layer.
func Merge(global, project *Config, cli Options) Options {
	file := Overlay(global, project)
	result := cli
	if result.Dataset == "" {
		result.Dataset = file.Dataset
	}
	if result.Encoding == "" {
		result.Encoding = file.Encoding
	}
	if result.Format == "" {
		result.Format = file.Format
	}
	if len(result.Sections) == 0 {
		result.Sections = file.Sections
	}
	if len(result.Countries) == 0 {
		result.Countries = file.Countries
	}
	if result.TopProvinces == 0 {
		result.TopProvinces = file.TopProvinces
	}
	if result.PreviewRows == 0 {
		result.PreviewRows = file.PreviewRows
	}

	if result.Dataset == "" {
		result.Dataset = DefaultDataset
	}
	if result.Encoding == "" {
		result.Encoding = incident.DefaultEncoding
	}
	if result.Format == "" {
		result.Format = DefaultFormat
	}
	return result
}
