package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gtdash/gtdash/internal/dashboard"
	"github.com/gtdash/gtdash/internal/incident"
)

// Limits for numeric settings.
const (
	MaxTopProvinces = 50
	MaxPreviewRows  = 100
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Encoding != "" {
		if err := incident.CheckEncoding(cfg.Encoding); err != nil {
			errs = append(errs, fmt.Sprintf("encoding: %v", err))
		}
	}

	if cfg.Format != "" && !slices.Contains(Formats, cfg.Format) {
		errs = append(errs, fmt.Sprintf("format: unknown format %q (available: %s)", cfg.Format, strings.Join(Formats, ", ")))
	}

	for _, name := range cfg.Sections {
		if dashboard.Get(name) == nil {
			errs = append(errs, fmt.Sprintf("sections: unknown section %q (available: %s)", name, strings.Join(dashboard.List(), ", ")))
		}
	}

	for i, c := range cfg.Countries {
		if strings.TrimSpace(c) == "" {
			errs = append(errs, fmt.Sprintf("countries[%d]: must not be empty", i))
		}
	}

	if cfg.TopProvinces < 0 || cfg.TopProvinces > MaxTopProvinces {
		errs = append(errs, fmt.Sprintf("top_provinces: must be between 0 and %d, got %d", MaxTopProvinces, cfg.TopProvinces))
	}

	if cfg.PreviewRows < 0 || cfg.PreviewRows > MaxPreviewRows {
		errs = append(errs, fmt.Sprintf("preview_rows: must be between 0 and %d, got %d", MaxPreviewRows, cfg.PreviewRows))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// ValidateOptions checks resolved run options the same way as a config file.
func ValidateOptions(opts Options) error {
	return Validate(&Config{
		Dataset:      opts.Dataset,
		Encoding:     opts.Encoding,
		Format:       opts.Format,
		Sections:     opts.Sections,
		Countries:    opts.Countries,
		TopProvinces: opts.TopProvinces,
		PreviewRows:  opts.PreviewRows,
	})
}
