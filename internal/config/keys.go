package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Keys lists the config keys in file order.
var Keys = []string{
	"dataset",
	"encoding",
	"format",
	"sections",
	"countries",
	"top_provinces",
	"preview_rows",
}

// ValidateKey reports an error if key is not a config key.
func ValidateKey(key string) error {
	for _, k := range Keys {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys, ", "))
}

// GetValue returns the value stored under key: a string, a []string or an
// int depending on the field.
func GetValue(cfg *Config, key string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}
	switch key {
	case "dataset":
		return cfg.Dataset, nil
	case "encoding":
		return cfg.Encoding, nil
	case "format":
		return cfg.Format, nil
	case "sections":
		return cfg.Sections, nil
	case "countries":
		return cfg.Countries, nil
	case "top_provinces":
		return cfg.TopProvinces, nil
	default:
		return cfg.PreviewRows, nil
	}
}

// SetValue parses raw and stores it under key. List keys take a
// comma-separated value. An empty raw value clears the key.
func SetValue(cfg *Config, key, raw string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	switch key {
	case "dataset":
		cfg.Dataset = raw
	case "encoding":
		cfg.Encoding = raw
	case "format":
		cfg.Format = raw
	case "sections":
		cfg.Sections = splitValue(raw)
	case "countries":
		cfg.Countries = splitValue(raw)
	case "top_provinces", "preview_rows":
		n := 0
		if raw != "" {
			var err error
			if n, err = strconv.Atoi(raw); err != nil {
				return fmt.Errorf("%s: %q is not an integer", key, raw)
			}
		}
		if key == "top_provinces" {
			cfg.TopProvinces = n
		} else {
			cfg.PreviewRows = n
		}
	}
	return nil
}

// Flatten returns the keys of cfg that are set, mapped to their values.
func Flatten(cfg *Config) map[string]any {
	out := make(map[string]any)
	if cfg == nil {
		return out
	}
	for _, k := range Keys {
		v, _ := GetValue(cfg, k)
		switch tv := v.(type) {
		case string:
			if tv != "" {
				out[k] = tv
			}
		case []string:
			if len(tv) > 0 {
				out[k] = tv
			}
		case int:
			if tv != 0 {
				out[k] = tv
			}
		}
	}
	return out
}

// Overlay returns base with every field that top sets replaced by top's
// value. Either argument may be nil.
func Overlay(base, top *Config) *Config {
	var out Config
	if base != nil {
		out = *base
	}
	if top == nil {
		return &out
	}
	if top.Dataset != "" {
		out.Dataset = top.Dataset
	}
	if top.Encoding != "" {
		out.Encoding = top.Encoding
	}
	if top.Format != "" {
		out.Format = top.Format
	}
	if len(top.Sections) > 0 {
		out.Sections = top.Sections
	}
	if len(top.Countries) > 0 {
		out.Countries = top.Countries
	}
	if top.TopProvinces != 0 {
		out.TopProvinces = top.TopProvinces
	}
	if top.PreviewRows != 0 {
		out.PreviewRows = top.PreviewRows
	}
	return &out
}

// WriteFile writes cfg as YAML to path, creating parent directories.
func WriteFile(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o600)
}

func splitValue(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
