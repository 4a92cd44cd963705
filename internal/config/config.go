// Package config handles .gtdash.yaml and .gtdash.toml configuration files.
package config

// Config represents the contents of a gtdash config file.
type Config struct {
	Dataset      string   `yaml:"dataset,omitempty" toml:"dataset,omitempty"`
	Encoding     string   `yaml:"encoding,omitempty" toml:"encoding,omitempty"`
	Format       string   `yaml:"format,omitempty" toml:"format,omitempty"`
	Sections     []string `yaml:"sections,omitempty" toml:"sections,omitempty"`
	Countries    []string `yaml:"countries,omitempty" toml:"countries,omitempty"`
	TopProvinces int      `yaml:"top_provinces,omitempty" toml:"top_provinces,omitempty"`
	PreviewRows  int      `yaml:"preview_rows,omitempty" toml:"preview_rows,omitempty"`
}

// Options are the resolved settings for one gtdash run.
type Options struct {
	Dataset      string
	Encoding     string
	Format       string
	Sections     []string
	Countries    []string
	TopProvinces int
	PreviewRows  int
}

// File names searched for in the working directory, in order.
const (
	FileName     = ".gtdash.yaml"
	TOMLFileName = ".gtdash.toml"
)

// Defaults applied when neither the CLI nor a config file sets a value.
const (
	DefaultDataset = "./data/terrorism.csv"
	DefaultFormat  = "text"
)

// Formats lists the supported report output formats.
var Formats = []string{"text", "json"}
