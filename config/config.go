// Package config loads optional document-level defaults from YAML so
// callers can keep page geometry and logging settings out of Go source.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"genpdf"
	"genpdf/logging"
)

// DocumentDefaults mirrors the knobs Document exposes for callers who
// prefer to configure them from a file. A Document never requires this
// package; every field also has a programmatic setter.
type DocumentDefaults struct {
	Title       string        `yaml:"title"`
	PageSize    string        `yaml:"page_size"`
	Landscape   bool          `yaml:"landscape"`
	Margins     MarginsConfig `yaml:"margins"`
	FontDir     string        `yaml:"font_dir"`
	FontFamily  string        `yaml:"font_family"`
	LineSpacing float64       `yaml:"line_spacing"`
	Logger      logging.Config `yaml:"logger"`
}

type MarginsConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

func (m MarginsConfig) Margins() genpdf.Margins {
	return genpdf.Margins{
		Top:    genpdf.Mm(m.Top),
		Right:  genpdf.Mm(m.Right),
		Bottom: genpdf.Mm(m.Bottom),
		Left:   genpdf.Mm(m.Left),
	}
}

// Load reads and parses a YAML document-defaults file.
func Load(path string) (*DocumentDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, genpdf.WrapError(genpdf.Internal, "reading config file "+path, err)
	}
	var cfg DocumentDefaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, genpdf.WrapError(genpdf.Internal, "parsing config file "+path, err)
	}
	if cfg.LineSpacing == 0 {
		cfg.LineSpacing = 1.0
	}
	return &cfg, nil
}

// ResolvePageSize resolves the configured page size name to a genpdf.PageSize,
// applying landscape swap if requested. Unknown names default to A4.
func (c *DocumentDefaults) ResolvePageSize() genpdf.PageSize {
	var size genpdf.PageSize
	switch c.PageSize {
	case "Letter":
		size = genpdf.Letter
	case "Legal":
		size = genpdf.Legal
	case "A3":
		size = genpdf.A3
	case "A5":
		size = genpdf.A5
	default:
		size = genpdf.A4
	}
	if c.Landscape {
		size = size.Landscape()
	}
	return size
}
