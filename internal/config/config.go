// Package config loads the board's visual and interaction settings.
//
// Settings come from an optional YAML file layered over built-in defaults.
// The merge is exactly one level deep: top-level scalars replace their
// defaults, and the signal-family table and base palette merge per key. A
// missing or unreadable file is not an error; defaults apply silently.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RGB is an opaque 8-bit color triple, written as a 3-element list in YAML.
type RGB [3]uint8

// Family holds the on/off colors for one signal family.
type Family struct {
	On  RGB `yaml:"on"`
	Off RGB `yaml:"off"`
}

// Palette is the base UI color set.
type Palette struct {
	Background  RGB `yaml:"background"`
	PanelBG     RGB `yaml:"panel_bg"`
	PanelBorder RGB `yaml:"panel_border"`
	Text        RGB `yaml:"text"`
	Muted       RGB `yaml:"muted"`
	Select      RGB `yaml:"select"`
}

// Config is the full settings set consumed by the world and the host window.
type Config struct {
	Width         int               `yaml:"width"`
	Height        int               `yaml:"height"`
	FPS           int               `yaml:"fps"`
	Grid          int               `yaml:"grid"`
	SnapRadius    int               `yaml:"snap_radius"`
	PortRadius    int               `yaml:"port_radius"`
	WireWidth     int               `yaml:"wire_width"`
	DefaultFamily string            `yaml:"default_family"`
	Families      map[string]Family `yaml:"signal_families"`
	Colors        Palette           `yaml:"colors"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Width:         1280,
		Height:        720,
		FPS:           90,
		Grid:          16,
		SnapRadius:    14,
		PortRadius:    6,
		WireWidth:     4,
		DefaultFamily: "red",
		Families: map[string]Family{
			"red":    {On: RGB{230, 70, 70}, Off: RGB{110, 35, 35}},
			"green":  {On: RGB{70, 210, 120}, Off: RGB{30, 80, 55}},
			"blue":   {On: RGB{100, 160, 250}, Off: RGB{40, 65, 95}},
			"purple": {On: RGB{170, 100, 220}, Off: RGB{70, 45, 95}},
			"amber":  {On: RGB{255, 200, 80}, Off: RGB{120, 90, 40}},
		},
		Colors: Palette{
			Background:  RGB{15, 17, 20},
			PanelBG:     RGB{30, 34, 40},
			PanelBorder: RGB{60, 68, 80},
			Text:        RGB{230, 235, 240},
			Muted:       RGB{150, 156, 165},
			Select:      RGB{255, 204, 102},
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing or unreadable
// file yields the defaults with no error. A file that exists but does not
// parse also yields the defaults, with an advisory error the caller may log.
func Load(path string) (Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	// Unmarshal over the prefilled struct: unset fields keep their defaults
	// and map keys merge individually, which is the one-level merge the
	// original config format defines.
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize repairs values the world cannot operate on. User files can zero
// out numeric fields or empty the family table; the renderer and hit tests
// need them positive and non-empty.
func (c *Config) Normalize() {
	def := Defaults()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.Grid <= 0 {
		c.Grid = def.Grid
	}
	if c.SnapRadius <= 0 {
		c.SnapRadius = def.SnapRadius
	}
	if c.PortRadius <= 0 {
		c.PortRadius = def.PortRadius
	}
	if c.WireWidth <= 0 {
		c.WireWidth = def.WireWidth
	}
	if len(c.Families) == 0 {
		c.Families = def.Families
	}
	if c.DefaultFamily == "" {
		c.DefaultFamily = def.DefaultFamily
	}
	if _, ok := c.Families[c.DefaultFamily]; !ok {
		// The default family is the fallback for unknown lookups, so it must
		// itself resolve. Re-add the built-in entry under the chosen name.
		c.Families[c.DefaultFamily] = def.Families[def.DefaultFamily]
	}
}
