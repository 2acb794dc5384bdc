// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config loads and validates the YAML model description consumed by
// the spheremap generator: the ring table, controller wiring limits,
// geometric conventions, and per-format output settings.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/2dChan/spheremap"
	"gopkg.in/yaml.v3"
)

const (
	defaultRadius = 100.0
	defaultPrefix = "sphere"
)

// Model identifies the generated model in output files.
type Model struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Controller describes the LED controller the sphere is wired to.
type Controller struct {
	Ports int `yaml:"ports"`
	// TotalSize is the width of the per-ring grid rows some formats emit.
	TotalSize int `yaml:"total_size"`
}

// Geometry holds the projection conventions. LatitudeMode is
// "pole-to-pole" or "equator-centered", UpAxis is "z" or "y", RingOneAt is
// "default", "top" or "bottom". Empty strings select the defaults.
type Geometry struct {
	SphereRadius float64 `yaml:"sphere_radius"`
	LatitudeMode string  `yaml:"latitude_mode"`
	UpAxis       string  `yaml:"up_axis"`
	RingOneAt    string  `yaml:"ring_one_at"`
}

// Format is the per-output-format switch in the output section.
type Format struct {
	Enabled bool `yaml:"enabled"`
}

// Output selects which formats to generate and how to name the files.
type Output struct {
	DefaultPrefix string            `yaml:"default_prefix"`
	Formats       map[string]Format `yaml:"formats"`
}

// Chromatik holds settings specific to the Chromatik fixture writer.
type Chromatik struct {
	ArtNetHost          string `yaml:"artnet_host"`
	ArtNetStartUniverse int    `yaml:"artnet_start_universe"`
	DMXStartChannel     int    `yaml:"dmx_start_channel"`
}

// MadMapper holds settings specific to the MadMapper fixture writer.
type MadMapper struct {
	GridResolution  int `yaml:"grid_resolution"`
	DMXStartChannel int `yaml:"dmx_start_channel"`
}

// XLights3D holds the grid dimensions of the 3D xLights writer.
type XLights3D struct {
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
	GridDepth  int `yaml:"grid_depth"`
}

// Config is the full YAML model description.
type Config struct {
	Model      Model       `yaml:"model"`
	Rings      map[int]int `yaml:"rings"`
	Controller Controller  `yaml:"controller"`
	Geometry   Geometry    `yaml:"geometry"`
	Output     Output      `yaml:"output"`
	Chromatik  Chromatik   `yaml:"chromatik"`
	MadMapper  MadMapper   `yaml:"madmapper"`
	XLights3D  XLights3D   `yaml:"xlights3d"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse unmarshals a YAML document, applies defaults, and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if cfg.Geometry.SphereRadius == 0 {
		cfg.Geometry.SphereRadius = defaultRadius
	}
	if cfg.Output.DefaultPrefix == "" {
		cfg.Output.DefaultPrefix = defaultPrefix
	}
	if cfg.Chromatik.ArtNetHost == "" {
		cfg.Chromatik.ArtNetHost = "127.0.0.1"
	}
	if cfg.Chromatik.DMXStartChannel == 0 {
		cfg.Chromatik.DMXStartChannel = 1
	}
	if cfg.MadMapper.DMXStartChannel == 0 {
		cfg.MadMapper.DMXStartChannel = 1
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the sections the generator cannot run without.
func (c *Config) Validate() error {
	if len(c.Rings) == 0 {
		return fmt.Errorf("config: no rings defined")
	}
	if c.Controller.Ports < 1 {
		return fmt.Errorf("config: controller ports %d must be at least 1", c.Controller.Ports)
	}
	if c.Controller.TotalSize < 1 {
		return fmt.Errorf("config: controller total_size %d must be at least 1", c.Controller.TotalSize)
	}
	if c.Geometry.SphereRadius <= 0 {
		return fmt.Errorf("config: sphere_radius %v must be positive", c.Geometry.SphereRadius)
	}
	if _, err := c.LayoutOptions(); err != nil {
		return err
	}
	return nil
}

// RingTable converts the rings section into a core RingTable.
func (c *Config) RingTable() (spheremap.RingTable, error) {
	return spheremap.RingTableFromMap(c.Rings)
}

// LayoutOptions converts the geometry section into core layout options.
func (c *Config) LayoutOptions() ([]spheremap.LayoutOption, error) {
	opts := []spheremap.LayoutOption{spheremap.WithRadius(c.Geometry.SphereRadius)}

	switch c.Geometry.LatitudeMode {
	case "", "pole-to-pole":
		opts = append(opts, spheremap.WithLatitudeMode(spheremap.LatitudePoleToPole))
	case "equator-centered":
		opts = append(opts, spheremap.WithLatitudeMode(spheremap.LatitudeEquatorCentered))
	default:
		return nil, fmt.Errorf("config: unknown latitude_mode %q", c.Geometry.LatitudeMode)
	}

	switch c.Geometry.UpAxis {
	case "", "z":
		opts = append(opts, spheremap.WithUpAxis(spheremap.ZUp))
	case "y":
		opts = append(opts, spheremap.WithUpAxis(spheremap.YUp))
	default:
		return nil, fmt.Errorf("config: unknown up_axis %q", c.Geometry.UpAxis)
	}

	switch c.Geometry.RingOneAt {
	case "", "default":
	case "top":
		opts = append(opts, spheremap.WithRingOneAt(spheremap.RingOneAtTop))
	case "bottom":
		opts = append(opts, spheremap.WithRingOneAt(spheremap.RingOneAtBottom))
	default:
		return nil, fmt.Errorf("config: unknown ring_one_at %q", c.Geometry.RingOneAt)
	}

	return opts, nil
}

// EnabledFormats returns the names of the enabled output formats in
// deterministic order.
func (c *Config) EnabledFormats() []string {
	var names []string
	for name, f := range c.Output.Formats {
		if f.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
