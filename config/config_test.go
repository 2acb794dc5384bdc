// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/2dChan/spheremap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
model:
  name: Atlas
  version: "2.1"
rings:
  1: 10
  2: 20
  3: 15
  4: 5
controller:
  ports: 2
  total_size: 100
geometry:
  sphere_radius: 50
  latitude_mode: equator-centered
  up_axis: y
  ring_one_at: bottom
output:
  default_prefix: atlas
  formats:
    xlights:
      enabled: true
    chromatik:
      enabled: true
    madmapper:
      enabled: false
chromatik:
  artnet_host: 10.0.0.5
  artnet_start_universe: 4
  dmx_start_channel: 1
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Atlas", cfg.Model.Name)
	assert.Equal(t, "2.1", cfg.Model.Version)
	assert.Equal(t, 2, cfg.Controller.Ports)
	assert.Equal(t, 100, cfg.Controller.TotalSize)
	assert.Equal(t, 50.0, cfg.Geometry.SphereRadius)
	assert.Equal(t, "10.0.0.5", cfg.Chromatik.ArtNetHost)
	assert.Equal(t, 4, cfg.Chromatik.ArtNetStartUniverse)
	assert.Equal(t, map[int]int{1: 10, 2: 20, 3: 15, 4: 5}, cfg.Rings)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`
rings:
  1: 10
  2: 20
controller:
  ports: 2
  total_size: 100
`))
	require.NoError(t, err)

	assert.Equal(t, defaultRadius, cfg.Geometry.SphereRadius)
	assert.Equal(t, defaultPrefix, cfg.Output.DefaultPrefix)
	assert.Equal(t, "127.0.0.1", cfg.Chromatik.ArtNetHost)
	assert.Equal(t, 1, cfg.Chromatik.DMXStartChannel)
	assert.Empty(t, cfg.EnabledFormats())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed YAML", ":\n  - ["},
		{"no rings", "controller:\n  ports: 2\n  total_size: 10\n"},
		{"zero ports", "rings:\n  1: 10\ncontroller:\n  ports: 0\n  total_size: 10\n"},
		{"zero total size", "rings:\n  1: 10\ncontroller:\n  ports: 2\n  total_size: 0\n"},
		{"negative radius", "rings:\n  1: 10\ncontroller:\n  ports: 2\n  total_size: 10\ngeometry:\n  sphere_radius: -4\n"},
		{"bad latitude mode", "rings:\n  1: 10\ncontroller:\n  ports: 2\n  total_size: 10\ngeometry:\n  latitude_mode: sideways\n"},
		{"bad up axis", "rings:\n  1: 10\ncontroller:\n  ports: 2\n  total_size: 10\ngeometry:\n  up_axis: w\n"},
		{"bad orientation", "rings:\n  1: 10\ncontroller:\n  ports: 2\n  total_size: 10\ngeometry:\n  ring_one_at: middle\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Atlas", cfg.Model.Name)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_RingTable(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	rt, err := cfg.RingTable()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 15, 5}, rt.Counts())
}

func TestConfig_LayoutOptions(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	setters, err := cfg.LayoutOptions()
	require.NoError(t, err)

	var opts spheremap.LayoutOptions
	for _, set := range setters {
		require.NoError(t, set(&opts))
	}
	assert.Equal(t, 50.0, opts.Radius)
	assert.Equal(t, spheremap.LatitudeEquatorCentered, opts.Mode)
	assert.Equal(t, spheremap.YUp, opts.Up)
	assert.Equal(t, spheremap.RingOneAtBottom, opts.Orientation)
}

func TestConfig_EnabledFormats(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"chromatik", "xlights"}, cfg.EnabledFormats())
}
