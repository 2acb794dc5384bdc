// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package format

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/2dChan/spheremap"
)

const (
	dmxChannelsPerLED      = 3
	dmxChannelsPerUniverse = 512
)

// Chromatik writes Chromatik fixture files (.lxf). Each ring becomes a full
// 360° arc component and each port becomes an ArtNet output covering the
// port's contiguous LED range.
type Chromatik struct {
	params Params
}

// NewChromatik builds the Chromatik fixture writer.
func NewChromatik(p Params) *Chromatik {
	if p.Chromatik.ArtNetHost == "" {
		p.Chromatik.ArtNetHost = "127.0.0.1"
	}
	if p.Chromatik.DMXStartChannel == 0 {
		p.Chromatik.DMXStartChannel = 1
	}
	return &Chromatik{params: p}
}

func (c *Chromatik) Name() string { return "chromatik" }
func (c *Chromatik) Ext() string  { return ".lxf" }

type lxfVector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type lxfComponent struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Z         float64   `json:"z"`
	Radius    int       `json:"radius"`
	NumPoints int       `json:"numPoints"`
	Degrees   float64   `json:"degrees"`
	Normal    lxfVector `json:"normal"`
}

type lxfOutput struct {
	Protocol string `json:"protocol"`
	Host     string `json:"host"`
	Universe int    `json:"universe"`
	Channel  int    `json:"channel"`
	Start    int    `json:"start"`
	Num      int    `json:"num"`
}

type lxfFixture struct {
	Label      string            `json:"label"`
	Tags       []string          `json:"tags"`
	Components []lxfComponent    `json:"components"`
	Outputs    []lxfOutput       `json:"outputs"`
	Meta       map[string]string `json:"meta"`
}

func (c *Chromatik) Write(w io.Writer, l *spheremap.Layout) error {
	up := l.Options().Up

	components := make([]lxfComponent, 0, l.NumRings())
	for idx := 1; idx <= l.NumRings(); idx++ {
		ring, err := l.Ring(idx)
		if err != nil {
			return err
		}
		components = append(components, ringArc(ring, up))
	}

	outputs := make([]lxfOutput, 0, l.NumPorts())
	for id := 1; id <= l.NumPorts(); id++ {
		port, err := l.Port(id)
		if err != nil {
			return err
		}
		universe, channel := c.artnetAddress(port.Start())
		outputs = append(outputs, lxfOutput{
			Protocol: "artnet",
			Host:     c.params.Chromatik.ArtNetHost,
			Universe: universe,
			Channel:  channel,
			Start:    port.Start(),
			Num:      port.LEDCount(),
		})
	}

	fixture := lxfFixture{
		Label:      c.params.modelLabel(),
		Tags:       []string{"sphere"},
		Components: components,
		Outputs:    outputs,
		Meta: map[string]string{
			"generator": "spheremap",
			"rings":     fmt.Sprintf("%d", l.NumRings()),
			"ports":     fmt.Sprintf("%d", l.NumPorts()),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fixture); err != nil {
		return fmt.Errorf("format: encoding lxf fixture: %w", err)
	}
	return nil
}

// artnetAddress returns the ArtNet universe and 1-based DMX channel of the
// first channel of an LED, assuming three channels per LED and 512 channels
// per universe.
func (c *Chromatik) artnetAddress(ledNumber int) (universe, channel int) {
	base := c.params.Chromatik.DMXStartChannel + (ledNumber-1)*dmxChannelsPerLED
	universe = c.params.Chromatik.ArtNetStartUniverse + (base-1)/dmxChannelsPerUniverse
	channel = (base-1)%dmxChannelsPerUniverse + 1
	return universe, channel
}

// ringArc models one ring as an arc component centered on the vertical
// axis. Chromatik rejects zero radii, so pole rings are clamped to radius 1.
func ringArc(ring spheremap.Ring, up spheremap.UpAxis) lxfComponent {
	center := ring.Center()
	leds := ring.LEDs()

	radius := 0.0
	if len(leds) > 0 {
		radius = leds[0].Coord.Sub(center).Norm()
	}
	r := int(math.Round(radius))
	if r < 1 {
		r = 1
	}

	normal := lxfVector{Z: 1}
	if up == spheremap.YUp {
		normal = lxfVector{Y: 1}
	}

	return lxfComponent{
		Type:      "arc",
		ID:        fmt.Sprintf("ring_%d", ring.Index()),
		Mode:      "center",
		X:         round2(center.X),
		Y:         round2(center.Y),
		Z:         round2(center.Z),
		Radius:    r,
		NumPoints: ring.Count(),
		Degrees:   360.0,
		Normal:    normal,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
