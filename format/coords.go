// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/2dChan/spheremap"
)

// Coords writes the LED coordinates as a JSON document for external
// visualization tools.
type Coords struct {
	params Params
}

// NewCoords builds the coordinates JSON writer.
func NewCoords(p Params) *Coords {
	return &Coords{params: p}
}

func (c *Coords) Name() string { return "coords" }
func (c *Coords) Ext() string  { return "_coordinates.json" }

type coordsModelInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version,omitempty"`
	TotalLEDs int    `json:"total_leds"`
	Rings     int    `json:"rings"`
	Ports     int    `json:"ports"`
}

type coordsPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type coordsLED struct {
	Number         int         `json:"number"`
	Ring           int         `json:"ring"`
	PositionInRing int         `json:"position_in_ring"`
	Port           int         `json:"port"`
	Coordinates    coordsPoint `json:"coordinates"`
}

type coordsDocument struct {
	ModelInfo coordsModelInfo `json:"model_info"`
	LEDs      []coordsLED     `json:"leds"`
}

func (c *Coords) Write(w io.Writer, l *spheremap.Layout) error {
	leds := make([]coordsLED, 0, l.NumLEDs())
	for _, led := range l.LEDs {
		leds = append(leds, coordsLED{
			Number:         led.Number,
			Ring:           led.Ring,
			PositionInRing: led.Pos,
			Port:           l.GroupOf[led.Ring-1],
			Coordinates: coordsPoint{
				X: round2(led.Coord.X),
				Y: round2(led.Coord.Y),
				Z: round2(led.Coord.Z),
			},
		})
	}

	doc := coordsDocument{
		ModelInfo: coordsModelInfo{
			Name:      c.params.ModelName,
			Version:   c.params.ModelVersion,
			TotalLEDs: l.NumLEDs(),
			Rings:     l.NumRings(),
			Ports:     l.NumPorts(),
		},
		LEDs: leds,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("format: encoding coordinates: %w", err)
	}
	return nil
}
