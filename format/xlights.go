// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package format

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2dChan/spheremap"
)

// XLights writes xLights custom model files (.xmodel). Each ring becomes
// one sparse row of width TotalSize in the CustomModel attribute, with the
// remaining LEDs spread across the row by their angular position.
type XLights struct {
	params Params
}

// NewXLights builds the xLights 2D model writer.
func NewXLights(p Params) *XLights {
	return &XLights{params: p}
}

func (x *XLights) Name() string { return "xlights" }
func (x *XLights) Ext() string  { return ".xmodel" }

type xmodelMetadata struct {
	Generator string `xml:"generator,attr"`
	Method    string `xml:"method,attr"`
	TotalLEDs int    `xml:"total_leds,attr"`
	Ports     int    `xml:"ports,attr"`
}

type xmodelLED struct {
	Number   int    `xml:"number,attr"`
	Ring     int    `xml:"ring,attr"`
	Position int    `xml:"position,attr"`
	X        string `xml:"x,attr"`
	Y        string `xml:"y,attr"`
	Z        string `xml:"z,attr"`
}

type xmodelCoordinates struct {
	LEDs []xmodelLED `xml:"led"`
}

type xmodel struct {
	XMLName         xml.Name          `xml:"custommodel"`
	Name            string            `xml:"name,attr"`
	Parm1           int               `xml:"parm1,attr"`
	Parm2           int               `xml:"parm2,attr"`
	Depth           int               `xml:"Depth,attr"`
	StringType      string            `xml:"StringType,attr"`
	Transparency    int               `xml:"Transparency,attr"`
	PixelSize       int               `xml:"PixelSize,attr"`
	ModelBrightness int               `xml:"ModelBrightness,attr"`
	Antialias       int               `xml:"Antialias,attr"`
	StrandNames     string            `xml:"StrandNames,attr"`
	NodeNames       string            `xml:"NodeNames,attr"`
	CustomModel     string            `xml:"CustomModel,attr"`
	SourceVersion   string            `xml:"SourceVersion,attr"`
	Metadata        xmodelMetadata    `xml:"metadata"`
	Coordinates     xmodelCoordinates `xml:"coordinates"`
}

func (x *XLights) Write(w io.Writer, l *spheremap.Layout) error {
	rows := make([]string, 0, l.NumRings())
	for ring := 1; ring <= l.NumRings(); ring++ {
		r, err := l.Ring(ring)
		if err != nil {
			return err
		}
		rows = append(rows, ringRow(r, x.params.TotalSize))
	}

	leds := make([]xmodelLED, 0, l.NumLEDs())
	for _, led := range l.LEDs {
		leds = append(leds, xmodelLED{
			Number:   led.Number,
			Ring:     led.Ring,
			Position: led.Pos,
			X:        fmt.Sprintf("%.2f", led.Coord.X),
			Y:        fmt.Sprintf("%.2f", led.Coord.Y),
			Z:        fmt.Sprintf("%.2f", led.Coord.Z),
		})
	}

	model := xmodel{
		Name:          x.params.modelLabel(),
		Parm1:         x.params.TotalSize,
		Parm2:         l.NumRings(),
		Depth:         1,
		StringType:    "GRB Nodes",
		PixelSize:     2,
		Antialias:     1,
		CustomModel:   strings.Join(rows, ";"),
		SourceVersion: "2023.20",
		Metadata: xmodelMetadata{
			Generator: "spheremap",
			Method:    "coordinate-based",
			TotalLEDs: l.NumLEDs(),
			Ports:     l.NumPorts(),
		},
		Coordinates: xmodelCoordinates{LEDs: leds},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(model); err != nil {
		return fmt.Errorf("format: encoding xmodel: %w", err)
	}
	return enc.Close()
}

// ringRow renders one ring as a sparse comma-separated row of the given
// width. The first and last LEDs pin the row ends and the LEDs between are
// placed by their angular fraction of the ring.
func ringRow(r spheremap.Ring, width int) string {
	slots := make([]string, width)
	leds := r.LEDs()

	if len(leds) == 1 {
		slots[0] = strconv.Itoa(leds[0].Number)
		return strings.Join(slots, ",")
	}

	slots[0] = strconv.Itoa(leds[0].Number)
	slots[width-1] = strconv.Itoa(leds[len(leds)-1].Number)
	for i := 1; i < len(leds)-1; i++ {
		frac := float64(i) / float64(len(leds)-1)
		slots[int(frac*float64(width-1))] = strconv.Itoa(leds[i].Number)
	}

	return strings.Join(slots, ",")
}
