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

const (
	defaultGridWidth  = 200
	defaultGridHeight = 60
	defaultGridDepth  = 200
)

// XLights3D writes xLights custom model files with a classic 3D grid
// layout. LED coordinates are quantized into a width × height × depth grid
// and emitted both as the expanded CustomModel attribute
// (layers|rows;cols) and the compressed node,row,col,layer form.
type XLights3D struct {
	params Params
}

// NewXLights3D builds the xLights 3D model writer.
func NewXLights3D(p Params) *XLights3D {
	if p.XLights3D.Width == 0 {
		p.XLights3D.Width = defaultGridWidth
	}
	if p.XLights3D.Height == 0 {
		p.XLights3D.Height = defaultGridHeight
	}
	if p.XLights3D.Depth == 0 {
		p.XLights3D.Depth = defaultGridDepth
	}
	return &XLights3D{params: p}
}

func (x *XLights3D) Name() string { return "xlights3d" }
func (x *XLights3D) Ext() string  { return "_3d.xmodel" }

type xmodel3D struct {
	XMLName               xml.Name       `xml:"custommodel"`
	Name                  string         `xml:"name,attr"`
	Parm1                 int            `xml:"parm1,attr"`
	Parm2                 int            `xml:"parm2,attr"`
	Depth                 int            `xml:"Depth,attr"`
	StringType            string         `xml:"StringType,attr"`
	PixelSize             int            `xml:"PixelSize,attr"`
	Antialias             int            `xml:"Antialias,attr"`
	CustomModel           string         `xml:"CustomModel,attr"`
	CustomModelCompressed string         `xml:"CustomModelCompressed,attr"`
	SourceVersion         string         `xml:"SourceVersion,attr"`
	Metadata              xmodelMetadata `xml:"metadata"`
}

func (x *XLights3D) Write(w io.Writer, l *spheremap.Layout) error {
	width := x.params.XLights3D.Width
	height := x.params.XLights3D.Height
	depth := x.params.XLights3D.Depth

	// Half the coordinate span on each side of the origin; layouts are
	// centered on the sphere center.
	radius := l.Options().Radius

	type cellRef struct{ node, row, col, layer int }
	grid := make([]int, width*height*depth)
	for i := range grid {
		grid[i] = -1
	}

	refs := make([]cellRef, 0, l.NumLEDs())
	for _, led := range l.LEDs {
		col := clampGrid((led.Coord.X+radius)*float64(width-1)/(2*radius), width)
		row := clampGrid((radius-led.Coord.Y)*float64(height-1)/(2*radius), height)
		layer := clampGrid((led.Coord.Z+radius)*float64(depth-1)/(2*radius), depth)

		grid[(layer*height+row)*width+col] = led.Number
		refs = append(refs, cellRef{node: led.Number, row: row, col: col, layer: layer})
	}

	var expanded strings.Builder
	for layer := 0; layer < depth; layer++ {
		if layer > 0 {
			expanded.WriteByte('|')
		}
		for row := 0; row < height; row++ {
			if row > 0 {
				expanded.WriteByte(';')
			}
			for col := 0; col < width; col++ {
				if col > 0 {
					expanded.WriteByte(',')
				}
				if node := grid[(layer*height+row)*width+col]; node >= 0 {
					expanded.WriteString(strconv.Itoa(node))
				}
			}
		}
	}

	compressed := make([]string, 0, len(refs))
	for _, ref := range refs {
		compressed = append(compressed,
			fmt.Sprintf("%d,%d,%d,%d", ref.node, ref.row, ref.col, ref.layer))
	}

	model := xmodel3D{
		Name:                  x.params.modelLabel() + " 3D",
		Parm1:                 width,
		Parm2:                 height,
		Depth:                 depth,
		StringType:            "GRB Nodes",
		PixelSize:             2,
		Antialias:             1,
		CustomModel:           expanded.String(),
		CustomModelCompressed: strings.Join(compressed, ";"),
		SourceVersion:         "2023.20",
		Metadata: xmodelMetadata{
			Generator: "spheremap",
			Method:    "grid-quantized",
			TotalLEDs: l.NumLEDs(),
			Ports:     l.NumPorts(),
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(model); err != nil {
		return fmt.Errorf("format: encoding 3D xmodel: %w", err)
	}
	return enc.Close()
}

func clampGrid(v float64, size int) int {
	i := int(v + 0.5)
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
