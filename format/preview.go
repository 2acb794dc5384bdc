// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package format

import (
	"fmt"
	"io"

	"github.com/2dChan/spheremap"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Preview writes an interactive HTML page with a 3D scatter plot of the
// layout, colored by port, for a quick visual check of the wiring balance
// before any files are loaded into mapping software.
type Preview struct {
	params Params
}

// NewPreview builds the HTML preview writer.
func NewPreview(p Params) *Preview {
	return &Preview{params: p}
}

func (pv *Preview) Name() string { return "preview" }
func (pv *Preview) Ext() string  { return "_preview.html" }

func (pv *Preview) Write(w io.Writer, l *spheremap.Layout) error {
	data := make([]opts.Chart3DData, 0, l.NumLEDs())
	for _, led := range l.LEDs {
		data = append(data, opts.Chart3DData{
			Value: []interface{}{led.Coord.X, led.Coord.Y, led.Coord.Z, l.GroupOf[led.Ring-1]},
		})
	}

	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: pv.params.modelLabel(),
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: pv.params.modelLabel(),
			Subtitle: fmt.Sprintf("%d LEDs, %d rings, %d ports",
				l.NumLEDs(), l.NumRings(), l.NumPorts()),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        1,
			Max:        float32(l.NumPorts()),
			Dimension:  "3",
			InRange: &opts.VisualMapInRange{
				Color: []string{"#440154", "#31688e", "#35b779", "#fde725"},
			},
		}),
	)

	scatter.AddSeries("LEDs", data)

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("format: rendering preview: %w", err)
	}
	return nil
}
