// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package format

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/2dChan/spheremap"
)

// Wiring writes the wiring chart CSV used on the workbench: one row per
// ring with its LED range and, on the rings that start or end a port, the
// data-channel bookkeeping for that port.
type Wiring struct {
	params Params
}

// NewWiring builds the wiring chart CSV writer.
func NewWiring(p Params) *Wiring {
	return &Wiring{params: p}
}

func (wc *Wiring) Name() string { return "wiring" }
func (wc *Wiring) Ext() string  { return ".csv" }

var wiringHeader = []string{
	"Ring", "LED Start", "LED End", "LEDs Per Ring",
	"DataChannel", "DC Start", "DC End", "DC Total",
	"PC Start", "PC End", "Avg X", "Avg Y", "Avg Z",
}

func (wc *Wiring) Write(w io.Writer, l *spheremap.Layout) error {
	rows, err := wiringRows(l)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(wiringHeader); err != nil {
		return fmt.Errorf("format: writing wiring header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("format: writing wiring row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// wiringRows renders one row per ring. Port columns are only filled on the
// boundary rings: DataChannel/DC Start/PC Start on the first ring of a
// port, DC End/DC Total/PC End on the last.
func wiringRows(l *spheremap.Layout) ([][]string, error) {
	rows := make([][]string, 0, l.NumRings())

	for idx := 1; idx <= l.NumRings(); idx++ {
		ring, err := l.Ring(idx)
		if err != nil {
			return nil, err
		}
		port, err := l.Port(ring.Port())
		if err != nil {
			return nil, err
		}

		var dc, dcStart, dcEnd, dcTotal, pcStart, pcEnd string
		if idx == port.FirstRing() {
			dc = fmt.Sprintf("%d", port.ID())
			dcStart = fmt.Sprintf("%d", port.Start())
			pcStart = dc
		}
		if idx == port.LastRing() {
			dcEnd = fmt.Sprintf("%d", port.End())
			dcTotal = fmt.Sprintf("%d", port.LEDCount())
			pcEnd = fmt.Sprintf("%d", port.ID())
		}

		center := ring.Center()
		rows = append(rows, []string{
			fmt.Sprintf("%d", idx),
			fmt.Sprintf("%d", ring.Start()),
			fmt.Sprintf("%d", ring.End()),
			fmt.Sprintf("%d", ring.Count()),
			dc, dcStart, dcEnd, dcTotal, pcStart, pcEnd,
			fmt.Sprintf("%.2f", center.X),
			fmt.Sprintf("%.2f", center.Y),
			fmt.Sprintf("%.2f", center.Z),
		})
	}

	return rows, nil
}
