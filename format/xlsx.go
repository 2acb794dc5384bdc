// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package format

import (
	"fmt"
	"io"

	"github.com/2dChan/spheremap"
	"github.com/xuri/excelize/v2"
)

// XLSX writes the wiring chart as a spreadsheet workbook: a Wiring sheet
// mirroring the CSV chart and a Ports sheet summarizing the load of every
// controller output.
type XLSX struct {
	params Params
}

// NewXLSX builds the wiring workbook writer.
func NewXLSX(p Params) *XLSX {
	return &XLSX{params: p}
}

func (x *XLSX) Name() string { return "xlsx" }
func (x *XLSX) Ext() string  { return ".xlsx" }

func (x *XLSX) Write(w io.Writer, l *spheremap.Layout) error {
	f := excelize.NewFile()
	defer f.Close()

	const wiringSheet = "Wiring"
	if err := f.SetSheetName("Sheet1", wiringSheet); err != nil {
		return fmt.Errorf("format: renaming sheet: %w", err)
	}

	header := make([]interface{}, len(wiringHeader))
	for i, h := range wiringHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(wiringSheet, "A1", &header); err != nil {
		return fmt.Errorf("format: writing wiring header: %w", err)
	}

	rows, err := wiringRows(l)
	if err != nil {
		return err
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("format: wiring cell name: %w", err)
		}
		if err := f.SetSheetRow(wiringSheet, cell, &cells); err != nil {
			return fmt.Errorf("format: writing wiring row %d: %w", i+1, err)
		}
	}

	const portsSheet = "Ports"
	if _, err := f.NewSheet(portsSheet); err != nil {
		return fmt.Errorf("format: creating ports sheet: %w", err)
	}
	portsHeader := []interface{}{
		"Port", "First Ring", "Last Ring", "Rings",
		"LED Start", "LED End", "LED Count", "Center X", "Center Y", "Center Z",
	}
	if err := f.SetSheetRow(portsSheet, "A1", &portsHeader); err != nil {
		return fmt.Errorf("format: writing ports header: %w", err)
	}

	for id := 1; id <= l.NumPorts(); id++ {
		port, err := l.Port(id)
		if err != nil {
			return err
		}
		center := port.Center()
		row := []interface{}{
			port.ID(), port.FirstRing(), port.LastRing(), port.NumRings(),
			port.Start(), port.End(), port.LEDCount(),
			round2(center.X), round2(center.Y), round2(center.Z),
		}
		cell, err := excelize.CoordinatesToCellName(1, id+1)
		if err != nil {
			return fmt.Errorf("format: ports cell name: %w", err)
		}
		if err := f.SetSheetRow(portsSheet, cell, &row); err != nil {
			return fmt.Errorf("format: writing ports row %d: %w", id, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("format: writing workbook: %w", err)
	}
	return nil
}
