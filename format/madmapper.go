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

// MadMapper writes MadMapper fixture files (.mmfl). The sphere is flattened
// into a 2D grid with one centered row per ring; cells carry the DMX start
// channel of their LED and empty cells are -1.
type MadMapper struct {
	params Params
}

// NewMadMapper builds the MadMapper fixture writer.
func NewMadMapper(p Params) *MadMapper {
	if p.MadMapper.DMXStartChannel == 0 {
		p.MadMapper.DMXStartChannel = 1
	}
	return &MadMapper{params: p}
}

func (m *MadMapper) Name() string { return "madmapper" }
func (m *MadMapper) Ext() string  { return ".mmfl" }

type mmflRow struct {
	Ring  int    `xml:"ring,attr"`
	Cells string `xml:",chardata"`
}

type mmflFixture struct {
	XMLName         xml.Name  `xml:"MadMapperFixture"`
	Name            string    `xml:"name,attr"`
	Width           int       `xml:"width,attr"`
	Height          int       `xml:"height,attr"`
	DMXStartChannel int       `xml:"dmxStartChannel,attr"`
	Rows            []mmflRow `xml:"mapping>row"`
}

func (m *MadMapper) Write(w io.Writer, l *spheremap.Layout) error {
	// Wide enough to center the largest ring with empty cells around it.
	width := m.params.MadMapper.GridResolution
	if width < l.Rings.MaxCount() {
		width = 2 * l.Rings.MaxCount()
	}

	rows := make([]mmflRow, 0, l.NumRings())
	for idx := 1; idx <= l.NumRings(); idx++ {
		ring, err := l.Ring(idx)
		if err != nil {
			return err
		}

		cells := make([]string, width)
		for i := range cells {
			cells[i] = "-1"
		}
		offset := (width - ring.Count()) / 2
		for _, led := range ring.LEDs() {
			channel := m.params.MadMapper.DMXStartChannel + (led.Number-1)*dmxChannelsPerLED
			cells[offset+led.Pos] = strconv.Itoa(channel)
		}
		rows = append(rows, mmflRow{Ring: idx, Cells: strings.Join(cells, ",")})
	}

	fixture := mmflFixture{
		Name:            m.params.modelLabel(),
		Width:           width,
		Height:          l.NumRings(),
		DMXStartChannel: m.params.MadMapper.DMXStartChannel,
		Rows:            rows,
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(fixture); err != nil {
		return fmt.Errorf("format: encoding mmfl fixture: %w", err)
	}
	return enc.Close()
}
