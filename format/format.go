// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package format serializes computed layouts into the file formats consumed
// by LED-mapping and animation software. Writers receive a finished
// spheremap.Layout and an io.Writer; they never compute placement or
// wiring themselves.
package format

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/2dChan/spheremap"
)

// ErrUnknownFormat reports a format name with no registered writer.
var ErrUnknownFormat = errors.New("format: unknown format")

// Writer serializes one Layout into one target file format.
type Writer interface {
	// Name is the registry key of the format.
	Name() string
	// Ext is the filename suffix of the format, including the dot.
	Ext() string
	Write(w io.Writer, l *spheremap.Layout) error
}

// ChromatikParams configure the Chromatik fixture writer.
type ChromatikParams struct {
	ArtNetHost          string
	ArtNetStartUniverse int
	DMXStartChannel     int
}

// MadMapperParams configure the MadMapper fixture writer. A zero
// GridResolution sizes the grid from the largest ring.
type MadMapperParams struct {
	GridResolution  int
	DMXStartChannel int
}

// GridParams are the grid dimensions of the 3D xLights writer. Zero values
// select defaults sized for a radius-100 sphere.
type GridParams struct {
	Width  int
	Height int
	Depth  int
}

// Params carry the model identity and per-format settings shared by all
// writers. TotalSize is the width of the per-ring rows in 2D grid formats.
type Params struct {
	ModelName    string
	ModelVersion string
	TotalSize    int
	Chromatik    ChromatikParams
	MadMapper    MadMapperParams
	XLights3D    GridParams
}

func (p Params) modelLabel() string {
	if p.ModelVersion == "" {
		return p.ModelName
	}
	return fmt.Sprintf("%s v%s", p.ModelName, p.ModelVersion)
}

var builders = map[string]func(Params) Writer{
	"xlights":   func(p Params) Writer { return NewXLights(p) },
	"xlights3d": func(p Params) Writer { return NewXLights3D(p) },
	"chromatik": func(p Params) Writer { return NewChromatik(p) },
	"madmapper": func(p Params) Writer { return NewMadMapper(p) },
	"wiring":    func(p Params) Writer { return NewWiring(p) },
	"xlsx":      func(p Params) Writer { return NewXLSX(p) },
	"coords":    func(p Params) Writer { return NewCoords(p) },
	"obj":       func(p Params) Writer { return NewOBJ(p) },
	"preview":   func(p Params) Writer { return NewPreview(p) },
}

// Available returns the registered format names in sorted order.
func Available() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the writer registered under name.
func New(name string, p Params) (Writer, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return build(p), nil
}
