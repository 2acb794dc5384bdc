// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package format

import (
	"bufio"
	"fmt"
	"io"

	"github.com/2dChan/spheremap"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const objHullEps = 1e-9

// OBJ writes a Wavefront OBJ mesh of the sphere surface for external 3D
// visualization. LED positions become the mesh vertices and the faces are
// the convex hull triangulation of the positions, which is exact for
// points on a sphere.
type OBJ struct {
	params Params
}

// NewOBJ builds the OBJ mesh writer.
func NewOBJ(p Params) *OBJ {
	return &OBJ{params: p}
}

func (o *OBJ) Name() string { return "obj" }
func (o *OBJ) Ext() string  { return ".obj" }

func (o *OBJ) Write(w io.Writer, l *spheremap.Layout) error {
	points := make([]r3.Vector, len(l.LEDs))
	for i, led := range l.LEDs {
		points[i] = led.Coord
	}
	if len(points) < 4 {
		return fmt.Errorf("format: at least 4 LEDs required for a mesh, got %d", len(points))
	}

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(points, true, true, objHullEps)
	if len(hull.Indices)%3 != 0 {
		return fmt.Errorf("format: inconsistent hull triangulation (%d indices)", len(hull.Indices))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", o.params.modelLabel())
	fmt.Fprintf(bw, "# %d LEDs, %d faces\n", len(points), len(hull.Indices)/3)
	fmt.Fprintf(bw, "o %s\n", objName(o.params.ModelName))

	for _, p := range points {
		fmt.Fprintf(bw, "v %.4f %.4f %.4f\n", p.X, p.Y, p.Z)
	}
	for i := 0; i < len(hull.Indices); i += 3 {
		// OBJ face indices are 1-based, matching the LED numbers.
		fmt.Fprintf(bw, "f %d %d %d\n",
			hull.Indices[i]+1, hull.Indices[i+1]+1, hull.Indices[i+2]+1)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("format: writing obj mesh: %w", err)
	}
	return nil
}

func objName(name string) string {
	if name == "" {
		return "sphere"
	}
	return name
}
