// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package spheremap

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// LatitudeMode selects how ring indices map to latitude angles. Both
// conventions appear in LED-mapping software, so the mode in effect is part
// of the layout configuration.
type LatitudeMode int

const (
	// LatitudePoleToPole spreads rings linearly over colatitude [0, π].
	// Ring 1 defaults to the top pole, ring N to the bottom pole.
	LatitudePoleToPole LatitudeMode = iota
	// LatitudeEquatorCentered spreads rings linearly over latitude
	// [-π/2, +π/2]. Ring 1 defaults to the bottom pole, ring N to the top.
	LatitudeEquatorCentered
)

func (m LatitudeMode) String() string {
	switch m {
	case LatitudePoleToPole:
		return "pole-to-pole"
	case LatitudeEquatorCentered:
		return "equator-centered"
	}
	return fmt.Sprintf("LatitudeMode(%d)", int(m))
}

// UpAxis selects the vertical axis of the produced Cartesian coordinates.
type UpAxis int

const (
	// ZUp places the poles on the Z axis and the equator in the X-Y plane.
	ZUp UpAxis = iota
	// YUp places the poles on the Y axis and the equator in the X-Z plane.
	YUp
)

func (a UpAxis) String() string {
	switch a {
	case ZUp:
		return "z-up"
	case YUp:
		return "y-up"
	}
	return fmt.Sprintf("UpAxis(%d)", int(a))
}

// RingOrientation selects where ring 1 lands on the vertical axis.
type RingOrientation int

const (
	// RingOneAtDefault keeps the natural placement of the latitude mode.
	RingOneAtDefault RingOrientation = iota
	// RingOneAtTop forces ring 1 to the top pole.
	RingOneAtTop
	// RingOneAtBottom forces ring 1 to the bottom pole.
	RingOneAtBottom
)

// Projector maps (ring, position-in-ring) pairs to Cartesian coordinates on
// a sphere. It is stateless apart from its configuration; Project is a pure
// function and safe for concurrent use.
type Projector struct {
	totalRings int
	opts       LayoutOptions
}

// NewProjector builds a Projector for a sphere with the given total ring
// count. At least two rings are required: the latitude step divides by
// totalRings-1.
func NewProjector(totalRings int, setters ...LayoutOption) (*Projector, error) {
	opts, err := resolveOptions(setters)
	if err != nil {
		return nil, err
	}
	return newProjector(totalRings, opts)
}

func newProjector(totalRings int, opts LayoutOptions) (*Projector, error) {
	if totalRings < 2 {
		return nil, fmt.Errorf("%w: at least 2 rings required for latitude interpolation, got %d",
			ErrConfiguration, totalRings)
	}
	return &Projector{totalRings: totalRings, opts: opts}, nil
}

// NumRings returns the total ring count of the sphere.
func (p *Projector) NumRings() int {
	return p.totalRings
}

// Radius returns the sphere radius.
func (p *Projector) Radius() float64 {
	return p.opts.Radius
}

// Latitude returns the latitude angle of the given 1-based ring under the
// configured mode and orientation.
func (p *Projector) Latitude(ring int) (s1.Angle, error) {
	if ring < 1 || ring > p.totalRings {
		return 0, fmt.Errorf("%w: ring index %d out of range [1 %d]",
			ErrConfiguration, ring, p.totalRings)
	}

	frac := float64(ring-1) / float64(p.totalRings-1)

	var lat float64
	switch p.opts.Mode {
	case LatitudePoleToPole:
		// Colatitude 0..π from the top.
		lat = math.Pi/2 - frac*math.Pi
		if p.opts.Orientation == RingOneAtBottom {
			lat = -lat
		}
	case LatitudeEquatorCentered:
		lat = (frac - 0.5) * math.Pi
		if p.opts.Orientation == RingOneAtTop {
			lat = -lat
		}
	default:
		return 0, fmt.Errorf("%w: unknown latitude mode %d", ErrConfiguration, p.opts.Mode)
	}

	return s1.Angle(lat), nil
}

// Longitude returns the longitude angle of a position within a ring of
// ledsInRing LEDs. A ring holding a single LED sits on the reference
// meridian at longitude 0.
func (p *Projector) Longitude(pos, ledsInRing int) (s1.Angle, error) {
	if ledsInRing < 1 {
		return 0, fmt.Errorf("%w: LED count %d must be positive", ErrConfiguration, ledsInRing)
	}
	if pos < 0 || pos >= ledsInRing {
		return 0, fmt.Errorf("%w: position %d out of range [0 %d)", ErrConfiguration, pos, ledsInRing)
	}

	if ledsInRing == 1 {
		return 0, nil
	}
	return s1.Angle(2 * math.Pi * float64(pos) / float64(ledsInRing)), nil
}

// Project returns the Cartesian position of one LED on the sphere surface.
// The result depends only on the arguments and the Projector configuration.
func (p *Projector) Project(ring, pos, ledsInRing int) (r3.Vector, error) {
	lat, err := p.Latitude(ring)
	if err != nil {
		return r3.Vector{}, err
	}
	lng, err := p.Longitude(pos, ledsInRing)
	if err != nil {
		return r3.Vector{}, err
	}

	v := s2.PointFromLatLng(s2.LatLng{Lat: lat, Lng: lng}).Mul(p.opts.Radius)
	if p.opts.Up == YUp {
		v = r3.Vector{X: v.X, Y: v.Z, Z: -v.Y}
	}
	return v, nil
}
