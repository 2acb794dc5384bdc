// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package spheremap

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Ring is a view structure for accessing one ring of a Layout. The index
// corresponds to the 1-based ring index in the Layout's RingTable.
type Ring struct {
	idx int
	l   *Layout
}

// Ring returns a view of the ring with the given 1-based index.
// It returns an error if the index is out of range.
func (l *Layout) Ring(i int) (Ring, error) {
	if i < 1 || i > l.NumRings() {
		return Ring{}, fmt.Errorf("%w: ring index %d out of range [1 %d]",
			ErrConfiguration, i, l.NumRings())
	}
	return Ring{idx: i, l: l}, nil
}

// Index returns the 1-based ring index.
func (r Ring) Index() int {
	return r.idx
}

// Count returns the number of LEDs on the ring.
func (r Ring) Count() int {
	return r.l.ringStart[r.idx] - r.l.ringStart[r.idx-1]
}

// Port returns the 1-based id of the port the ring is wired to.
func (r Ring) Port() int {
	return r.l.GroupOf[r.idx-1]
}

// Start returns the global number of the first LED on the ring.
func (r Ring) Start() int {
	return r.l.ringStart[r.idx-1]
}

// End returns the global number of the last LED on the ring.
func (r Ring) End() int {
	return r.l.ringStart[r.idx] - 1
}

// LEDs returns the ring's LEDs in position order as a view into the
// Layout's LEDs.
func (r Ring) LEDs() []LED {
	return r.l.LEDs[r.Start()-1 : r.End()]
}

// Center returns the average coordinate of the ring's LEDs.
func (r Ring) Center() r3.Vector {
	return centroid(r.LEDs())
}

// Port is a view structure for accessing one wiring group of a Layout. The
// id corresponds to the 1-based controller output port the group is wired
// to.
type Port struct {
	id int
	l  *Layout
}

// Port returns a view of the port with the given 1-based id.
// It returns an error if the id is out of range.
func (l *Layout) Port(id int) (Port, error) {
	if id < 1 || id > l.NumPorts() {
		return Port{}, fmt.Errorf("%w: port id %d out of range [1 %d]",
			ErrConfiguration, id, l.NumPorts())
	}
	return Port{id: id, l: l}, nil
}

// ID returns the 1-based port id.
func (p Port) ID() int {
	return p.id
}

// NumRings returns the number of rings wired to the port.
func (p Port) NumRings() int {
	return p.l.PortOffsets[p.id] - p.l.PortOffsets[p.id-1]
}

// FirstRing returns the 1-based index of the first ring on the port.
func (p Port) FirstRing() int {
	return p.l.PortOffsets[p.id-1] + 1
}

// LastRing returns the 1-based index of the last ring on the port.
func (p Port) LastRing() int {
	return p.l.PortOffsets[p.id]
}

// Start returns the global number of the first LED on the port.
func (p Port) Start() int {
	return p.l.ringStart[p.FirstRing()-1]
}

// End returns the global number of the last LED on the port.
func (p Port) End() int {
	return p.l.ringStart[p.LastRing()] - 1
}

// LEDCount returns the number of LEDs wired to the port. This is the load
// the balanced partition equalizes across ports.
func (p Port) LEDCount() int {
	return p.End() - p.Start() + 1
}

// LEDs returns the port's LEDs in wiring order as a view into the Layout's
// LEDs.
func (p Port) LEDs() []LED {
	return p.l.LEDs[p.Start()-1 : p.End()]
}

// Center returns the average coordinate of the port's LEDs.
func (p Port) Center() r3.Vector {
	return centroid(p.LEDs())
}

func centroid(leds []LED) r3.Vector {
	if len(leds) == 0 {
		return r3.Vector{}
	}
	var sum r3.Vector
	for _, led := range leds {
		sum = sum.Add(led.Coord)
	}
	return sum.Mul(1 / float64(len(leds)))
}
