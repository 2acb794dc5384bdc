// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package spheremap computes 3D placement coordinates for LED spheres built
// from horizontal latitude rings and partitions the rings into balanced
// wiring groups for a fixed number of controller output ports.
//
// The package is pure computation: it performs no file I/O and holds no
// process-wide state, so independent layouts may be built concurrently.
// Serialization to animation-software formats lives in the format
// subpackage.
package spheremap

import (
	"errors"
	"fmt"

	"github.com/2dChan/spheremap/ringpart"
	"github.com/golang/geo/r3"
)

const defaultRadius = 100.0

// ErrConfiguration reports invalid generation input: an empty or gapped
// ring table, a non-positive LED count, fewer than two rings, a
// non-positive sphere radius, or a port count below one.
var ErrConfiguration = errors.New("spheremap: invalid configuration")

// RingTable is an ordered table of LED counts per ring. Ring indices are
// 1-based and gap-free; index 1 is the first physical ring. A RingTable is
// immutable once constructed.
type RingTable struct {
	counts []int
}

// NewRingTable builds a RingTable from per-ring LED counts, where counts[0]
// belongs to ring 1. Every count must be positive.
func NewRingTable(counts []int) (RingTable, error) {
	if len(counts) == 0 {
		return RingTable{}, fmt.Errorf("%w: empty ring table", ErrConfiguration)
	}

	c := make([]int, len(counts))
	for i, n := range counts {
		if n <= 0 {
			return RingTable{}, fmt.Errorf("%w: ring %d has non-positive LED count %d",
				ErrConfiguration, i+1, n)
		}
		c[i] = n
	}
	return RingTable{counts: c}, nil
}

// RingTableFromMap builds a RingTable from a ring index to LED count
// mapping. The indices must form the contiguous set 1..len(m).
func RingTableFromMap(m map[int]int) (RingTable, error) {
	if len(m) == 0 {
		return RingTable{}, fmt.Errorf("%w: empty ring table", ErrConfiguration)
	}

	counts := make([]int, len(m))
	for ring, n := range m {
		if ring < 1 || ring > len(m) {
			return RingTable{}, fmt.Errorf("%w: ring index %d outside contiguous range [1 %d]",
				ErrConfiguration, ring, len(m))
		}
		counts[ring-1] = n
	}
	return NewRingTable(counts)
}

// NumRings returns the number of rings in the table.
func (rt RingTable) NumRings() int {
	return len(rt.counts)
}

// Count returns the LED count of the given 1-based ring index.
// It returns an error if the index is out of range.
func (rt RingTable) Count(ring int) (int, error) {
	if ring < 1 || ring > len(rt.counts) {
		return 0, fmt.Errorf("%w: ring index %d out of range [1 %d]",
			ErrConfiguration, ring, len(rt.counts))
	}
	return rt.counts[ring-1], nil
}

// Counts returns a copy of the per-ring LED counts, ring 1 first.
func (rt RingTable) Counts() []int {
	c := make([]int, len(rt.counts))
	copy(c, rt.counts)
	return c
}

// TotalLEDs returns the number of LEDs across all rings.
func (rt RingTable) TotalLEDs() int {
	total := 0
	for _, n := range rt.counts {
		total += n
	}
	return total
}

// MaxCount returns the largest per-ring LED count, or 0 for an empty table.
func (rt RingTable) MaxCount() int {
	best := 0
	for _, n := range rt.counts {
		if n > best {
			best = n
		}
	}
	return best
}

// LED is one physical pixel. Number is the global 1-based identifier,
// assigned in ring-major, position-minor order with no gaps. Pos is the
// 0-based position within the ring.
type LED struct {
	Number int
	Ring   int
	Pos    int
	Coord  r3.Vector
}

// LayoutOptions hold the geometric conventions of a layout. The zero value
// is not usable directly; NewLayout and NewProjector apply defaults first.
type LayoutOptions struct {
	Radius      float64
	Mode        LatitudeMode
	Up          UpAxis
	Orientation RingOrientation
}

// LayoutOption mutates LayoutOptions and reports invalid values when
// applied.
type LayoutOption func(*LayoutOptions) error

// WithRadius sets the sphere radius. The radius must be positive.
func WithRadius(r float64) LayoutOption {
	return func(o *LayoutOptions) error {
		if r <= 0 {
			return fmt.Errorf("%w: sphere radius %v must be positive", ErrConfiguration, r)
		}
		o.Radius = r
		return nil
	}
}

// WithLatitudeMode sets how ring indices map to latitude angles.
func WithLatitudeMode(m LatitudeMode) LayoutOption {
	return func(o *LayoutOptions) error {
		if m != LatitudePoleToPole && m != LatitudeEquatorCentered {
			return fmt.Errorf("%w: unknown latitude mode %d", ErrConfiguration, m)
		}
		o.Mode = m
		return nil
	}
}

// WithUpAxis sets which Cartesian axis is vertical in the produced
// coordinates.
func WithUpAxis(a UpAxis) LayoutOption {
	return func(o *LayoutOptions) error {
		if a != ZUp && a != YUp {
			return fmt.Errorf("%w: unknown up axis %d", ErrConfiguration, a)
		}
		o.Up = a
		return nil
	}
}

// WithRingOneAt overrides where ring 1 lands. Consumers disagree on whether
// ring 1 is the top or the bottom of the sphere, so the choice is explicit
// configuration rather than a fixed convention.
func WithRingOneAt(ro RingOrientation) LayoutOption {
	return func(o *LayoutOptions) error {
		if ro != RingOneAtDefault && ro != RingOneAtTop && ro != RingOneAtBottom {
			return fmt.Errorf("%w: unknown ring orientation %d", ErrConfiguration, ro)
		}
		o.Orientation = ro
		return nil
	}
}

func resolveOptions(setters []LayoutOption) (LayoutOptions, error) {
	opts := LayoutOptions{Radius: defaultRadius}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return LayoutOptions{}, err
		}
	}
	return opts, nil
}

// Layout is the computed placement and wiring plan for one sphere: every
// LED with its coordinate, plus the assignment of rings to controller
// ports. A Layout is immutable once built.
type Layout struct {
	Rings RingTable
	LEDs  []LED

	// GroupOf[i] is the 1-based port of ring i+1. Values are
	// non-decreasing: each port owns a contiguous run of rings.
	GroupOf []int
	// PortOffsets[p] is the number of rings owned by ports 1..p, so port p
	// owns the 0-based ring range [PortOffsets[p-1], PortOffsets[p]).
	PortOffsets []int

	// ringStart[i] is the global number of the first LED on ring i+1;
	// the final entry is totalLEDs+1.
	ringStart []int

	opts LayoutOptions
}

// NewLayout projects every LED of the ring table onto the sphere and
// partitions the rings across ports so the per-port LED load is as balanced
// as possible. The result is deterministic for identical inputs.
func NewLayout(rings RingTable, ports int, setters ...LayoutOption) (*Layout, error) {
	if ports < 1 {
		return nil, fmt.Errorf("%w: port count %d must be at least 1", ErrConfiguration, ports)
	}

	opts, err := resolveOptions(setters)
	if err != nil {
		return nil, err
	}
	proj, err := newProjector(rings.NumRings(), opts)
	if err != nil {
		return nil, err
	}

	counts := rings.Counts()
	groups, err := ringpart.Partition(counts, ports)
	if err != nil {
		return nil, fmt.Errorf("spheremap: partitioning rings: %w", err)
	}

	l := &Layout{
		Rings:     rings,
		LEDs:      make([]LED, 0, rings.TotalLEDs()),
		GroupOf:   make([]int, 0, rings.NumRings()),
		ringStart: make([]int, rings.NumRings()+1),
		opts:      opts,
	}

	num := 1
	for ring := 1; ring <= rings.NumRings(); ring++ {
		cnt := counts[ring-1]
		l.ringStart[ring-1] = num
		for pos := 0; pos < cnt; pos++ {
			coord, err := proj.Project(ring, pos, cnt)
			if err != nil {
				return nil, err
			}
			l.LEDs = append(l.LEDs, LED{Number: num, Ring: ring, Pos: pos, Coord: coord})
			num++
		}
	}
	l.ringStart[rings.NumRings()] = num

	l.PortOffsets = make([]int, 1, len(groups)+1)
	for gi, g := range groups {
		for range g {
			l.GroupOf = append(l.GroupOf, gi+1)
		}
		l.PortOffsets = append(l.PortOffsets, l.PortOffsets[gi]+len(g))
	}

	return l, nil
}

// NumRings returns the number of rings in the layout.
func (l *Layout) NumRings() int {
	return l.Rings.NumRings()
}

// NumLEDs returns the total number of LEDs in the layout.
func (l *Layout) NumLEDs() int {
	return len(l.LEDs)
}

// NumPorts returns the number of ports that received at least one ring.
// This is min(requested ports, number of rings); any port beyond it is
// unused.
func (l *Layout) NumPorts() int {
	return len(l.PortOffsets) - 1
}

// Options returns the geometric conventions the layout was built with.
func (l *Layout) Options() LayoutOptions {
	return l.opts
}
