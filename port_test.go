// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package spheremap

import (
	"errors"
	"math"
	"testing"
)

func mustLayout(t *testing.T) *Layout {
	t.Helper()
	rt, err := RingTableFromMap(map[int]int{1: 10, 2: 20, 3: 15, 4: 5})
	if err != nil {
		t.Fatalf("RingTableFromMap(...) error = %v, want nil", err)
	}
	l, err := NewLayout(rt, 2)
	if err != nil {
		t.Fatalf("NewLayout(..., 2) error = %v, want nil", err)
	}
	return l
}

func TestLayout_Ring(t *testing.T) {
	l := mustLayout(t)

	tests := []struct {
		idx        int
		count      int
		port       int
		start, end int
	}{
		{1, 10, 1, 1, 10},
		{2, 20, 1, 11, 30},
		{3, 15, 2, 31, 45},
		{4, 5, 2, 46, 50},
	}
	for _, tt := range tests {
		r, err := l.Ring(tt.idx)
		if err != nil {
			t.Fatalf("l.Ring(%d) error = %v, want nil", tt.idx, err)
		}
		if r.Index() != tt.idx {
			t.Errorf("l.Ring(%d).Index() = %v, want %v", tt.idx, r.Index(), tt.idx)
		}
		if r.Count() != tt.count {
			t.Errorf("l.Ring(%d).Count() = %v, want %v", tt.idx, r.Count(), tt.count)
		}
		if r.Port() != tt.port {
			t.Errorf("l.Ring(%d).Port() = %v, want %v", tt.idx, r.Port(), tt.port)
		}
		if r.Start() != tt.start || r.End() != tt.end {
			t.Errorf("l.Ring(%d) range = [%d %d], want [%d %d]",
				tt.idx, r.Start(), r.End(), tt.start, tt.end)
		}
		if got := len(r.LEDs()); got != tt.count {
			t.Errorf("l.Ring(%d) LED count = %v, want %v", tt.idx, got, tt.count)
		}
		for i, led := range r.LEDs() {
			if led.Ring != tt.idx || led.Pos != i {
				t.Fatalf("l.Ring(%d).LEDs()[%d] = ring %d pos %d, want ring %d pos %d",
					tt.idx, i, led.Ring, led.Pos, tt.idx, i)
			}
		}
	}
}

func TestLayout_Ring_OutOfRange(t *testing.T) {
	l := mustLayout(t)
	for _, idx := range []int{-1, 0, 5} {
		if _, err := l.Ring(idx); !errors.Is(err, ErrConfiguration) {
			t.Errorf("l.Ring(%d) error = %v, want ErrConfiguration", idx, err)
		}
	}
}

func TestRing_CenterOnAxis(t *testing.T) {
	l := mustLayout(t)

	// A full ring of evenly spaced LEDs averages out to a point on the
	// vertical axis.
	r, err := l.Ring(2)
	if err != nil {
		t.Fatalf("l.Ring(2) error = %v, want nil", err)
	}
	c := r.Center()
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("l.Ring(2).Center() = %v, want X and Y ≈ 0", c)
	}
}

func TestLayout_Port(t *testing.T) {
	l := mustLayout(t)

	p1, err := l.Port(1)
	if err != nil {
		t.Fatalf("l.Port(1) error = %v, want nil", err)
	}
	if p1.ID() != 1 || p1.NumRings() != 2 || p1.FirstRing() != 1 || p1.LastRing() != 2 {
		t.Errorf("port 1 = id %d rings %d [%d %d], want id 1 rings 2 [1 2]",
			p1.ID(), p1.NumRings(), p1.FirstRing(), p1.LastRing())
	}
	if len(p1.LEDs()) != 30 {
		t.Errorf("port 1 LED slice length = %v, want 30", len(p1.LEDs()))
	}

	p2, err := l.Port(2)
	if err != nil {
		t.Fatalf("l.Port(2) error = %v, want nil", err)
	}
	if p2.FirstRing() != 3 || p2.LastRing() != 4 || p2.LEDCount() != 20 {
		t.Errorf("port 2 = rings [%d %d] count %d, want rings [3 4] count 20",
			p2.FirstRing(), p2.LastRing(), p2.LEDCount())
	}

	// Port ranges together cover 1..NumLEDs without overlap.
	if p1.End()+1 != p2.Start() {
		t.Errorf("port ranges not contiguous: port 1 ends %d, port 2 starts %d",
			p1.End(), p2.Start())
	}
	if p2.End() != l.NumLEDs() {
		t.Errorf("last port ends %d, want %d", p2.End(), l.NumLEDs())
	}
}

func TestLayout_Port_OutOfRange(t *testing.T) {
	l := mustLayout(t)
	for _, id := range []int{-1, 0, 3} {
		if _, err := l.Port(id); !errors.Is(err, ErrConfiguration) {
			t.Errorf("l.Port(%d) error = %v, want ErrConfiguration", id, err)
		}
	}
}
