// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package spheremap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/2dChan/spheremap/utils"
	"github.com/google/go-cmp/cmp"
)

// Per-ring LED counts of a production 49-ring sphere wound for a 16-port
// controller. Used as a realistic fixture throughout the tests.
var atlasRingCounts = []int{
	33, 55, 70, 82, 92, 100, 108, 114, 120, 126, 139, 134, 137, 141, 144,
	147, 149, 152, 155, 155, 156, 158, 159, 159, 159, 159, 158, 157, 156,
	155, 154, 152, 148, 148, 144, 141, 138, 134, 130, 125, 120, 114, 108,
	100, 92, 82, 71, 56, 33,
}

// RingTable

func TestNewRingTable(t *testing.T) {
	tests := []struct {
		name    string
		counts  []int
		wantErr bool
	}{
		{"valid", []int{10, 20, 15, 5}, false},
		{"empty", nil, true},
		{"zero count", []int{10, 0, 15}, true},
		{"negative count", []int{10, -2, 15}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := NewRingTable(tt.counts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRingTable(%v) error = %v, wantErr %v", tt.counts, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("NewRingTable(%v) error = %v, want ErrConfiguration", tt.counts, err)
				}
				return
			}
			if diff := cmp.Diff(tt.counts, rt.Counts()); diff != "" {
				t.Errorf("rt.Counts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewRingTable_Immutable(t *testing.T) {
	counts := []int{10, 20, 15}
	rt, err := NewRingTable(counts)
	if err != nil {
		t.Fatalf("NewRingTable(%v) error = %v, want nil", counts, err)
	}

	counts[0] = 999
	rt.Counts()[1] = 999

	got, err := rt.Count(1)
	if err != nil {
		t.Fatalf("rt.Count(1) error = %v, want nil", err)
	}
	if got != 10 {
		t.Errorf("rt.Count(1) = %v after caller mutation, want 10", got)
	}
}

func TestRingTableFromMap(t *testing.T) {
	tests := []struct {
		name    string
		m       map[int]int
		want    []int
		wantErr bool
	}{
		{"valid", map[int]int{1: 10, 2: 20, 3: 15, 4: 5}, []int{10, 20, 15, 5}, false},
		{"empty", nil, nil, true},
		{"gapped indices", map[int]int{1: 10, 3: 15}, nil, true},
		{"zero index", map[int]int{0: 10, 1: 20}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := RingTableFromMap(tt.m)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RingTableFromMap(%v) error = %v, wantErr %v", tt.m, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("RingTableFromMap(%v) error = %v, want ErrConfiguration", tt.m, err)
				}
				return
			}
			if diff := cmp.Diff(tt.want, rt.Counts()); diff != "" {
				t.Errorf("rt.Counts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRingTable_Totals(t *testing.T) {
	rt, err := NewRingTable(atlasRingCounts)
	if err != nil {
		t.Fatalf("NewRingTable(...) error = %v, want nil", err)
	}

	if got := rt.NumRings(); got != 49 {
		t.Errorf("rt.NumRings() = %v, want 49", got)
	}
	if got := rt.TotalLEDs(); got != 6119 {
		t.Errorf("rt.TotalLEDs() = %v, want 6119", got)
	}
	if got := rt.MaxCount(); got != 159 {
		t.Errorf("rt.MaxCount() = %v, want 159", got)
	}
}

// Layout

func TestNewLayout_Coverage(t *testing.T) {
	tests := []struct {
		name  string
		rings int
		peak  int
		ports int
	}{
		{"small", 5, 12, 2},
		{"medium", 24, 90, 8},
		{"large", 49, 160, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := utils.GenerateRingCounts(tt.rings, tt.peak, 0)
			rt, err := NewRingTable(counts)
			if err != nil {
				t.Fatalf("NewRingTable(...) error = %v, want nil", err)
			}

			l, err := NewLayout(rt, tt.ports)
			if err != nil {
				t.Fatalf("NewLayout(...) error = %v, want nil", err)
			}

			if l.NumLEDs() != rt.TotalLEDs() {
				t.Errorf("l.NumLEDs() = %v, want %v", l.NumLEDs(), rt.TotalLEDs())
			}

			// LED numbers must be the contiguous set 1..total in
			// ring-major, position-minor order.
			wantRing, wantPos := 1, 0
			for i, led := range l.LEDs {
				if led.Number != i+1 {
					t.Fatalf("l.LEDs[%d].Number = %v, want %v", i, led.Number, i+1)
				}
				if led.Ring != wantRing || led.Pos != wantPos {
					t.Fatalf("l.LEDs[%d] at ring %d pos %d, want ring %d pos %d",
						i, led.Ring, led.Pos, wantRing, wantPos)
				}
				wantPos++
				if wantPos == counts[wantRing-1] {
					wantRing++
					wantPos = 0
				}
			}
		})
	}
}

func TestNewLayout_KnownScenario(t *testing.T) {
	rt, err := RingTableFromMap(map[int]int{1: 10, 2: 20, 3: 15, 4: 5})
	if err != nil {
		t.Fatalf("RingTableFromMap(...) error = %v, want nil", err)
	}

	l, err := NewLayout(rt, 2)
	if err != nil {
		t.Fatalf("NewLayout(..., 2) error = %v, want nil", err)
	}

	if diff := cmp.Diff([]int{1, 1, 2, 2}, l.GroupOf); diff != "" {
		t.Errorf("l.GroupOf mismatch (-want +got):\n%s", diff)
	}

	p1, err := l.Port(1)
	if err != nil {
		t.Fatalf("l.Port(1) error = %v, want nil", err)
	}
	if p1.Start() != 1 || p1.End() != 30 || p1.LEDCount() != 30 {
		t.Errorf("port 1 range = [%d %d] count %d, want [1 30] count 30",
			p1.Start(), p1.End(), p1.LEDCount())
	}

	p2, err := l.Port(2)
	if err != nil {
		t.Fatalf("l.Port(2) error = %v, want nil", err)
	}
	if p2.Start() != 31 || p2.End() != 50 || p2.LEDCount() != 20 {
		t.Errorf("port 2 range = [%d %d] count %d, want [31 50] count 20",
			p2.Start(), p2.End(), p2.LEDCount())
	}
}

func TestNewLayout_ScaleScenario(t *testing.T) {
	rt, err := NewRingTable(atlasRingCounts)
	if err != nil {
		t.Fatalf("NewRingTable(...) error = %v, want nil", err)
	}

	l, err := NewLayout(rt, 16)
	if err != nil {
		t.Fatalf("NewLayout(..., 16) error = %v, want nil", err)
	}

	if l.NumPorts() != 16 {
		t.Fatalf("l.NumPorts() = %v, want 16", l.NumPorts())
	}

	minLoad, maxLoad := -1, 0
	for id := 1; id <= l.NumPorts(); id++ {
		p, err := l.Port(id)
		if err != nil {
			t.Fatalf("l.Port(%d) error = %v, want nil", id, err)
		}
		if p.NumRings() == 0 {
			t.Errorf("port %d owns no rings, want every port non-empty", id)
		}
		load := p.LEDCount()
		if minLoad < 0 || load < minLoad {
			minLoad = load
		}
		if load > maxLoad {
			maxLoad = load
		}
	}

	// Any optimal contiguous balanced partition keeps the load spread
	// within the largest single ring.
	if spread := maxLoad - minLoad; spread > rt.MaxCount() {
		t.Errorf("port load spread = %v, want <= largest ring %v", spread, rt.MaxCount())
	}
}

func TestNewLayout_MonotoneAssignment(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		counts := utils.GenerateRingCounts(30, 140, seed)
		rt, err := NewRingTable(counts)
		if err != nil {
			t.Fatalf("seed %d: NewRingTable(...) error = %v, want nil", seed, err)
		}

		l, err := NewLayout(rt, 7)
		if err != nil {
			t.Fatalf("seed %d: NewLayout(...) error = %v, want nil", seed, err)
		}

		used := make(map[int]bool)
		for i, id := range l.GroupOf {
			if i > 0 && id < l.GroupOf[i-1] {
				t.Errorf("seed %d: group id decreases at ring %d: %d -> %d",
					seed, i+1, l.GroupOf[i-1], id)
			}
			used[id] = true
		}
		for id := 1; id <= l.NumPorts(); id++ {
			if !used[id] {
				t.Errorf("seed %d: port %d unused, want ports 1..%d all used", seed, id, l.NumPorts())
			}
		}
	}
}

func TestNewLayout_Determinism(t *testing.T) {
	rt, err := NewRingTable(atlasRingCounts)
	if err != nil {
		t.Fatalf("NewRingTable(...) error = %v, want nil", err)
	}

	a, err := NewLayout(rt, 16)
	if err != nil {
		t.Fatalf("NewLayout(...) error = %v, want nil", err)
	}
	b, err := NewLayout(rt, 16)
	if err != nil {
		t.Fatalf("NewLayout(...) error = %v, want nil", err)
	}

	if diff := cmp.Diff(a.LEDs, b.LEDs); diff != "" {
		t.Errorf("LEDs differ between identical runs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a.GroupOf, b.GroupOf); diff != "" {
		t.Errorf("GroupOf differs between identical runs (-want +got):\n%s", diff)
	}
}

func TestNewLayout_Errors(t *testing.T) {
	rt, err := NewRingTable([]int{10, 20})
	if err != nil {
		t.Fatalf("NewRingTable(...) error = %v, want nil", err)
	}
	single, err := NewRingTable([]int{10})
	if err != nil {
		t.Fatalf("NewRingTable(...) error = %v, want nil", err)
	}

	tests := []struct {
		name    string
		rings   RingTable
		ports   int
		setters []LayoutOption
	}{
		{"zero ports", rt, 0, nil},
		{"negative ports", rt, -1, nil},
		{"single ring", single, 2, nil},
		{"bad radius", rt, 2, []LayoutOption{WithRadius(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLayout(tt.rings, tt.ports, tt.setters...); !errors.Is(err, ErrConfiguration) {
				t.Errorf("NewLayout(...) error = %v, want ErrConfiguration", err)
			}
		})
	}
}

// Benchmarks

func BenchmarkNewLayout(b *testing.B) {
	sizes := []int{16, 49, 200}
	for _, n := range sizes {
		counts := utils.GenerateRingCounts(n, 160, 0)
		rt, err := NewRingTable(counts)
		if err != nil {
			b.Fatalf("NewRingTable(...) error = %v, want nil", err)
		}

		b.Run(fmt.Sprintf("N%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := NewLayout(rt, 16); err != nil {
					b.Fatalf("NewLayout(...) error = %v, want nil", err)
				}
			}
		})
	}
}
