// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides helpers for generating synthetic ring tables for
// tests and benchmarks.
package utils

import (
	"math"
	"math/rand"
)

// GenerateRingCounts generates a per-ring LED count profile for a sphere
// with the given number of rings. Counts follow a sinusoidal profile that
// peaks at the equator, the way physical LED spheres are wound, with a
// small seeded jitter. Every count is at least 1 and the seed parameter
// ensures reproducibility.
func GenerateRingCounts(numRings, peak int, seed int64) []int {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	counts := make([]int, numRings)

	for i := 0; i < numRings; i++ {
		colat := math.Pi * (float64(i) + 0.5) / float64(numRings)
		n := int(math.Round(float64(peak) * math.Sin(colat)))
		if peak >= 20 {
			n += random.Intn(peak/10+1) - peak/20
		}
		if n < 1 {
			n = 1
		}
		counts[i] = n
	}

	return counts
}
