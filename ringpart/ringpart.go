// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package ringpart partitions an ordered sequence of LED ring counts into
// contiguous groups with a balanced per-group sum. Each group maps to one
// controller output port, so minimizing the largest group sum equalizes the
// data and current load across ports.
package ringpart

import (
	"errors"
	"fmt"
)

// ErrInfeasible reports input no partition can be built from, such as an
// empty sequence or a non-positive count.
var ErrInfeasible = errors.New("ringpart: infeasible input")

// Partition splits counts into contiguous groups such that concatenating
// the groups in order reproduces counts and the maximum group sum is the
// minimum achievable. It returns min(k, len(counts)) non-empty groups;
// trailing empty groups are never emitted. The returned groups are views
// into counts.
//
// The optimum is found by binary search over candidate maximum sums with a
// greedy feasibility check, so the result is deterministic and runs in
// O(n log(sum(counts))).
func Partition(counts []int, k int) ([][]int, error) {
	if err := validate(counts); err != nil {
		return nil, err
	}

	n := len(counts)
	if k <= 1 {
		return [][]int{counts}, nil
	}
	if k >= n {
		groups := make([][]int, n)
		for i := range counts {
			groups[i] = counts[i : i+1 : i+1]
		}
		return groups, nil
	}

	return split(counts, k, optimalMaxSum(counts, k)), nil
}

// Assign maps each element of counts to its 1-based group id for a
// partition into at most k groups. Ids are non-decreasing and cover exactly
// 1..min(k, len(counts)).
func Assign(counts []int, k int) ([]int, error) {
	groups, err := Partition(counts, k)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(counts))
	for gi, g := range groups {
		for range g {
			ids = append(ids, gi+1)
		}
	}
	return ids, nil
}

// GroupSums returns the sum of every group.
func GroupSums(groups [][]int) []int {
	sums := make([]int, len(groups))
	for i, g := range groups {
		for _, c := range g {
			sums[i] += c
		}
	}
	return sums
}

func validate(counts []int) error {
	if len(counts) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrInfeasible)
	}
	for i, c := range counts {
		if c <= 0 {
			return fmt.Errorf("%w: count %d at index %d must be positive", ErrInfeasible, c, i)
		}
	}
	return nil
}

// minGroups is the number of groups a greedy left-to-right pass needs to
// keep every group sum at or below maxSum.
func minGroups(counts []int, maxSum int) int {
	groups, sum := 1, 0
	for _, c := range counts {
		if sum+c > maxSum {
			groups++
			sum = c
		} else {
			sum += c
		}
	}
	return groups
}

// optimalMaxSum finds the smallest bound on the group sum that still allows
// a split of counts into at most k contiguous groups.
func optimalMaxSum(counts []int, k int) int {
	lo, hi := 0, 0
	for _, c := range counts {
		if c > lo {
			lo = c
		}
		hi += c
	}

	for lo < hi {
		mid := lo + (hi-lo)/2
		if minGroups(counts, mid) <= k {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// split cuts counts into exactly k groups without exceeding maxSum. A group
// is closed early when every remaining element is needed to keep the
// remaining groups non-empty.
func split(counts []int, k, maxSum int) [][]int {
	n := len(counts)
	groups := make([][]int, 0, k)

	i := 0
	for g := 1; g <= k; g++ {
		start := i
		sum := counts[i]
		i++
		for i < n && n-i > k-g && sum+counts[i] <= maxSum {
			sum += counts[i]
			i++
		}
		groups = append(groups, counts[start:i:i])
	}

	return groups
}
