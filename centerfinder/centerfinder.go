package centerfinder

import (
	"math"
	"sort"
)

// Find returns the original (pre-sort) index of vals achieving the densest
// 1D region, using the "balloon bounce" algorithm: vals are sorted and
// normalized to [0,1], then swept left-to-right and right-to-left with a
// decaying ball height that resets by bounce at every step and decays
// faster across larger gaps; the index with the highest combined height
// from both sweeps wins.
//
// Find is stable to monotone affine rescaling of vals (the normalization
// step cancels it). It returns -1 for an empty vals and 0 for a single
// value.
func Find(vals []float64, bounce float64) int {
	n := len(vals)
	if n == 0 {
		return -1
	}
	if n == 1 {
		return 0
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	lo, hi := vals[order[0]], vals[order[n-1]]
	normalized := make([]float64, n)
	if hi > lo {
		for rank, i := range order {
			normalized[rank] = (vals[i] - lo) / (hi - lo)
		}
	}

	forward := sweep(normalized, bounce)

	reversed := make([]float64, n)
	for i, v := range normalized {
		reversed[n-1-i] = v
	}
	backward := sweep(reversed, bounce)

	bestRank, bestHeight := 0, -math.MaxFloat64
	for rank := 0; rank < n; rank++ {
		combined := forward[rank] + backward[n-1-rank]
		if combined > bestHeight {
			bestHeight, bestRank = combined, rank
		}
	}

	return order[bestRank]
}

// sweep runs one pass of the balloon-bounce height update over vals (which
// must already be sorted in the sweep's traversal order) and records the
// height achieved at each position.
func sweep(vals []float64, bounce float64) []float64 {
	heights := make([]float64, len(vals))
	h := 0.0
	prev := 0.0
	for i, v := range vals {
		delta := math.Abs(v - prev)
		h = h * (1 - math.Min(1, math.Sqrt(delta/bounce)))
		h += bounce
		heights[i] = h
		prev = v
	}

	return heights
}
