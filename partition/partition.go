package partition

import (
	"math"
	"sort"

	"github.com/groopm/groopm/centerfinder"
)

// Expand greedily grows a window around start (an index into vals) by
// admitting whichever neighbouring value (in sorted order) is closer to
// vals[start], so long as it stays within spread of vals[start] and keeps
// the accepted set's stdev under stdevCut. Returns the original indices
// (into vals) of the final window.
func Expand(start int, vals []float64, stdevCut, spread float64) []int {
	n := len(vals)
	if n == 0 {
		return nil
	}
	if start < 0 || start >= n {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	rank := 0
	for r, idx := range order {
		if idx == start {
			rank = r
			break
		}
	}

	vStart := vals[start]
	loRank, hiRank := rank, rank
	accepted := []float64{vStart}

	for {
		canLeft := loRank > 0
		canRight := hiRank < n-1

		var leftVal, rightVal float64
		leftOK, rightOK := false, false
		if canLeft {
			leftVal = vals[order[loRank-1]]
			leftOK = math.Abs(leftVal-vStart) < spread && stdevWith(accepted, leftVal) < stdevCut
		}
		if canRight {
			rightVal = vals[order[hiRank+1]]
			rightOK = math.Abs(rightVal-vStart) < spread && stdevWith(accepted, rightVal) < stdevCut
		}

		switch {
		case !leftOK && !rightOK:
			result := make([]int, 0, hiRank-loRank+1)
			for r := loRank; r <= hiRank; r++ {
				result = append(result, order[r])
			}

			return result
		case leftOK && (!rightOK || math.Abs(leftVal-vStart) <= math.Abs(rightVal-vStart)):
			loRank--
			accepted = append(accepted, leftVal)
		default:
			hiRank++
			accepted = append(accepted, rightVal)
		}
	}
}

// Partition repeatedly locates the densest remaining region (CenterFinder,
// DefaultBounce) and Expands around it, removing each emitted window from
// the remaining pool, until fewer than 3 values remain — the tail is
// emitted as one final partition.
func Partition(vals []float64, stdevCut, spread float64) [][]int {
	return partitionBounce(vals, stdevCut, spread, DefaultBounce)
}

func partitionBounce(vals []float64, stdevCut, spread, bounce float64) [][]int {
	activeIdx := make([]int, len(vals))
	activeVals := make([]float64, len(vals))
	for i, v := range vals {
		activeIdx[i] = i
		activeVals[i] = v
	}

	var partitions [][]int
	for len(activeIdx) >= 3 {
		centerLocal := centerfinder.Find(activeVals, bounce)
		windowLocal := Expand(centerLocal, activeVals, stdevCut, spread)
		if len(windowLocal) == 0 {
			break
		}

		partition := make([]int, len(windowLocal))
		for k, li := range windowLocal {
			partition[k] = activeIdx[li]
		}
		partitions = append(partitions, partition)

		remove := make(map[int]bool, len(windowLocal))
		for _, li := range windowLocal {
			remove[li] = true
		}
		nextIdx := activeIdx[:0]
		nextVals := activeVals[:0]
		for li, orig := range activeIdx {
			if !remove[li] {
				nextIdx = append(nextIdx, orig)
				nextVals = append(nextVals, activeVals[li])
			}
		}
		activeIdx, activeVals = append([]int(nil), nextIdx...), append([]float64(nil), nextVals...)
	}

	if len(activeIdx) > 0 {
		partitions = append(partitions, append([]int(nil), activeIdx...))
	}

	return partitions
}

func stdevWith(accepted []float64, candidate float64) float64 {
	all := make([]float64, len(accepted)+1)
	copy(all, accepted)
	all[len(accepted)] = candidate

	mean := 0.0
	for _, v := range all {
		mean += v
	}
	mean /= float64(len(all))

	variance := 0.0
	for _, v := range all {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(all))

	return math.Sqrt(variance)
}
