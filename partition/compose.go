package partition

import "sync"

// Compose implements the two-axis composition: rowIndices partitioned once
// on kVals (k-mer signature axis), then each resulting group independently
// partitioned on covZVals (normalized coverage-z axis); the Cartesian
// intersection of the two levels is returned. kVals and covZVals must be
// parallel to rowIndices.
//
// The k-axis partition runs first; the per-group coverage-z partition calls
// that follow share no mutable state (each works on a disjoint k-group) and
// are dispatched concurrently behind a sync.WaitGroup.
func Compose(rowIndices []int, kVals, covZVals []float64, cfg Config) [][]int {
	bounce := cfg.Bounce
	if bounce == 0 {
		bounce = DefaultBounce
	}

	kGroups := partitionBounce(kVals, cfg.StdevCut, cfg.Spread, bounce)

	results := make([][][]int, len(kGroups))
	var wg sync.WaitGroup
	for gi, grp := range kGroups {
		wg.Add(1)
		go func(gi int, grp []int) {
			defer wg.Done()
			if len(grp) == 0 {
				return
			}
			subCovZ := make([]float64, len(grp))
			for i, li := range grp {
				subCovZ[i] = covZVals[li]
			}
			subPartitions := partitionBounce(subCovZ, cfg.StdevCut, cfg.Spread, bounce)

			final := make([][]int, len(subPartitions))
			for pi, sp := range subPartitions {
				group := make([]int, len(sp))
				for i, li := range sp {
					group[i] = rowIndices[grp[li]]
				}
				final[pi] = group
			}
			results[gi] = final
		}(gi, grp)
	}
	wg.Wait()

	var out [][]int
	for _, r := range results {
		out = append(out, r...)
	}

	return out
}
