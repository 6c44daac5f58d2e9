package partition_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groopm/groopm/partition"
)

func stdev(vals []float64) float64 {
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	variance := 0.0
	for _, v := range vals {
		variance += (v - mean) * (v - mean)
	}

	return math.Sqrt(variance / float64(len(vals)))
}

func TestExpand_RespectsSpreadAndStdev(t *testing.T) {
	vals := []float64{0.1, 0.2, 0.5, 0.52, 0.53, 0.9}
	window := partition.Expand(3, vals, 0.04, 0.15)
	require.NotEmpty(t, window)

	var sub []float64
	for _, i := range window {
		sub = append(sub, vals[i])
	}
	require.LessOrEqual(t, stdev(sub), 0.04+1e-9)
}

func TestPartition_CoversAllInputs(t *testing.T) {
	vals := []float64{0.1, 0.11, 0.12, 0.6, 0.61, 0.62, 0.9}
	parts := partition.Partition(vals, 0.04, 0.15)

	seen := map[int]bool{}
	for _, p := range parts {
		for _, i := range p {
			require.False(t, seen[i], "index %d emitted twice", i)
			seen[i] = true
		}
	}
	require.Len(t, seen, len(vals))
}

func TestPartition_Idempotent(t *testing.T) {
	vals := []float64{0.1, 0.11, 0.12, 0.6, 0.61, 0.62, 0.9}
	first := partition.Partition(vals, 0.04, 0.15)
	second := partition.Partition(vals, 0.04, 0.15)
	require.Equal(t, first, second)
}

func TestCompose_IntersectsBothAxes(t *testing.T) {
	rowIndices := []int{10, 11, 12, 13, 14, 15}
	kVals := []float64{0.1, 0.11, 0.12, 0.8, 0.81, 0.82}
	covZ := []float64{0.2, 0.9, 0.21, 0.3, 0.31, 0.9}

	groups := partition.Compose(rowIndices, kVals, covZ, partition.Config{
		StdevCut: 0.04, Spread: 0.15, Bounce: 0.1,
	})

	seen := map[int]bool{}
	for _, g := range groups {
		for _, idx := range g {
			seen[idx] = true
		}
	}
	for _, idx := range rowIndices {
		require.True(t, seen[idx])
	}
}
