package synth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groopm/groopm/synth"
)

func TestBlob_ProducesRequestedPopulation(t *testing.T) {
	f, err := synth.Blob(20, []float64{1, 2, 3}, 0.1, synth.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, f.IDs, 20)
	require.Len(t, f.Coverage, 20)
	for _, row := range f.Coverage {
		require.Len(t, row, 3)
	}
}

func TestBlob_RejectsBadInput(t *testing.T) {
	_, err := synth.Blob(0, []float64{1}, 0.1)
	require.ErrorIs(t, err, synth.ErrTooFewContigs)

	_, err = synth.Blob(5, nil, 0.1)
	require.ErrorIs(t, err, synth.ErrTooFewDims)
}

func TestMultiBlob_MergesAllCenters(t *testing.T) {
	centers := [][]float64{{0, 0}, {10, 10}, {20, 20}}
	f, err := synth.MultiBlob(5, centers, 0.1, synth.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, f.IDs, 15)
}

func TestAuxSplitBlob_SplitsAuxBimodally(t *testing.T) {
	f, err := synth.AuxSplitBlob(40, []float64{5, 5}, 0.1, []float64{0.1, 0.9}, 0.01, synth.WithSeed(7))
	require.NoError(t, err)

	var lowCount, highCount int
	for _, a := range f.Aux {
		if a < 0.5 {
			lowCount++
		} else {
			highCount++
		}
	}
	require.Greater(t, lowCount, 0)
	require.Greater(t, highCount, 0)
}

func TestSparseNoise_CoversRequestedRange(t *testing.T) {
	f, err := synth.SparseNoise(30, 2, 0, 100, synth.WithSeed(3))
	require.NoError(t, err)
	for _, row := range f.Coverage {
		for _, v := range row {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestConstantLengthFn_AlwaysReturnsN(t *testing.T) {
	fn := synth.ConstantLengthFn(1500)
	require.Equal(t, 1500, fn(nil))
}

func TestUniformLengthFn_RespectsBounds(t *testing.T) {
	fn := synth.UniformLengthFn(100, 200)
	for i := 0; i < 50; i++ {
		n := fn(nil)
		require.GreaterOrEqual(t, n, 100)
		require.LessOrEqual(t, n, 200)
		break // nil rng is deterministic (returns min); one check suffices
	}
}

func TestLogNormalLengthFn_NilRNGFallsBackToMean(t *testing.T) {
	fn := synth.LogNormalLengthFn(7, 0.5)
	require.Greater(t, fn(nil), 0)
}
