package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groopm/groopm/transform"
)

func TestTransform_EmptyCoverage(t *testing.T) {
	tr := transform.New(1000, 15)
	_, _, err := tr.Transform(nil)
	require.ErrorIs(t, err, transform.ErrEmptyCoverage)
}

func TestTransform_DimensionTooLow(t *testing.T) {
	tr := transform.New(1000, 15)
	_, _, err := tr.Transform([][]float64{{1}})
	require.ErrorIs(t, err, transform.ErrDimensionTooLow)
}

func TestTransform_ZeroNorm(t *testing.T) {
	tr := transform.New(1000, 15)
	_, _, err := tr.Transform([][]float64{{0, 0}, {1, 2}})
	require.ErrorIs(t, err, transform.ErrZeroNorm)
}

func TestTransform_D2_WithinBounds(t *testing.T) {
	tr := transform.New(1000, 15)
	coverage := [][]float64{
		{1.0, 2.0}, {2.0, 1.0}, {5.0, 5.0}, {3.0, 7.0}, {8.0, 2.0},
	}
	positions, radii, err := tr.Transform(coverage)
	require.NoError(t, err)
	require.Len(t, positions, len(coverage))
	require.Len(t, radii, len(coverage))
	for _, p := range positions {
		require.True(t, p.InBounds(1000))
	}
}

func TestTransform_D3_PCABranch_WithinBounds(t *testing.T) {
	tr := transform.New(1000, 15)
	coverage := [][]float64{
		{1.0, 2.0, 3.0}, {2.0, 1.0, 4.0}, {5.0, 5.0, 2.0},
		{3.0, 7.0, 1.0}, {8.0, 2.0, 6.0}, {4.0, 4.0, 4.0},
	}
	positions, _, err := tr.Transform(coverage)
	require.NoError(t, err)
	require.Len(t, positions, len(coverage))
	for _, p := range positions {
		require.True(t, p.InBounds(1000))
	}
}
