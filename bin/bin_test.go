package bin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groopm/groopm/bin"
	"github.com/groopm/groopm/contig"
	"github.com/groopm/groopm/densitymap"
)

func TestBin_MakeDist_BoxLoLessEqualHi(t *testing.T) {
	pos := []contig.Position{{X: 10, Y: 10, Z: 10}, {X: 12, Y: 8, Z: 11}, {X: 11, Y: 9, Z: 9}}
	aux := []float64{0.5, 0.52, 0.48}
	b := bin.New(1, []int{0, 1, 2})

	require.NoError(t, b.MakeDist(pos, aux, 3, 3))
	for c := 0; c < 4; c++ {
		lo, hi := b.Box(c)
		require.LessOrEqual(t, lo, hi)
	}
}

func TestBin_MakeDist_EmptyMembership(t *testing.T) {
	b := bin.New(1, nil)
	err := b.MakeDist(nil, nil, 3, 3)
	require.ErrorIs(t, err, bin.ErrEmptyMembership)
}

func TestBin_Grow_AdmitsNearbyUnassigned(t *testing.T) {
	scale := 100
	g := densitymap.New(scale, 1)
	pos := []contig.Position{
		{X: 50, Y: 50, Z: 50}, {X: 51, Y: 50, Z: 50}, {X: 50, Y: 51, Z: 50},
		{X: 49, Y: 50, Z: 51}, {X: 90, Y: 90, Z: 90},
	}
	lengths := []int{1000, 1000, 1000, 1000, 1000}
	aux := []float64{0.5, 0.51, 0.49, 0.5, 0.9}
	tracker := contig.NewAssignmentTracker(len(pos))
	g.Populate(pos, lengths, tracker)

	b := bin.New(1, []int{0, 1, 2})
	admitted := b.Grow(pos, aux, g, tracker, bin.Tolerances{Primary: 3, Aux: 3, Decay: 0.8})

	require.Greater(t, admitted, 0)
	require.Contains(t, b.Members(), 1)
	require.Contains(t, b.Members(), 2)
	require.Contains(t, b.Members(), 3)
	require.NotContains(t, b.Members(), 4)
}
