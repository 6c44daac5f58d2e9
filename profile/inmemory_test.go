package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groopm/groopm/profile"
)

func TestInMemoryStore_LoadFiltersByLengthCutoff(t *testing.T) {
	store, err := profile.NewInMemoryStore(
		[]string{"a", "b", "c"},
		[][]float64{{1, 2}, {2, 3}, {3, 4}},
		[]float64{0.1, 0.5, 0.9},
		[]int{100, 2000, 5000},
		1000,
	)
	require.NoError(t, err)

	p, err := store.Load(context.Background(), 1000)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, p.ContigIDs)
	require.Equal(t, 1000, p.ScaleFactor)
}

func TestInMemoryStore_RejectsMismatchedLengths(t *testing.T) {
	_, err := profile.NewInMemoryStore([]string{"a"}, nil, nil, nil, 1000)
	require.ErrorIs(t, err, profile.ErrRowCountMismatch)
}

func TestInMemoryStore_RejectsDimensionOne(t *testing.T) {
	_, err := profile.NewInMemoryStore(
		[]string{"a"}, [][]float64{{1}}, []float64{0.5}, []int{100}, 1000,
	)
	require.ErrorIs(t, err, profile.ErrDimensionTooLow)
}

func TestInMemoryStore_WriteAndMarkClustered(t *testing.T) {
	store, err := profile.NewInMemoryStore(
		[]string{"a", "b"}, [][]float64{{1, 2}, {2, 3}}, []float64{0.1, 0.2}, []int{100, 200}, 1000,
	)
	require.NoError(t, err)

	ctx := context.Background()
	clustered, err := store.IsClustered(ctx)
	require.NoError(t, err)
	require.False(t, clustered)

	require.NoError(t, store.WriteBinIDs(ctx, map[int]int{0: 1}))
	require.NoError(t, store.MarkClustered(ctx))

	clustered, err = store.IsClustered(ctx)
	require.NoError(t, err)
	require.True(t, clustered)
	require.Equal(t, map[int]int{0: 1}, store.BinIDs())
}
