package densitymap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groopm/groopm/contig"
	"github.com/groopm/groopm/densitymap"
)

func TestMap_PopulateDecrement_RestoresZero(t *testing.T) {
	scale := 50
	m := densitymap.New(scale, 1)
	positions := []contig.Position{
		{X: 10, Y: 10, Z: 5}, {X: 11, Y: 11, Z: 6}, {X: 25, Y: 25, Z: 25},
	}
	lengths := []int{1000, 2000, 500}
	tracker := contig.NewAssignmentTracker(len(positions))

	m.Populate(positions, lengths, tracker)
	for i, p := range positions {
		m.Decrement(i, p, lengths[i])
	}

	// every cell must be back to 0 after the round trip.
	for x := 0; x < scale; x++ {
		for y := 0; y < scale; y++ {
			require.Zero(t, m.RawAt(x, y))
		}
	}
}

func TestMap_Peak_FindsDenserRegion(t *testing.T) {
	scale := 100
	m := densitymap.New(scale, 1)
	var positions []contig.Position
	var lengths []int
	for i := 0; i < 20; i++ {
		positions = append(positions, contig.Position{X: 50, Y: 50, Z: 50})
		lengths = append(lengths, 5000)
	}
	positions = append(positions, contig.Position{X: 5, Y: 5, Z: 5})
	lengths = append(lengths, 100)
	tracker := contig.NewAssignmentTracker(len(positions))

	m.Populate(positions, lengths, tracker)
	m.Blur(8)
	_, x, y := m.Peak()

	require.InDelta(t, 50, x, 5)
	require.InDelta(t, 50, y, 5)
}

func TestMap_NeverNegative(t *testing.T) {
	m := densitymap.New(20, 1)
	positions := []contig.Position{{X: 0, Y: 0, Z: 0}}
	lengths := []int{1}
	tracker := contig.NewAssignmentTracker(1)
	m.Populate(positions, lengths, tracker)
	m.Decrement(0, positions[0], lengths[0])
	require.GreaterOrEqual(t, m.RawAt(0, 0), 0.0)
}

func TestMap_RowsAt_ReflectsG(t *testing.T) {
	m := densitymap.New(20, 1)
	p := contig.Position{X: 3, Y: 4, Z: 5}
	tracker := contig.NewAssignmentTracker(2)

	m.Populate([]contig.Position{p, p}, []int{10, 20}, tracker)
	require.ElementsMatch(t, []int{0, 1}, m.RowsAt(p))

	m.Decrement(0, p, 10)
	require.ElementsMatch(t, []int{1}, m.RowsAt(p))
}

func TestColumnDensify_ReturnsPointWithinColumn(t *testing.T) {
	m := densitymap.New(200, 1)
	positions := []contig.Position{
		{X: 100, Y: 100, Z: 80}, {X: 101, Y: 99, Z: 82}, {X: 99, Y: 101, Z: 78},
	}
	lengths := []int{5000, 5000, 5000}
	tracker := contig.NewAssignmentTracker(len(positions))
	m.Populate(positions, lengths, tracker)

	x, y, z := m.ColumnDensify(100, 100, 30, lengths)
	require.InDelta(t, 100, x, 45)
	require.InDelta(t, 100, y, 45)
	require.GreaterOrEqual(t, z, 0)
	require.Less(t, z, 200)
}
