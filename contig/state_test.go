package contig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groopm/groopm/contig"
)

func TestAssignmentTracker_MonotoneTransitions(t *testing.T) {
	tr := contig.NewAssignmentTracker(5)
	require.True(t, tr.IsUnassigned(0))

	require.NoError(t, tr.Bin(0))
	require.False(t, tr.IsUnassigned(0))
	require.Equal(t, contig.Binned, tr.State(0))

	require.NoError(t, tr.Restrict(1))
	require.Equal(t, contig.Restricted, tr.State(1))

	// re-entering unassigned / double-transition is rejected.
	require.ErrorIs(t, tr.Bin(0), contig.ErrInvalidTransition)
	require.ErrorIs(t, tr.Restrict(0), contig.ErrInvalidTransition)
}

func TestAssignmentTracker_OutOfRange(t *testing.T) {
	tr := contig.NewAssignmentTracker(2)
	require.ErrorIs(t, tr.Bin(5), contig.ErrIndexOutOfRange)
}

func TestAssignmentTracker_CountsSumToN(t *testing.T) {
	tr := contig.NewAssignmentTracker(10)
	require.NoError(t, tr.Bin(0))
	require.NoError(t, tr.Bin(1))
	require.NoError(t, tr.Restrict(2))

	unassigned, binned, restricted := tr.Counts()
	require.Equal(t, 7, unassigned)
	require.Equal(t, 2, binned)
	require.Equal(t, 1, restricted)
	require.Equal(t, tr.N(), unassigned+binned+restricted)
}
