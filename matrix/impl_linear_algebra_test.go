package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groopm/groopm/matrix"
)

func denseFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

func TestMul_ComputesProduct(t *testing.T) {
	a := denseFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := denseFromRows(t, [][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	v, _ := c.At(0, 0)
	require.Equal(t, 19.0, v)
	v, _ = c.At(1, 1)
	require.Equal(t, 50.0, v)
}

func TestMul_RejectsDimensionMismatch(t *testing.T) {
	a := denseFromRows(t, [][]float64{{1, 2, 3}})
	b := denseFromRows(t, [][]float64{{1, 2}})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose_SwapsRowsAndCols(t *testing.T) {
	a := denseFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())

	v, _ := at.At(2, 1)
	require.Equal(t, 6.0, v)
}

func TestScale_MultipliesEveryElement(t *testing.T) {
	a := denseFromRows(t, [][]float64{{1, 2}, {3, 4}})

	s, err := matrix.Scale(a, 2.0)
	require.NoError(t, err)

	v, _ := s.At(1, 0)
	require.Equal(t, 6.0, v)
}

func TestEigen_DiagonalMatrixReturnsOwnEntries(t *testing.T) {
	a := denseFromRows(t, [][]float64{{3, 0}, {0, 7}})

	vals, vecs, err := matrix.Eigen(a, 1e-9, 100)
	require.NoError(t, err)
	require.ElementsMatch(t, []float64{3, 7}, vals)
	require.Equal(t, 2, vecs.Rows())
}

func TestEigen_SymmetricTwoByTwo_ReconstructsOriginal(t *testing.T) {
	a := denseFromRows(t, [][]float64{{2, 1}, {1, 2}})

	vals, vecs, err := matrix.Eigen(a, 1e-9, 200)
	require.NoError(t, err)

	// A*Q == Q*diag(vals) for a correct eigendecomposition.
	aq, err := matrix.Mul(a, vecs)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			left, _ := aq.At(i, j)
			qij, _ := vecs.At(i, j)
			right := qij * vals[j]
			require.InDelta(t, right, left, 1e-6)
		}
	}
}

func TestEigen_RejectsAsymmetricInput(t *testing.T) {
	a := denseFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, _, err := matrix.Eigen(a, 1e-9, 100)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestEigen_RejectsNonSquareInput(t *testing.T) {
	a := denseFromRows(t, [][]float64{{1, 2, 3}})

	_, _, err := matrix.Eigen(a, 1e-9, 100)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigen_WithinTolerance(t *testing.T) {
	a := denseFromRows(t, [][]float64{{4, 1}, {1, 4}})

	vals, _, err := matrix.Eigen(a, 1e-12, 500)
	require.NoError(t, err)

	sum := vals[0] + vals[1]
	require.True(t, math.Abs(sum-8) < 1e-6)
}
