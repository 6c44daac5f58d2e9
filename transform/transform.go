package transform

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/groopm/groopm/contig"
	"github.com/groopm/groopm/groopmlog"
	"github.com/groopm/groopm/matrix"
)

var log = groopmlog.New("transform")

// Transformer maps coverage vectors onto the 3D clustering lattice.
type Transformer struct {
	Scale  int     // lattice edge length S
	PhiMax float64 // logistic-ramp divisor, default 15
}

// New returns a Transformer with the given scale and phiMax.
func New(scale int, phiMax float64) *Transformer {
	return &Transformer{Scale: scale, PhiMax: phiMax}
}

// Transform converts an N×D coverage matrix (D>=2) into N lattice
// positions and their pre-rotation L2 norms (radii). Rows with a zero norm
// are a fatal precondition violation (ErrZeroNorm): the caller is expected
// to have already filtered them out upstream, per spec.
func (t *Transformer) Transform(coverage [][]float64) ([]contig.Position, []float64, error) {
	n := len(coverage)
	if n == 0 {
		return nil, nil, fmt.Errorf("transform: %w", ErrEmptyCoverage)
	}
	d := len(coverage[0])
	if d < 2 {
		return nil, nil, fmt.Errorf("transform: %w", ErrDimensionTooLow)
	}

	radii := make([]float64, n)
	for i, v := range coverage {
		radii[i] = l2Norm(v)
		if radii[i] == 0 {
			return nil, nil, fmt.Errorf("transform: row %d: %w", i, ErrZeroNorm)
		}
	}

	rX := maxOfMatrix(coverage)
	rD := medianOfMatrix(coverage)
	thetaA := math.Acos(1 / math.Sqrt(float64(d)))

	rotated := make([][]float64, n)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				rotated[i] = rotateRow(coverage[i], radii[i], rX, rD, thetaA, t.PhiMax, d)
			}
		}(lo, hi)
	}
	wg.Wait()

	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)

	if d == 2 {
		for i := range rotated {
			x[i] = rotated[i][0]
			y[i] = rotated[i][1]
			z[i] = math.Log(radii[i])
		}
	} else {
		px, py, err := projectPCA(rotated)
		if err != nil {
			return nil, nil, fmt.Errorf("transform: %w", err)
		}
		for i := range rotated {
			x[i] = px[i]
			y[i] = py[i]
			z[i] = math.Sqrt(math.Log(radii[i]))
		}
	}

	normalizeColumn(x, t.Scale)
	normalizeColumn(y, t.Scale)
	normalizeColumn(z, t.Scale)

	positions := make([]contig.Position, n)
	for i := range positions {
		positions[i] = contig.Position{
			X: clampLattice(int(math.Round(x[i])), t.Scale),
			Y: clampLattice(int(math.Round(y[i])), t.Scale),
			Z: clampLattice(int(math.Round(z[i])), t.Scale),
		}
	}

	return positions, radii, nil
}

// rotateRow computes the step-2 rotation and radial rescale for one
// coverage row, returning the D-dimensional scaled vector p_i.
func rotateRow(v []float64, r, rX, rD, thetaA, phiMax float64, d int) []float64 {
	dot := 0.0
	for _, c := range v {
		dot += c
	}
	cosTheta := dot / (r * math.Sqrt(float64(d)))
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}
	theta := math.Acos(cosTheta)

	phi := (math.Pi / phiMax) / (1 + math.Exp(-(2*math.Pi/thetaA)*theta+math.Pi))

	invSqrtD := 1 / math.Sqrt(float64(d))
	vRot := make([]float64, d)
	if theta == 0 {
		// v already lies on the diagonal; rotation is a no-op.
		for i, c := range v {
			vRot[i] = c / r
		}
	} else {
		for i, c := range v {
			vRot[i] = ((c/r)*(theta-phi) + invSqrtD*phi) / theta
		}
	}

	s := rD/2 + (rD/2)*math.Log(r)/math.Log(rX)
	vRotNorm := l2Norm(vRot)
	if vRotNorm == 0 {
		vRotNorm = 1
	}
	p := make([]float64, d)
	for i, c := range vRot {
		p[i] = s * c / vRotNorm
	}

	return p
}

// projectPCA centers the N×D rotated cloud and projects it onto its two
// leading principal components.
func projectPCA(rotated [][]float64) (x, y []float64, err error) {
	n := len(rotated)
	d := len(rotated[0])
	raw, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			if err := raw.Set(i, j, rotated[i][j]); err != nil {
				return nil, nil, err
			}
		}
	}

	centered, _, err := matrix.CenterColumns(raw)
	if err != nil {
		return nil, nil, err
	}
	cov, _, err := matrix.Covariance(raw)
	if err != nil {
		return nil, nil, err
	}
	vals, vecs, err := matrix.Eigen(cov, 1e-9, 200)
	if err != nil {
		return nil, nil, err
	}

	i0, i1 := topTwoIndices(vals)

	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		var px, py float64
		for j := 0; j < d; j++ {
			cij, _ := centered.At(i, j)
			vj0, _ := vecs.At(j, i0)
			vj1, _ := vecs.At(j, i1)
			px += cij * vj0
			py += cij * vj1
		}
		x[i] = px
		y[i] = py
	}

	return x, y, nil
}

// topTwoIndices returns the indices of the two largest values in vals.
func topTwoIndices(vals []float64) (int, int) {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return vals[idx[a]] > vals[idx[b]] })
	if len(idx) < 2 {
		return idx[0], idx[0]
	}

	return idx[0], idx[1]
}

// normalizeColumn rescales col in place into [0, scale-1]. A constant
// column (numerical saturation) substitutes a unit scale rather than
// dividing by zero, logged at Info per the error-handling design.
func normalizeColumn(col []float64, scale int) {
	lo, hi := col[0], col[0]
	for _, v := range col {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	denom := (hi - lo) / float64(scale-1)
	if denom == 0 {
		log.Info("transform: constant column encountered, substituting unit scale")
		denom = 1
	}
	for i, v := range col {
		col[i] = (v - lo) / denom
	}
}

func clampLattice(v, scale int) int {
	if v < 0 {
		return 0
	}
	if v > scale-1 {
		return scale - 1
	}

	return v
}

func l2Norm(v []float64) float64 {
	sum := 0.0
	for _, c := range v {
		sum += c * c
	}

	return math.Sqrt(sum)
}

// maxOfMatrix returns the largest entry anywhere in the N×D coverage matrix,
// i.e. R_X = max(C). It is not a per-row norm: it scans every cell of every
// row.
func maxOfMatrix(rows [][]float64) float64 {
	m := rows[0][0]
	for _, row := range rows {
		for _, c := range row {
			if c > m {
				m = c
			}
		}
	}

	return m
}

// medianOfMatrix returns the median entry over every cell of the N×D
// coverage matrix, i.e. R_D = median(C).
func medianOfMatrix(rows [][]float64) float64 {
	flat := make([]float64, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		flat = append(flat, row...)
	}
	sort.Float64s(flat)
	mid := len(flat) / 2
	if len(flat)%2 == 0 {
		return (flat[mid-1] + flat[mid]) / 2
	}

	return flat[mid]
}
