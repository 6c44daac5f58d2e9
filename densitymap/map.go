package densitymap

import (
	"math"

	"github.com/groopm/groopm/contig"
	"github.com/groopm/groopm/groopmlog"
)

var log = groopmlog.New("densitymap")

// lattice3 is the structural key of the reverse index G: (x,y,z) -> row
// indices. A plain struct key lets G be a regular Go map (the "hash map
// with a structural key" design note), no custom hashing required.
type lattice3 struct{ X, Y, Z int }

// Map holds NumViews 2D density projections (top/front/side when
// NumViews==3, top-only when 1), their Gaussian-blurred mirrors, and the
// reverse index G from lattice position to currently-unassigned row
// indices.
type Map struct {
	scale    int
	numViews int
	views    [][]float64 // numViews flattened scale x scale arrays
	blurred  [][]float64
	g        map[lattice3][]int
}

// New returns an empty Map for the given lattice scale and view count
// (1 or 3; any other value falls back to 1 and is logged).
func New(scale, numViews int) *Map {
	if scale < 1 {
		scale = 1
	}
	if numViews != 1 && numViews != 3 {
		log.Warningf("densitymap: invalid numViews=%d, defaulting to 1", numViews)
		numViews = 1
	}
	views := make([][]float64, numViews)
	blurred := make([][]float64, numViews)
	for v := 0; v < numViews; v++ {
		views[v] = make([]float64, scale*scale)
		blurred[v] = make([]float64, scale*scale)
	}

	return &Map{
		scale:    scale,
		numViews: numViews,
		views:    views,
		blurred:  blurred,
		g:        make(map[lattice3][]int),
	}
}

// Scale returns the lattice edge length.
func (m *Map) Scale() int { return m.scale }

// NumViews returns the configured view count (1 or 3).
func (m *Map) NumViews() int { return m.numViews }

// Populate stamps every currently-unassigned contig into the configured
// views and registers it in the reverse index G.
func (m *Map) Populate(positions []contig.Position, lengths []int, state *contig.AssignmentTracker) {
	for i, p := range positions {
		if !state.IsUnassigned(i) {
			continue
		}
		m.stamp(i, p, lengths[i], 1)
	}
}

// stamp applies (sign * weight) of the 3x3 density kernel for row i at
// position p across every configured view, and updates G accordingly:
// sign=+1 registers i in G and adds density; sign=-1 removes i from G and
// subtracts density (Decrement).
func (m *Map) stamp(i int, p contig.Position, length int, sign float64) {
	weight := sign * math.Log10(float64(length))

	m.applyKernel(m.views[0], p.X, p.Y, weight)
	if m.numViews == 3 {
		m.applyKernel(m.views[1], m.scale-1-p.Z, p.Y, weight)
		m.applyKernel(m.views[2], m.scale-1-p.Z, m.scale-1-p.X, weight)
	}

	key := lattice3{p.X, p.Y, p.Z}
	if sign > 0 {
		m.g[key] = append(m.g[key], i)
	} else {
		m.removeFromG(key, i)
	}
}

func (m *Map) removeFromG(key lattice3, i int) {
	rows := m.g[key]
	for idx, r := range rows {
		if r == i {
			rows = append(rows[:idx], rows[idx+1:]...)
			break
		}
	}
	if len(rows) == 0 {
		delete(m.g, key)
	} else {
		m.g[key] = rows
	}
}

// kernelCenter, kernelEdge, kernelCorner are the 3x3 populate/decrement
// stamp weights, by Chebyshev distance from the stamped cell.
const (
	kernelCenter = 1.0
	kernelEdge   = 0.6
	kernelCorner = 0.2
)

// applyKernel adds weight*k to the 3x3 neighbourhood of (x,y) in view,
// where k is kernelCenter/kernelEdge/kernelCorner by Chebyshev distance.
// Neighbours outside [0,scale) are silently skipped.
func (m *Map) applyKernel(view []float64, x, y int, weight float64) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= m.scale || ny < 0 || ny >= m.scale {
				continue
			}
			var k float64
			switch {
			case dx == 0 && dy == 0:
				k = kernelCenter
			case dx == 0 || dy == 0:
				k = kernelEdge
			default:
				k = kernelCorner
			}
			idx := nx*m.scale + ny
			view[idx] += weight * k
			if view[idx] < epsFloat && view[idx] > -epsFloat {
				view[idx] = 0 // clamp at zero
			}
			if view[idx] < 0 {
				view[idx] = 0 // clamp at zero
			}
		}
	}
}

// epsFloat is the tolerance below which a density cell snaps to exactly 0.
const epsFloat = 1e-9

// Decrement reverses the stamp applied for row i at position p and removes
// i from G, keeping every cell non-negative and G's membership in sync
// with the unassigned set.
func (m *Map) Decrement(i int, p contig.Position, length int) {
	m.stamp(i, p, length, -1)
}

// Blur Gaussian-smooths every view into its blurred mirror with the given
// sigma (lattice cells).
func (m *Map) Blur(sigma float64) {
	for v := 0; v < m.numViews; v++ {
		m.blurred[v] = gaussianBlur2D(m.views[v], m.scale, sigma)
	}
}

// Peak returns the global argmax (value, x, y) of the blurred view 0.
func (m *Map) Peak() (value float64, x, y int) {
	best := -math.MaxFloat64
	bestX, bestY := 0, 0
	blurred := m.blurred[0]
	for ix := 0; ix < m.scale; ix++ {
		for iy := 0; iy < m.scale; iy++ {
			v := blurred[ix*m.scale+iy]
			if v > best {
				best, bestX, bestY = v, ix, iy
			}
		}
	}

	return best, bestX, bestY
}

// RowsAt returns the row indices currently registered at lattice point p.
func (m *Map) RowsAt(p contig.Position) []int {
	return m.g[lattice3{p.X, p.Y, p.Z}]
}

// RowsInBox returns every row-index currently registered at a lattice
// point within the inclusive [lo,hi] box on each axis — the candidate
// collection step of the engine's round loop.
func (m *Map) RowsInBox(xlo, xhi, ylo, yhi, zlo, zhi int) []int {
	var out []int
	for key, rows := range m.g {
		if key.X < xlo || key.X > xhi || key.Y < ylo || key.Y > yhi || key.Z < zlo || key.Z > zhi {
			continue
		}
		out = append(out, rows...)
	}

	return out
}

// RawAt returns the unblurred density of view 0 at (x,y), used by tests and
// by the diagnostic package's heat-map export.
func (m *Map) RawAt(x, y int) float64 {
	return m.views[0][x*m.scale+y]
}

// BlurredAt returns the blurred density of view 0 at (x,y); Blur must have
// been called at least once.
func (m *Map) BlurredAt(x, y int) float64 {
	return m.blurred[0][x*m.scale+y]
}

// ConnectedRegions reports the connected components of the thresholded
// blurred view 0. No caller in this module uses it, and it never feeds a
// clustering decision.
func (m *Map) ConnectedRegions(threshold float64) [][]contig.Position {
	visited := make([]bool, m.scale*m.scale)
	var regions [][]contig.Position
	blurred := m.blurred[0]

	for ix := 0; ix < m.scale; ix++ {
		for iy := 0; iy < m.scale; iy++ {
			idx := ix*m.scale + iy
			if visited[idx] || blurred[idx] < threshold {
				continue
			}
			regions = append(regions, m.floodFill(blurred, visited, ix, iy, threshold))
		}
	}

	return regions
}

func (m *Map) floodFill(blurred []float64, visited []bool, sx, sy int, threshold float64) []contig.Position {
	type cell struct{ x, y int }
	stack := []cell{{sx, sy}}
	var region []contig.Position
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.x < 0 || c.x >= m.scale || c.y < 0 || c.y >= m.scale {
			continue
		}
		idx := c.x*m.scale + c.y
		if visited[idx] || blurred[idx] < threshold {
			continue
		}
		visited[idx] = true
		region = append(region, contig.Position{X: c.x, Y: c.y})
		stack = append(stack,
			cell{c.x - 1, c.y}, cell{c.x + 1, c.y},
			cell{c.x, c.y - 1}, cell{c.x, c.y + 1},
		)
	}

	return region
}
