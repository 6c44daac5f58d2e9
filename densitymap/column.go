package densitymap

import "math"

// columnWeights are the four Chebyshev-distance-banded stamp weights
// (centre, orthogonal, diagonal, outer-ring) used by ColumnDensify's
// top/bottom slices, per the "(6.4,4.9,2.5,1.6) offset 1" kernel —
// wider and independently tuned from the 2D populate kernel since it
// stamps a full re-densification, not a single-point registration.
var columnWeights = [4]float64{6.4, 4.9, 2.5, 1.6}

// ColumnDensify re-densifies the vertical column above (x0,y0) at finer
// granularity: every unassigned row registered in G whose (x,y) falls
// within halfWidth = floor(1.5*span) of (x0,y0) is stamped into a
// (2*halfWidth+1) x (2*halfWidth+1) x scale block, weighted by
// log10(length) and its z-slice offset from the stamped cell, then the
// block is Gaussian-blurred (sigma=8) and its argmax lifted back to
// global lattice coordinates.
func (m *Map) ColumnDensify(x0, y0, span int, lengths []int) (x, y, z int) {
	halfWidth := int(1.5 * float64(span))
	width := 2*halfWidth + 1
	depth := m.scale
	block := make([]float64, width*width*depth)

	x0lo, y0lo := x0-halfWidth, y0-halfWidth

	for key, rows := range m.g {
		lx := key.X - x0lo
		ly := key.Y - y0lo
		if lx < 0 || lx >= width || ly < 0 || ly >= width {
			continue
		}
		for _, i := range rows {
			weight := math.Log10(float64(lengths[i]))
			stampColumn(block, width, depth, lx, ly, key.Z, weight)
		}
	}

	blurred := gaussianBlur3D(block, width, width, depth, 8)

	best := -math.MaxFloat64
	bestLX, bestLY, bestZ := 0, 0, 0
	idx := func(lx, ly, lz int) int { return (lx*width+ly)*depth + lz }
	for lx := 0; lx < width; lx++ {
		for ly := 0; ly < width; ly++ {
			for lz := 0; lz < depth; lz++ {
				v := blurred[idx(lx, ly, lz)]
				if v > best {
					best, bestLX, bestLY, bestZ = v, lx, ly, lz
				}
			}
		}
	}

	return x0lo + bestLX, y0lo + bestLY, bestZ
}

// stampColumn adds weight*k around (lx,ly,lz) in block: the centre slice
// (dz=0) uses the same 3x3 centre/edge/corner kernel as the 2D populate
// stamp; the top/bottom slices (dz=+-1) use the wider 5x5 radial
// columnWeights kernel. Cells outside the block are skipped.
func stampColumn(block []float64, width, depth, lx, ly, lz int, weight float64) {
	idx := func(x, y, z int) int { return (x*width+y)*depth + z }

	for dz := -1; dz <= 1; dz++ {
		nz := lz + dz
		if nz < 0 || nz >= depth {
			continue
		}
		if dz == 0 {
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					nx, ny := lx+dx, ly+dy
					if nx < 0 || nx >= width || ny < 0 || ny >= width {
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
					addClamped(block, idx(nx, ny, nz), weight*k)
				}
			}

			continue
		}

		for dx := -2; dx <= 2; dx++ {
			for dy := -2; dy <= 2; dy++ {
				nx, ny := lx+dx, ly+dy
				if nx < 0 || nx >= width || ny < 0 || ny >= width {
					continue
				}
				band := chebyshevBand(dx, dy)
				if band < 0 {
					continue
				}
				addClamped(block, idx(nx, ny, nz), weight*columnWeights[band])
			}
		}
	}
}

// chebyshevBand maps an offset to one of the four columnWeights bands:
// 0 = centre, 1 = orthogonal distance-1, 2 = diagonal distance-1,
// 3 = outer ring (distance-2 on at least one axis).
func chebyshevBand(dx, dy int) int {
	ax, ay := abs(dx), abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return 0
	case ax <= 1 && ay <= 1 && (ax == 0 || ay == 0):
		return 1
	case ax <= 1 && ay <= 1:
		return 2
	case ax <= 2 && ay <= 2:
		return 3
	default:
		return -1
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func addClamped(block []float64, idx int, delta float64) {
	block[idx] += delta
	if block[idx] < epsFloat {
		block[idx] = 0
	}
}
