package densitymap

import "math"

// gaussianBlur2D performs a hand-rolled separable Gaussian convolution
// (horizontal pass then vertical pass) over a flattened scale x scale
// plane. Kernel radius is truncated at 3*sigma; neighbours outside
// [0,scale) are silently skipped (no edge padding), matching the
// stated lattice edge behaviour. See DESIGN.md for why no corpus image
// library was wired here instead.
func gaussianBlur2D(src []float64, scale int, sigma float64) []float64 {
	kernel := gaussianKernel1D(sigma)
	tmp := make([]float64, len(src))
	out := make([]float64, len(src))

	// horizontal pass (along y, fixed x)
	for x := 0; x < scale; x++ {
		for y := 0; y < scale; y++ {
			tmp[x*scale+y] = convolve1D(src, scale, x, y, kernel, true)
		}
	}
	// vertical pass (along x, fixed y)
	for x := 0; x < scale; x++ {
		for y := 0; y < scale; y++ {
			out[x*scale+y] = convolve1D(tmp, scale, x, y, kernel, false)
		}
	}

	return out
}

// gaussianBlur3D applies three separable 1D Gaussian passes, along x, y and
// z, over a flattened width x height x depth volume — used by
// ColumnDensify's finer-grained re-densification.
func gaussianBlur3D(src []float64, width, height, depth int, sigma float64) []float64 {
	kernel := gaussianKernel1D(sigma)
	tmp1 := make([]float64, len(src))
	tmp2 := make([]float64, len(src))
	out := make([]float64, len(src))

	idx := func(x, y, z int) int { return (x*height+y)*depth + z }

	// pass along x
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for z := 0; z < depth; z++ {
				var acc, wsum float64
				r := len(kernel) / 2
				for k := -r; k <= r; k++ {
					nx := x + k
					if nx < 0 || nx >= width {
						continue
					}
					w := kernel[k+r]
					acc += src[idx(nx, y, z)] * w
					wsum += w
				}
				if wsum > 0 {
					tmp1[idx(x, y, z)] = acc / wsum
				}
			}
		}
	}
	// pass along y
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for z := 0; z < depth; z++ {
				var acc, wsum float64
				r := len(kernel) / 2
				for k := -r; k <= r; k++ {
					ny := y + k
					if ny < 0 || ny >= height {
						continue
					}
					w := kernel[k+r]
					acc += tmp1[idx(x, ny, z)] * w
					wsum += w
				}
				if wsum > 0 {
					tmp2[idx(x, y, z)] = acc / wsum
				}
			}
		}
	}
	// pass along z
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for z := 0; z < depth; z++ {
				var acc, wsum float64
				r := len(kernel) / 2
				for k := -r; k <= r; k++ {
					nz := z + k
					if nz < 0 || nz >= depth {
						continue
					}
					w := kernel[k+r]
					acc += tmp2[idx(x, y, nz)] * w
					wsum += w
				}
				if wsum > 0 {
					out[idx(x, y, z)] = acc / wsum
				}
			}
		}
	}

	return out
}

func convolve1D(src []float64, scale, x, y int, kernel []float64, horizontal bool) float64 {
	r := len(kernel) / 2
	var acc, wsum float64
	for k := -r; k <= r; k++ {
		var nx, ny int
		if horizontal {
			nx, ny = x, y+k
		} else {
			nx, ny = x+k, y
		}
		if nx < 0 || nx >= scale || ny < 0 || ny >= scale {
			continue
		}
		w := kernel[k+r]
		acc += src[nx*scale+ny] * w
		wsum += w
	}
	if wsum == 0 {
		return 0
	}

	return acc / wsum
}

// gaussianKernel1D returns a normalized 1D Gaussian kernel truncated at
// radius = ceil(3*sigma).
func gaussianKernel1D(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}
