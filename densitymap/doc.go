// Package densitymap implements the 2D/3D lattice density maps the
// clustering engine blurs, peaks, and decrements each round: length-
// weighted stamping of the transformed point cloud into one or three 2D
// projections, Gaussian smoothing, peak lookup, finer-grained column
// re-densification, and the reverse index from lattice cell to row-index.
package densitymap
