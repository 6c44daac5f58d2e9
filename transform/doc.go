// Package transform implements the coordinate transform that maps an N×D
// coverage matrix onto a lattice of N 3D integer positions: a
// diagonal-ward rotation, a log-rescaled radius, PCA down to 2D when
// D > 2, and per-column normalization into [0, S).
package transform
