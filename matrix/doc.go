// Package matrix provides the dense numeric matrix type and the small set of
// statistical and eigen-decomposition kernels the clustering pipeline needs
// for coordinate transforms: column centering, sample covariance, and
// symmetric eigen decomposition for PCA on coverage profiles with more than
// two samples.
//
// Matrices are dense and row-major; the package favors simple deterministic
// loops over cleverness so that results reproduce exactly across runs.
package matrix
