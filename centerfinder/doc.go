// Package centerfinder implements the "balloon bounce" 1D density center
// algorithm: given a list of scalar values, returns the index of the
// densest cluster, robust to long tails and gaps.
package centerfinder
