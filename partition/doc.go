// Package partition splits a candidate set of row-indices into clusters by
// expanding monotone runs of an auxiliary 1D signal around CenterFinder's
// densest point, then composes two independent axis partitions (k-mer
// signature, normalized coverage-z) via Cartesian intersection.
package partition
