// Package synth generates synthetic contig populations for exercising the
// clustering pipeline in tests: coverage profiles scattered around one or
// more centers in proportion-space, optional auxiliary (k-mer-derived)
// channels, and contig lengths drawn from a configurable distribution.
//
// It does not attempt to model real sequencing noise or assembly artifacts;
// it produces just enough structure (isotropic blobs, separated blobs,
// overlapping-but-aux-split blobs, sparse background) to drive the six
// scenarios the clustering engine is expected to handle.
package synth
