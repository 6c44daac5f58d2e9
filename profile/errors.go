// errors.go — sentinel errors for the profile package.

package profile

import "errors"

// ErrDimensionTooLow indicates a coverage matrix with fewer than 2 columns
// (single-sample coverage profiles are not supported).
var ErrDimensionTooLow = errors.New("profile: coverage dimensionality must be >= 2")

// ErrRowCountMismatch indicates coverage/aux/lengths/contigIDs slices of
// differing length.
var ErrRowCountMismatch = errors.New("profile: row counts do not match across fields")

// ErrSidecarMismatch indicates a coverage/aux TSV sidecar row whose contig
// id is not present in the FASTA index.
var ErrSidecarMismatch = errors.New("profile: sidecar row references unknown contig id")
