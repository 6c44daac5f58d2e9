// errors.go — sentinel errors for the transform package.
//
// All three are precondition violations per the error-handling design:
// fatal, never panics, always returned and wrapped with
// fmt.Errorf("transform: %w", ...) at the call site.

package transform

import "errors"

// ErrEmptyCoverage indicates an empty coverage matrix (N == 0).
var ErrEmptyCoverage = errors.New("transform: coverage matrix is empty")

// ErrDimensionTooLow indicates a coverage matrix with D < 2 columns.
var ErrDimensionTooLow = errors.New("transform: coverage dimensionality must be >= 2")

// ErrZeroNorm indicates a coverage row with zero L2 norm, which cannot be
// rotated (division by zero in the unit-vector step).
var ErrZeroNorm = errors.New("transform: zero-norm coverage row")
