// errors.go — sentinel errors for the contig package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. Sentinels are never wrapped at definition site.

package contig

import "errors"

// ErrInvalidTransition indicates an attempted assignment-state change that
// is not one of unassigned->binned or unassigned->restricted.
var ErrInvalidTransition = errors.New("contig: invalid assignment state transition")

// ErrIndexOutOfRange indicates a row-index outside [0, N).
var ErrIndexOutOfRange = errors.New("contig: row-index out of range")
