// errors.go — sentinel errors for the bin package.

package bin

import "errors"

// ErrEmptyMembership indicates MakeDist was called on a bin with no
// members, so no mean/stdev can be computed.
var ErrEmptyMembership = errors.New("bin: cannot fit a distribution with zero members")
