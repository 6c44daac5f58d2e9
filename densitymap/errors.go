// errors.go — sentinel errors for the densitymap package.

package densitymap

import "errors"

// ErrScaleTooSmall indicates a requested lattice scale below 1.
var ErrScaleTooSmall = errors.New("densitymap: scale must be >= 1")

// ErrBadNumViews indicates a requested view count other than 1 or 3.
var ErrBadNumViews = errors.New("densitymap: num views must be 1 or 3")
