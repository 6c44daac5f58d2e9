// errors.go — sentinel errors for the binmanager package.

package binmanager

import "errors"

// ErrUnknownBin indicates DeleteBins was asked to remove an id that is not
// currently registered and force was false.
var ErrUnknownBin = errors.New("binmanager: unknown bin id")
