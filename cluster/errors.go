// errors.go — sentinel errors for the cluster package.

package cluster

import "errors"

// ErrEmptyProfile indicates the ProfileStore returned zero contigs at the
// requested length cutoff.
var ErrEmptyProfile = errors.New("cluster: profile store returned no contigs")
