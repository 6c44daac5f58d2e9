package diagnostic

import "errors"

// ErrEmptyMap indicates a heat-map export was requested for a zero-scale
// density map.
var ErrEmptyMap = errors.New("diagnostic: density map has zero scale")
