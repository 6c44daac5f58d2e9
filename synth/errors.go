// errors.go — sentinel errors for the synth package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("%s: %w", ...).

package synth

import "errors"

// ErrTooFewContigs indicates a requested population size is non-positive.
var ErrTooFewContigs = errors.New("synth: population size must be > 0")

// ErrTooFewDims indicates a requested coverage dimensionality is below 1.
var ErrTooFewDims = errors.New("synth: dimension count must be >= 1")

// ErrNeedRandSource indicates a generator requires a non-nil *rand.Rand in
// the resolved fixtureConfig (supply WithSeed or WithRand).
var ErrNeedRandSource = errors.New("synth: rng is required")

// ErrBadCenterCount indicates a blob generator received zero centers.
var ErrBadCenterCount = errors.New("synth: at least one center is required")
