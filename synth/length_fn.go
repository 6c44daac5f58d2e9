// Package synth: length and coverage-magnitude sampling functions, in the
// same normal/uniform/log-normal distribution family used elsewhere in
// this module for random weight generation, applied here to contig
// lengths and per-sample coverage depth.
package synth

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultLength is used when no custom LengthFn is configured and no RNG is
// available to sample one.
const DefaultLength = 1000

// LengthFn produces a contig length in bp given an optional *rand.Rand
// source. It must be deterministic for a given RNG seed.
type LengthFn func(rng *rand.Rand) int

// ConstantLengthFn returns a LengthFn that always yields n. Panics if n <= 0.
func ConstantLengthFn(n int) LengthFn {
	if n <= 0 {
		panic(fmt.Sprintf("ConstantLengthFn: n must be > 0, got %d", n))
	}

	return func(_ *rand.Rand) int { return n }
}

// UniformLengthFn samples uniformly in [min, max] inclusive. Panics if
// min <= 0 or max < min. Falls back to min when rng is nil.
func UniformLengthFn(min, max int) LengthFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformLengthFn: require 0 < min <= max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return min
		}
		if max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}

// LogNormalLengthFn samples lengths from a log-normal distribution, which
// approximates the heavy-tailed size spectrum of real assembly contigs far
// better than a uniform or Gaussian length model. meanLog/stddevLog are the
// mean and stdev of the underlying normal distribution of log(length).
// Panics if stddevLog < 0. Falls back to round(e^meanLog) when rng is nil.
func LogNormalLengthFn(meanLog, stddevLog float64) LengthFn {
	if stddevLog < 0 {
		panic(fmt.Sprintf("LogNormalLengthFn: stddevLog must be >= 0, got %f", stddevLog))
	}

	return func(rng *rand.Rand) int {
		if rng == nil {
			return int(math.Round(math.Exp(meanLog)))
		}
		sample := math.Exp(rng.NormFloat64()*stddevLog + meanLog)
		n := int(math.Round(sample))
		if n < 1 {
			n = 1
		}

		return n
	}
}

// resolveLengthFn returns fn if non-nil, otherwise a constant DefaultLength.
func resolveLengthFn(fn LengthFn) LengthFn {
	if fn != nil {
		return fn
	}

	return ConstantLengthFn(DefaultLength)
}
