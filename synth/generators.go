// Package synth: population generators. Each constructs a Fixture by
// sampling coverage vectors around one or more centers with Gaussian
// jitter, optionally splitting contigs into bimodal auxiliary-channel
// clusters, and drawing lengths from the configured LengthFn.
package synth

import (
	"fmt"
	"math/rand"
)

// Fixture is a synthetic contig population ready to be handed to
// profile.InMemoryStore or directly to the clustering pipeline in tests.
type Fixture struct {
	IDs      []string    // contig identifiers, len N
	Coverage [][]float64 // N x D coverage matrix
	Aux      []float64   // N, normalized auxiliary channel in [0,1]
	Lengths  []int       // N, contig lengths in bp
}

// opName constants for unified error wrapping.
const (
	opBlob         = "Blob"
	opMultiBlob    = "MultiBlob"
	opSparseNoise  = "SparseNoise"
	opAuxSplitBlob = "AuxSplitBlob"
)

func synthErrorf(op string, err error) error {
	return fmt.Errorf("synth.%s: %w", op, err)
}

// Blob draws n contigs with coverage vectors Gaussian-jittered (stdev sigma
// per dimension) around center, and lengths per the configured LengthFn.
// This is the generator behind the isotropic-Gaussian-blob scenario.
func Blob(n int, center []float64, sigma float64, opts ...FixtureOption) (*Fixture, error) {
	if n <= 0 {
		return nil, synthErrorf(opBlob, ErrTooFewContigs)
	}
	if len(center) < 1 {
		return nil, synthErrorf(opBlob, ErrTooFewDims)
	}
	cfg := newFixtureConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	f := &Fixture{
		IDs:      make([]string, n),
		Coverage: make([][]float64, n),
		Aux:      make([]float64, n),
		Lengths:  make([]int, n),
	}
	lengthFn := resolveLengthFn(cfg.lengthFn)
	for i := 0; i < n; i++ {
		f.IDs[i] = fmt.Sprintf("%s_%d", cfg.idPrefix, i)
		f.Coverage[i] = jitter(center, sigma, rng)
		f.Aux[i] = rng.Float64()
		f.Lengths[i] = lengthFn(rng)
	}

	return f, nil
}

// MultiBlob draws contigs from len(centers) separated Gaussian blobs, n
// contigs per center. This drives the two-separated-blobs scenario
// (and its straightforward N-blob generalization).
func MultiBlob(n int, centers [][]float64, sigma float64, opts ...FixtureOption) (*Fixture, error) {
	if len(centers) == 0 {
		return nil, synthErrorf(opMultiBlob, ErrBadCenterCount)
	}
	if n <= 0 {
		return nil, synthErrorf(opMultiBlob, ErrTooFewContigs)
	}

	merged := &Fixture{}
	for k, center := range centers {
		sub, err := Blob(n, center, sigma, append(opts, WithIDPrefix(fmt.Sprintf("blob%d", k)))...)
		if err != nil {
			return nil, synthErrorf(opMultiBlob, err)
		}
		merged.IDs = append(merged.IDs, sub.IDs...)
		merged.Coverage = append(merged.Coverage, sub.Coverage...)
		merged.Aux = append(merged.Aux, sub.Aux...)
		merged.Lengths = append(merged.Lengths, sub.Lengths...)
	}

	return merged, nil
}

// AuxSplitBlob draws n contigs around a single shared spatial center but
// partitions them into len(auxCenters) auxiliary-channel clusters, so
// that the spatial density map shows one blob while the auxiliary channel
// distinguishes sub-populations. This drives the
// overlapping-but-aux-split scenario (the case the partition package must
// resolve via its k-mer/coverage-z two-axis intersection).
func AuxSplitBlob(n int, center []float64, sigma float64, auxCenters []float64, auxSigma float64, opts ...FixtureOption) (*Fixture, error) {
	if n <= 0 {
		return nil, synthErrorf(opAuxSplitBlob, ErrTooFewContigs)
	}
	if len(auxCenters) == 0 {
		return nil, synthErrorf(opAuxSplitBlob, ErrBadCenterCount)
	}
	cfg := newFixtureConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	f := &Fixture{
		IDs:      make([]string, n),
		Coverage: make([][]float64, n),
		Aux:      make([]float64, n),
		Lengths:  make([]int, n),
	}
	lengthFn := resolveLengthFn(cfg.lengthFn)
	for i := 0; i < n; i++ {
		f.IDs[i] = fmt.Sprintf("%s_%d", cfg.idPrefix, i)
		f.Coverage[i] = jitter(center, sigma, rng)
		auxCenter := auxCenters[i%len(auxCenters)]
		f.Aux[i] = clip01(auxCenter + rng.NormFloat64()*auxSigma)
		f.Lengths[i] = lengthFn(rng)
	}

	return f, nil
}

// SparseNoise draws n contigs uniformly at random over [lo, hi]^dims with no
// clustering structure, driving the sparse-noise and
// below-detection-threshold scenarios (the caller controls n and the
// quality-gate minimum size to decide which scenario this exercises).
func SparseNoise(n, dims int, lo, hi float64, opts ...FixtureOption) (*Fixture, error) {
	if n <= 0 {
		return nil, synthErrorf(opSparseNoise, ErrTooFewContigs)
	}
	if dims < 1 {
		return nil, synthErrorf(opSparseNoise, ErrTooFewDims)
	}
	cfg := newFixtureConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	f := &Fixture{
		IDs:      make([]string, n),
		Coverage: make([][]float64, n),
		Aux:      make([]float64, n),
		Lengths:  make([]int, n),
	}
	lengthFn := resolveLengthFn(cfg.lengthFn)
	span := hi - lo
	for i := 0; i < n; i++ {
		f.IDs[i] = fmt.Sprintf("%s_%d", cfg.idPrefix, i)
		row := make([]float64, dims)
		for d := 0; d < dims; d++ {
			row[d] = lo + rng.Float64()*span
		}
		f.Coverage[i] = row
		f.Aux[i] = rng.Float64()
		f.Lengths[i] = lengthFn(rng)
	}

	return f, nil
}

// jitter returns a copy of center with independent N(0, sigma^2) noise added
// to each dimension.
func jitter(center []float64, sigma float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(center))
	for d, c := range center {
		out[d] = c + rng.NormFloat64()*sigma
	}

	return out
}

// clip01 clamps v to [0, 1].
func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
