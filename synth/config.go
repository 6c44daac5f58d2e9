// Package synth centralizes fixture generation settings (RNG, contig
// naming scheme, length distribution) behind a functional-options config.
package synth

import "math/rand"

// FixtureOption customizes a fixtureConfig before generation begins.
// Option constructors never panic at runtime and ignore nil inputs.
type FixtureOption func(cfg *fixtureConfig)

// fixtureConfig holds the configurable parameters shared by every generator
// in this package. Each call to a generator builds its own config via
// newFixtureConfig; fixtureConfig is not safe for concurrent mutation.
type fixtureConfig struct {
	rng        *rand.Rand // optional RNG; nil makes generators fall back to a fixed seed of 1
	idPrefix   string     // prefix for generated contig IDs, e.g. "ctg"
	lengthFn   LengthFn   // function producing a contig length given the RNG
	auxSpreadN int        // number of aux-channel bimodal clusters (0 disables aux)
}

// newFixtureConfig returns a fixtureConfig initialized with defaults, then
// applies each FixtureOption in order. Later options override earlier ones.
func newFixtureConfig(opts ...FixtureOption) *fixtureConfig {
	cfg := &fixtureConfig{
		rng:        nil,
		idPrefix:   "ctg",
		lengthFn:   ConstantLengthFn(2000),
		auxSpreadN: 0,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand seeded with the given value and assigns
// it as the RNG source. Use for reproducible fixtures.
func WithSeed(seed int64) FixtureOption {
	return func(cfg *fixtureConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets an explicit *rand.Rand source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) FixtureOption {
	return func(cfg *fixtureConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithIDPrefix overrides the generated contig ID prefix. An empty prefix is
// a no-op.
func WithIDPrefix(prefix string) FixtureOption {
	return func(cfg *fixtureConfig) {
		if prefix != "" {
			cfg.idPrefix = prefix
		}
	}
}

// WithLengthFn injects a custom LengthFn. A nil fn is a no-op.
func WithLengthFn(fn LengthFn) FixtureOption {
	return func(cfg *fixtureConfig) {
		if fn != nil {
			cfg.lengthFn = fn
		}
	}
}

// WithAuxClusters records n as the auxiliary-channel cluster count. No
// generator in this package reads it; AuxSplitBlob takes its cluster count
// from len(auxCenters).
func WithAuxClusters(n int) FixtureOption {
	return func(cfg *fixtureConfig) {
		cfg.auxSpreadN = n
	}
}
