// SPDX-License-Identifier: MIT
// Package: bluenoise/poisson
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • samples = DefaultSamples (30)
//   • rng     = NewRand(DefaultSeed) when no WithSeed/WithRand is given

package poisson

// DefaultSamples is the candidate budget k used when WithSamples is not set.
const DefaultSamples uint32 = 30

// samplerConfig aggregates the knobs a Sampler is built from.
type samplerConfig struct {
	samples uint32
	rng     Rand
}

// newSamplerConfig applies opts over the defaults, last-wins, and resolves a
// missing rng to the default stream.
// Complexity: O(len(opts)).
func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		samples: DefaultSamples,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = NewRand(DefaultSeed)
	}

	return cfg
}
