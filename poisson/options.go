// SPDX-License-Identifier: MIT
// Package: bluenoise/poisson
//
// options.go — functional options for Sampler construction.
//
// Contract:
//   • Options are functional (type Option func(*samplerConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Sampling itself never panics on user input.
//   • Determinism is explicit: randomness comes only from WithSeed or WithRand.
//   • Options apply in order; the last one wins.

package poisson

// Option customizes a Sampler before its first pull.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*samplerConfig)

// WithSamples sets k, the candidate budget tried around an active point
// before it is retired. k=0 makes the sampler emit only its seed point.
// Complexity: O(1).
func WithSamples(k uint32) Option {
	return func(c *samplerConfig) {
		c.samples = k
	}
}

// WithRand injects the random source. The sampler takes exclusive ownership.
// Panics on nil, typed nil *rand.Rand included; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r Rand) Option {
	if isNilRand(r) {
		panic("poisson: WithRand(nil)")
	}
	return func(c *samplerConfig) {
		c.rng = r
	}
}

// WithSeed installs NewRand(seed). seed==0 maps to DefaultSeed.
// Complexity: O(1).
func WithSeed(seed uint64) Option {
	return func(c *samplerConfig) {
		c.rng = NewRand(seed)
	}
}
