// Package poisson - RNG policy shared by the sampler and its callers.
//
// Goals:
//   - Determinism: same seed ⇒ identical point sequence on a given platform.
//   - Encapsulation: one RNG factory; no time-based sources anywhere.
//   - Independence: DeriveSeed splits one user seed into per-frame streams.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Never share one across samplers that
//     run concurrently; derive a stream per sampler instead.
package poisson

import (
	mrand "math/rand"
	"math/rand/v2"
)

// Rand is the only randomness a Sampler consumes: uniform draws in [0,1).
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type Rand interface {
	Float64() float64
}

// isNilRand reports whether r is nil, either as an interface or as a typed
// nil *rand.Rand of either math/rand version. Other typed nils are not detected.
func isNilRand(r Rand) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *rand.Rand:
		return v == nil
	case *mrand.Rand:
		return v == nil
	}

	return false
}

// DefaultSeed is used when no random source is configured and when callers
// pass seed==0. The value is arbitrary but stable.
const DefaultSeed uint64 = 1

// NewRand returns a deterministic PCG-backed *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewPCG(seed, 0))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so neighbouring stream ids give unrelated
// sequences. Used to seed one sampler per animation frame from one user seed.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	// SplitMix64 constants; see Vigna 2014.
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
