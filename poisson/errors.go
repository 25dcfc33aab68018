// SPDX-License-Identifier: MIT
// Package: bluenoise/poisson
//
// errors.go — sentinel errors for the poisson package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w and never return a half-built Sampler.
//   • Exhaustion is not an error: the sequence simply ends.
//   • Option constructors (WithX) panic on meaningless inputs instead.

package poisson

import "errors"

// ErrInvalidDomain indicates a width or height that is NaN, ±Inf or ≤ 0.
// The wrapped chain also carries torus.ErrInvalidExtent.
var ErrInvalidDomain = errors.New("poisson: invalid domain")

// ErrInvalidMinDistance indicates a minimum distance that is NaN, ±Inf or ≤ 0.
var ErrInvalidMinDistance = errors.New("poisson: invalid minimum distance")

// ErrNilRand indicates FromRand was called without a random source.
var ErrNilRand = errors.New("poisson: rng is required")
