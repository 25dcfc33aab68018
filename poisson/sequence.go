// SPDX-License-Identifier: MIT
// Package: bluenoise/poisson
//
// sequence.go — pull-based views over a Sampler and read-only accessors.
//
// Every view shares the Sampler's state: points consumed through All are not
// produced again by Take or Next. Keep the returned slices if earlier points
// are needed later.

package poisson

import (
	"iter"

	"github.com/katalvlaran/bluenoise/torus"
)

// All returns a single-use sequence that pulls from s until it is exhausted
// or the loop body breaks. Ranging again continues where the last loop stopped.
func (s *Sampler) All() iter.Seq[torus.Point] {
	return func(yield func(torus.Point) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Take pulls until n points are produced or s is exhausted, whichever comes
// first. A shorter result is not an error. n ≤ 0 returns an empty slice
// without pulling.
func (s *Sampler) Take(n int) []torus.Point {
	if n <= 0 {
		return []torus.Point{}
	}
	// The grid bounds how many points can ever exist.
	hint := min(n, s.grid.Cols()*s.grid.Rows()-len(s.points))
	out := make([]torus.Point, 0, max(hint, 0))
	for len(out) < n {
		p, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}

	return out
}

// Points returns a copy of every point accepted so far, in emission order.
func (s *Sampler) Points() []torus.Point {
	return append([]torus.Point(nil), s.points...)
}

// Len returns the number of accepted points.
func (s *Sampler) Len() int { return len(s.points) }

// ActiveLen returns the size of the active list; it never exceeds Len.
func (s *Sampler) ActiveLen() int { return len(s.active) }

// State returns the current lifecycle state.
func (s *Sampler) State() State { return s.state }

// Domain returns the sampled rectangle.
func (s *Sampler) Domain() torus.Domain { return s.domain }

// MinDistance returns r.
func (s *Sampler) MinDistance() float64 { return s.minDist }

// Samples returns the candidate budget k.
func (s *Sampler) Samples() uint32 { return s.samples }

// Cells returns the acceleration grid size cols×rows, an upper bound on Len.
func (s *Sampler) Cells() int { return s.grid.Cols() * s.grid.Rows() }
