// SPDX-License-Identifier: MIT
// Package: bluenoise/poisson
//
// sampler.go — construction and the Seeding/Sampling/Exhausted state machine.
//
// Invariants (hold after every pull):
//   • every accepted pair p≠q has torus distance ≥ r;
//   • every accepted point lies in [0,W)×[0,H);
//   • len(active) ≤ len(points); points only grow;
//   • the grid holds exactly len(points) indices, one per cell at most.

package poisson

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bluenoise/grid"
	"github.com/katalvlaran/bluenoise/torus"
)

// Sampler is a lazy, non-restartable Poisson-disc sequence over a torus.
// It is not safe for concurrent use.
type Sampler struct {
	domain   torus.Domain
	minDist  float64
	minDist2 float64
	samples  uint32
	rng      Rand

	grid   *grid.Grid
	points []torus.Point // append-only; grid and active refer to indices
	active []int         // stack of indices still able to spawn candidates
	state  State
}

// New validates the domain and spacing and returns a Sampler in the Seeding
// state. No random draws happen here; the first one is made by the first pull.
//
// Errors:
//   - ErrInvalidDomain (with torus.ErrInvalidExtent): width/height NaN, ±Inf or ≤ 0.
//   - ErrInvalidMinDistance: minDist NaN, ±Inf or ≤ 0.
//   - grid.ErrTooLarge: the acceleration grid would exceed grid.MaxCells.
//
// Complexity: O(ceil(W/s)·ceil(H/s)) for the grid allocation, s = minDist/√2.
func New(width, height, minDist float64, opts ...Option) (*Sampler, error) {
	d := torus.Domain{Width: width, Height: height}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("poisson: New: %w: %w", ErrInvalidDomain, err)
	}
	if !(minDist > 0) || math.IsInf(minDist, 1) {
		return nil, fmt.Errorf("poisson: New: minDist=%v: %w", minDist, ErrInvalidMinDistance)
	}

	g, err := grid.New(d, minDist)
	if err != nil {
		return nil, fmt.Errorf("poisson: New: %w", err)
	}

	cfg := newSamplerConfig(opts...)

	return &Sampler{
		domain:   d,
		minDist:  minDist,
		minDist2: minDist * minDist,
		samples:  cfg.samples,
		rng:      cfg.rng,
		grid:     g,
		state:    Seeding,
	}, nil
}

// FromRand is New with an explicit, already seeded random source. rng wins
// over any WithRand/WithSeed in opts. A nil rng, including a typed nil
// *rand.Rand, returns ErrNilRand.
func FromRand(width, height, minDist float64, rng Rand, opts ...Option) (*Sampler, error) {
	if isNilRand(rng) {
		return nil, fmt.Errorf("poisson: FromRand: %w", ErrNilRand)
	}

	return New(width, height, minDist, append(opts[:len(opts):len(opts)], WithRand(rng))...)
}

// WithSamples sets the candidate budget k and returns s for chaining.
// Call it before the first pull; a later call only affects later steps.
func (s *Sampler) WithSamples(k uint32) *Sampler {
	s.samples = k

	return s
}

// Next performs one pull: it returns the next accepted point, or false once
// the sampler is exhausted. Exhaustion is terminal.
func (s *Sampler) Next() (torus.Point, bool) {
	switch s.state {
	case Seeding:
		return s.seed(), true
	case Sampling:
		return s.step()
	default:
		return torus.Point{}, false
	}
}

// seed draws the first point uniformly over the domain (x first, then y).
func (s *Sampler) seed() torus.Point {
	x := s.rng.Float64() * s.domain.Width
	y := s.rng.Float64() * s.domain.Height
	p := s.domain.Wrap(torus.Point{X: x, Y: y})
	s.accept(p)
	s.state = Sampling

	return p
}

// step advances the most recently accepted active point. Retired points are
// popped and the next last entry is tried, within the same pull, until one
// candidate is emitted or the active list runs dry.
func (s *Sampler) step() (torus.Point, bool) {
	for len(s.active) > 0 {
		last := len(s.active) - 1
		parent := s.points[s.active[last]]
		for i := uint32(0); i < s.samples; i++ {
			c := s.candidate(parent)
			if s.accepts(c) {
				s.accept(c)

				return c, true
			}
		}
		s.active = s.active[:last]
	}
	s.state = Exhausted

	return torus.Point{}, false
}

// candidate draws a point in the annulus [r, 2r) around parent: angle first,
// then radius, then wraps it into the domain.
func (s *Sampler) candidate(parent torus.Point) torus.Point {
	theta := s.rng.Float64() * 2 * math.Pi
	rho := s.minDist + s.rng.Float64()*s.minDist
	sin, cos := math.Sincos(theta)

	return s.domain.Wrap(torus.Point{X: parent.X + rho*cos, Y: parent.Y + rho*sin})
}

// accepts reports whether c keeps torus distance ≥ r to every accepted
// point in its 5×5 cell neighbourhood.
func (s *Sampler) accepts(c torus.Point) bool {
	for i := range s.grid.Neighbors(c) {
		if torus.DistanceSquared(c, s.points[i], s.domain.Width, s.domain.Height) < s.minDist2 {
			return false
		}
	}

	return true
}

// accept appends p and registers it with the grid and the active list.
func (s *Sampler) accept(p torus.Point) {
	idx := len(s.points)
	s.points = append(s.points, p)
	s.grid.Insert(p, idx)
	s.active = append(s.active, idx)
}
