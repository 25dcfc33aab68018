package poisson

import "github.com/katalvlaran/bluenoise/torus"

// AcceptsForTest exposes the acceptance test to external tests.
func (s *Sampler) AcceptsForTest(c torus.Point) bool { return s.accepts(c) }

// AcceptForTest records p as accepted without any spacing check.
func (s *Sampler) AcceptForTest(p torus.Point) { s.accept(p) }
