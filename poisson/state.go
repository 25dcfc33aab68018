// SPDX-License-Identifier: MIT
// Package: bluenoise/poisson

package poisson

// State is the sampler lifecycle: Seeding → Sampling → Exhausted.
type State int

const (
	// Seeding: nothing emitted yet; the next pull draws the seed point.
	Seeding State = iota
	// Sampling: the active list is non-empty; pulls may emit more points.
	Sampling
	// Exhausted: terminal; no further point fits at this spacing.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Seeding:
		return "seeding"
	case Sampling:
		return "sampling"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
