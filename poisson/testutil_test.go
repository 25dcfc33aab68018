// Package poisson_test provides helpers shared across *_test.go files.
package poisson_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bluenoise/torus"
)

const (
	// epsDist is the floating-point tolerance for the minimum-distance check.
	epsDist = 1e-9

	// seedDet is the fixed seed used by deterministic scenarios.
	seedDet = uint64(10)
)

// Repeat runs fn n times under the same *testing.T.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}

// requireSpacing fails if any pair is closer than r-epsDist on the torus, or
// any point lies outside the domain.
func requireSpacing(t *testing.T, pts []torus.Point, d torus.Domain, r float64) {
	t.Helper()
	for i, p := range pts {
		if !d.Contains(p) {
			t.Fatalf("point %d %v outside [0,%v)×[0,%v)", i, p, d.Width, d.Height)
		}
		for j := i + 1; j < len(pts); j++ {
			if dist := d.Distance(p, pts[j]); dist < r-epsDist {
				t.Fatalf("points %d %v and %d %v are %.12f apart; want ≥ %v", i, p, j, pts[j], dist, r)
			}
		}
	}
}

// cellBound returns ceil(W/s)·ceil(H/s) for s = r/√2.
func cellBound(w, h, r float64) int {
	s := r / math.Sqrt2

	return int(math.Ceil(w/s) * math.Ceil(h/s))
}
