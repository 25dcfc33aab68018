package torus_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bluenoise/torus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestWrap_Table checks folding of in-range, negative and overflowing coordinates.
func TestWrap_Table(t *testing.T) {
	cases := []struct {
		name   string
		coord  float64
		extent float64
		want   float64
	}{
		{"InRange", 3.5, 16, 3.5},
		{"Zero", 0, 16, 0},
		{"ExactExtent", 16, 16, 0},
		{"JustOver", 17.25, 16, 1.25},
		{"ManyTurns", 16*5 + 2, 16, 2},
		{"Negative", -1, 16, 15},
		{"NegativeManyTurns", -33, 16, 15},
		{"NegativeExactExtent", -16, 16, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, torus.Wrap(tc.coord, tc.extent), eps)
		})
	}
}

// TestWrap_TinyNegativeStaysHalfOpen verifies that a negative value whose
// shifted result rounds to extent maps to 0 instead of extent.
func TestWrap_TinyNegativeStaysHalfOpen(t *testing.T) {
	got := torus.Wrap(-1e-18, 16)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 16.0)
}

// TestDelta_Table checks the signed minimal displacement across the seam.
func TestDelta_Table(t *testing.T) {
	cases := []struct {
		name    string
		a, b, e float64
		want    float64
	}{
		{"Forward", 1, 3, 16, 2},
		{"Backward", 3, 1, 16, -2},
		{"AcrossSeamForward", 15.5, 0.5, 16, 1},
		{"AcrossSeamBackward", 0.5, 15.5, 16, -1},
		{"Same", 4, 4, 16, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, torus.Delta(tc.a, tc.b, tc.e), eps)
		})
	}
}

// TestDelta_BoundedByHalfExtent sweeps pairs and asserts |Δ| ≤ extent/2.
func TestDelta_BoundedByHalfExtent(t *testing.T) {
	const extent = 10.0
	for a := 0.0; a < extent; a += 0.37 {
		for b := 0.0; b < extent; b += 0.41 {
			d := torus.Delta(a, b, extent)
			require.LessOrEqual(t, math.Abs(d), extent/2+eps, "a=%v b=%v", a, b)
			// a+Δ must land on b modulo extent.
			require.InDelta(t, 0, torus.Delta(b, torus.Wrap(a+d, extent), extent), 1e-9, "a=%v b=%v", a, b)
		}
	}
}

// TestDistance_UsesWrap verifies that points near opposite edges are close.
func TestDistance_UsesWrap(t *testing.T) {
	p := torus.Point{X: 0.5, Y: 8}
	q := torus.Point{X: 15.5, Y: 8}
	assert.InDelta(t, 1.0, torus.Distance(p, q, 16, 16), eps)

	corner1 := torus.Point{X: 0.5, Y: 0.5}
	corner2 := torus.Point{X: 15.5, Y: 15.5}
	assert.InDelta(t, math.Sqrt2, torus.Distance(corner1, corner2, 16, 16), eps)
	assert.InDelta(t, 2.0, torus.DistanceSquared(corner1, corner2, 16, 16), eps)
}

// TestDistance_Symmetric checks d(p,q) == d(q,p).
func TestDistance_Symmetric(t *testing.T) {
	d := torus.Domain{Width: 7, Height: 3}
	p := torus.Point{X: 6.9, Y: 0.1}
	q := torus.Point{X: 0.2, Y: 2.8}
	assert.InDelta(t, d.Distance(p, q), d.Distance(q, p), eps)
	assert.InDelta(t, math.Hypot(0.3, 0.3), d.Distance(p, q), 1e-9)
}

// TestDomain_Validate rejects non-positive and non-finite sides.
func TestDomain_Validate(t *testing.T) {
	require.NoError(t, torus.Domain{Width: 1, Height: 2}.Validate())

	bad := []torus.Domain{
		{Width: 0, Height: 1},
		{Width: 1, Height: -1},
		{Width: math.NaN(), Height: 1},
		{Width: 1, Height: math.Inf(1)},
	}
	for _, d := range bad {
		assert.ErrorIs(t, d.Validate(), torus.ErrInvalidExtent, "domain %+v", d)
	}
}

// TestDomain_WrapContains checks that Wrap always produces a contained point.
func TestDomain_WrapContains(t *testing.T) {
	d := torus.Domain{Width: 16, Height: 9}
	for _, p := range []torus.Point{{-0.5, -0.5}, {16, 9}, {33.3, -18.2}, {4, 4}} {
		w := d.Wrap(p)
		assert.True(t, d.Contains(w), "Wrap(%v) = %v", p, w)
	}
	assert.False(t, d.Contains(torus.Point{X: 16, Y: 0}))
	assert.Equal(t, 144.0, d.Area())
}

// TestDomain_Delta returns the per-axis minimal displacement vector.
func TestDomain_Delta(t *testing.T) {
	d := torus.Domain{Width: 10, Height: 10}
	v := d.Delta(torus.Point{X: 9, Y: 1}, torus.Point{X: 1, Y: 9})
	assert.InDelta(t, 2.0, v.X, eps)
	assert.InDelta(t, -2.0, v.Y, eps)
	assert.Equal(t, 3.0, torus.Point{X: 3, Y: 4}.Vec().X)
}
