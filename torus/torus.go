// SPDX-License-Identifier: MIT
// Package: bluenoise/torus
//
// torus.go — periodic wrap, delta and distance on a W×H domain.

package torus

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInvalidExtent indicates a domain side that is NaN, ±Inf or ≤ 0.
var ErrInvalidExtent = errors.New("torus: extent must be finite and > 0")

// Point is a location on the torus. X lies in [0, Width), Y in [0, Height)
// once normalized by Wrap.
type Point struct {
	X, Y float64
}

// Vec converts p into a gonum r2.Vec.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Domain is a Width×Height rectangle whose opposite edges are identified.
type Domain struct {
	Width, Height float64
}

// Validate reports ErrInvalidExtent when either side is non-finite or ≤ 0.
// Complexity: O(1).
func (d Domain) Validate() error {
	if !validExtent(d.Width) {
		return fmt.Errorf("width=%v: %w", d.Width, ErrInvalidExtent)
	}
	if !validExtent(d.Height) {
		return fmt.Errorf("height=%v: %w", d.Height, ErrInvalidExtent)
	}

	return nil
}

// Area returns Width*Height.
func (d Domain) Area() float64 {
	return d.Width * d.Height
}

// Contains reports whether p already lies in [0,Width)×[0,Height).
func (d Domain) Contains(p Point) bool {
	return p.X >= 0 && p.X < d.Width && p.Y >= 0 && p.Y < d.Height
}

// Wrap folds p into the domain on both axes.
func (d Domain) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, d.Width), Y: Wrap(p.Y, d.Height)}
}

// Delta returns the minimal displacement from p to q as a vector.
func (d Domain) Delta(p, q Point) r2.Vec {
	return r2.Vec{X: Delta(p.X, q.X, d.Width), Y: Delta(p.Y, q.Y, d.Height)}
}

// Distance returns the periodic Euclidean distance between p and q.
func (d Domain) Distance(p, q Point) float64 {
	return Distance(p, q, d.Width, d.Height)
}

// Wrap reduces coord into [0, extent) by modular arithmetic. Negative values
// fold in from the far edge; they are never clamped.
//
// math.Mod keeps the sign of coord, so negatives are shifted by one extent.
// For tiny negative inputs that shift rounds to exactly extent, which is then
// mapped to 0 to keep the interval half-open.
// Complexity: O(1).
func Wrap(coord, extent float64) float64 {
	c := math.Mod(coord, extent)
	if c < 0 {
		c += extent
	}
	if c >= extent {
		c = 0
	}

	return c
}

// Delta returns the signed minimal displacement from a to b on an axis of
// length extent: whichever of (b-a) and (b-a)∓extent is smaller in magnitude.
// The result lies in [-extent/2, extent/2].
// Complexity: O(1).
func Delta(a, b, extent float64) float64 {
	return math.Remainder(b-a, extent)
}

// Distance returns the Euclidean norm of the per-axis periodic deltas between
// p and q on a w×h torus. It replaces planar distance wherever spacing is
// tested.
// Complexity: O(1).
func Distance(p, q Point, w, h float64) float64 {
	return r2.Norm(r2.Vec{X: Delta(p.X, q.X, w), Y: Delta(p.Y, q.Y, h)})
}

// DistanceSquared is Distance without the square root, for comparisons
// against a precomputed squared radius.
func DistanceSquared(p, q Point, w, h float64) float64 {
	return r2.Norm2(r2.Vec{X: Delta(p.X, q.X, w), Y: Delta(p.Y, q.Y, h)})
}

func validExtent(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
