// SPDX-License-Identifier: MIT
// Package: bluenoise/spacing
//
// spacing.go — nearest-neighbour distances and their summary statistics.

package spacing

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bluenoise/torus"
)

// ErrTooFewPoints indicates fewer than two points were given.
var ErrTooFewPoints = errors.New("spacing: need at least two points")

// violationTol absorbs rounding when comparing distances against r.
const violationTol = 1e-9

// Summary describes the nearest-neighbour distance distribution of a set.
type Summary struct {
	Count      int     // number of points
	MinNN      float64 // smallest nearest-neighbour distance
	MeanNN     float64 // mean nearest-neighbour distance
	StdDevNN   float64 // sample standard deviation of nearest-neighbour distances
	MaxNN      float64 // largest nearest-neighbour distance
	Violations int     // points whose nearest neighbour is closer than MinDist
	MinDist    float64 // the r the set was checked against
	Density    float64 // points per unit area
	Coverage   float64 // fraction of the area covered by discs of radius r/2
}

// NearestNeighbors returns, for each point, the periodic distance to its
// closest other point, in input order.
// Complexity: O(n²) time, O(n) memory.
func NearestNeighbors(pts []torus.Point, d torus.Domain) ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("spacing: NearestNeighbors: %w", err)
	}
	if len(pts) < 2 {
		return nil, fmt.Errorf("spacing: NearestNeighbors: n=%d: %w", len(pts), ErrTooFewPoints)
	}

	best := make([]float64, len(pts))
	for i := range best {
		best[i] = math.Inf(1)
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			dist := d.Distance(pts[i], pts[j])
			best[i] = math.Min(best[i], dist)
			best[j] = math.Min(best[j], dist)
		}
	}

	return best, nil
}

// Summarize computes a Summary of pts on d, counting points whose nearest
// neighbour is closer than minDist.
func Summarize(pts []torus.Point, d torus.Domain, minDist float64) (Summary, error) {
	nn, err := NearestNeighbors(pts, d)
	if err != nil {
		return Summary{}, err
	}

	mean, std := stat.MeanStdDev(nn, nil)
	violations := 0
	for _, v := range nn {
		if v < minDist-violationTol {
			violations++
		}
	}
	n := float64(len(pts))

	return Summary{
		Count:      len(pts),
		MinNN:      floats.Min(nn),
		MeanNN:     mean,
		StdDevNN:   std,
		MaxNN:      floats.Max(nn),
		Violations: violations,
		MinDist:    minDist,
		Density:    n / d.Area(),
		Coverage:   n * math.Pi * minDist * minDist / 4 / d.Area(),
	}, nil
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("count", s.Count),
		slog.Float64("min_nn", s.MinNN),
		slog.Float64("mean_nn", s.MeanNN),
		slog.Float64("stddev_nn", s.StdDevNN),
		slog.Float64("max_nn", s.MaxNN),
		slog.Int("violations", s.Violations),
		slog.Float64("min_dist", s.MinDist),
		slog.Float64("density", s.Density),
		slog.Float64("coverage", s.Coverage),
	)
}
