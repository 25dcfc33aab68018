// Package spacing measures how evenly a point set covers a torus.
//
// What:
//
//   - NearestNeighbors returns, for every point, the periodic distance to its
//     closest other point.
//   - Summarize reduces those distances to a Summary (min, mean, standard
//     deviation, max, violations of a minimum distance, density and coverage).
//
// Why:
//
//   - A blue-noise set has a narrow nearest-neighbour distribution bounded
//     below by r. Clumped or white-noise sets show a wide spread and small
//     minima, so the Summary is a cheap quality check for generated tiles.
//
// Complexity:
//
//   - NearestNeighbors: O(n²) time, O(n) memory.
//   - Summarize:        O(n²) time (dominated by NearestNeighbors).
//
// Errors:
//
//   - ErrTooFewPoints: fewer than two points; nearest neighbours are undefined.
//   - torus.ErrInvalidExtent: the domain is invalid.
package spacing
