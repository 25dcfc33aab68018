// Package torus provides periodic (wrap-around) geometry over a W×H rectangle.
//
// What:
//
//   - Point is a 2D coordinate pair; Domain is the rectangle it lives on.
//   - Wrap folds any coordinate into [0, extent), negative inputs included.
//   - Delta returns the signed minimal displacement on a periodic axis.
//   - Distance is the Euclidean norm of the per-axis deltas.
//
// Why:
//
//   - Opposite edges of the rectangle are identified, so a point near x=0 and
//     a point near x=W are neighbours. Every distance test in this module goes
//     through Distance, which is what makes generated point sets tile without
//     a seam.
//
// Complexity:
//
//   - Every function is O(1) with no allocations.
//
// Errors:
//
//   - ErrInvalidExtent: a domain side is non-finite or not strictly positive.
package torus
