// Package grid is the uniform acceleration structure behind Poisson-disc
// acceptance tests on a torus.
//
// What:
//
//   - Grid covers a torus.Domain with square cells of side s = r/√2.
//   - Every cell holds at most one point index; two points in one cell would
//     be closer than r, so the sampler can never produce them.
//   - Neighbors yields the indices stored in the 5×5 block of cells around a
//     candidate, with cell coordinates wrapped modulo the grid size.
//
// Why:
//
//   - "Is any accepted point within r of c?" becomes a scan of at most 25
//     cells, independent of how many points were accepted.
//   - Wrapping cell coordinates mirrors the periodic distance in package
//     torus, so neighbours across the seam are found.
//
// Complexity:
//
//   - New:       O(cols×rows) time and memory.
//   - Insert:    O(1).
//   - Neighbors: O(1) per query (≤ 25 cells), lazy.
//
// Errors:
//
//   - ErrInvalidCellSize: minimum distance is non-finite or ≤ 0.
//   - ErrTooLarge: cols×rows exceeds MaxCells.
//   - torus.ErrInvalidExtent: the domain itself is invalid.
package grid
