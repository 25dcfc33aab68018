// Package poisson generates tileable blue-noise point sets by Poisson-disc
// sampling on a torus.
//
// 🚀 What is it?
//
//	A Sampler spreads points over a W×H rectangle so that no two points are
//	closer than a minimum distance r, measured with wrap-around on both axes.
//	Because the left/right and top/bottom edges are identified, the result can
//	be repeated edge to edge with no visible seam, which is what a repeating
//	dither-threshold tile needs.
//
// ✨ Key features:
//   - lazy, pull-based generation: Next, All (range-over-func) and Take
//   - deterministic: identical (W, H, r, k, seed) ⇒ identical sequence
//   - injected randomness: any value with Float64() float64 (math/rand or
//     math/rand/v2), so tests can pin the stream
//   - expected O(1) acceptance test per candidate via package grid
//
// ⚙️ Usage:
//
//	s, err := poisson.FromRand(16, 16, 2.0, poisson.NewRand(10))
//	if err != nil {
//	  // ErrInvalidDomain, ErrInvalidMinDistance, ErrNilRand, grid.ErrTooLarge
//	}
//	for _, p := range s.WithSamples(10).Take(10) {
//	  fmt.Println(p.X, p.Y)
//	}
//
// Algorithm:
//
//	Seeding   → draw x=U·W, y=U·H; emit it.
//	Sampling  → take the LAST active point; try up to k candidates at angle
//	            U·2π and radius r+U·r around it, wrapped into the domain.
//	            The first candidate at distance ≥ r from every neighbour is
//	            emitted and becomes active. If all k fail the point is retired
//	            and the pull continues with the next last entry.
//	Exhausted → the active list is empty; every further pull yields nothing.
//
// Always advancing the most recently accepted point is the fixed tie-break
// rule; it makes retirement an O(1) pop and grows the set as a front.
//
// Concurrency:
//
//	A Sampler is not synchronized. Keep at most one pull in flight; to stop
//	early simply stop pulling.
//
// Performance:
//
//   - Time:   O(k) expected per emitted point, O(k·n) total.
//   - Memory: O(ceil(W/s)·ceil(H/s) + n) with s = r/√2.
package poisson
