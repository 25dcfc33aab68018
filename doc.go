// Package bluenoise generates tileable blue-noise point sets: Poisson-disc
// samples on a rectangular torus, where no two points are closer than a
// minimum distance r measured across the wrap-around seams.
//
// What is in the box?
//
//	torus/   — Domain, Point, Wrap, Delta and Distance on a W×H torus
//	grid/    — uniform acceleration grid with toroidal 5×5 neighbour scans
//	poisson/ — the lazy Sampler (Seeding → Sampling → Exhausted), options, RNG policy
//	spacing/ — nearest-neighbour statistics for checking a point set
//	config/  — YAML + flag configuration for the command
//	cmd/bluenoise — prints tiles as text or CSV
//
// Tile contract for dithering consumers:
//
// Copies of a point set translated by whole multiples of (W, H) keep the
// minimum spacing r everywhere, seams included. A consumer that repeats the
// tile across an image, or offsets successive frames by a wrapped shift, sees
// no clumps or gaps at tile edges.
//
// Quick start:
//
//	s, _ := poisson.New(16, 16, 2, poisson.WithSeed(10), poisson.WithSamples(10))
//	for p := range s.All() {
//		fmt.Println(p.X, p.Y)
//	}
//
// Output is reproducible: the same seed, options and platform produce the
// same sequence.
//
//	go get github.com/katalvlaran/bluenoise
package bluenoise
