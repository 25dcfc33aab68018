package poisson_test

import (
	"fmt"

	"github.com/katalvlaran/bluenoise/poisson"
)

// ExampleFromRand builds the 16×16 sampler with r=2 and k=10, takes ten
// points and checks their spacing on the torus.
func ExampleFromRand() {
	s, err := poisson.FromRand(16, 16, 2.0, poisson.NewRand(10))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	pts := s.WithSamples(10).Take(10)

	closest := s.Domain().Width
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			closest = min(closest, s.Domain().Distance(pts[i], pts[j]))
		}
	}
	fmt.Printf("points=%d\n", len(pts))
	fmt.Printf("spacing ok=%v\n", closest >= 2.0)
	// Output:
	// points=10
	// spacing ok=true
}

// ExampleSampler_WithSamples shows that a zero candidate budget stops after
// the seed point.
func ExampleSampler_WithSamples() {
	s, _ := poisson.New(16, 16, 2.0, poisson.WithSeed(1))
	n := 0
	for range s.WithSamples(0).All() {
		n++
	}
	fmt.Println(n, s.State())
	// Output:
	// 1 exhausted
}
