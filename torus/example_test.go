package torus_test

import (
	"fmt"

	"github.com/katalvlaran/bluenoise/torus"
)

// ExampleDistance shows two points that are far apart in the plane but
// neighbours on the torus, because the left and right edges are identified.
func ExampleDistance() {
	p := torus.Point{X: 0.5, Y: 4}
	q := torus.Point{X: 15.5, Y: 4}

	fmt.Printf("wrap(-1, 16) = %.1f\n", torus.Wrap(-1, 16))
	fmt.Printf("delta = %.1f\n", torus.Delta(p.X, q.X, 16))
	fmt.Printf("distance = %.1f\n", torus.Distance(p, q, 16, 16))
	// Output:
	// wrap(-1, 16) = 15.0
	// delta = -1.0
	// distance = 1.0
}
