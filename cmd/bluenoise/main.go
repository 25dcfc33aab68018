// Command bluenoise prints tileable blue-noise point sets.
//
// Each frame is an independent Poisson-disc tile on a torus. Frame 0 uses the
// configured seed; frame i>0 uses poisson.DeriveSeed(seed, i), so one seed
// yields a reproducible animation sequence of tiles.
//
// Usage:
//
//	bluenoise [-config run.yaml] [-width 16] [-height 16] [-min-distance 2]
//	          [-samples 10] [-seed 10] [-count 10] [-frames 1]
//	          [-format text|csv] [-stats] [-log-level info]
//
// Points go to stdout, logs to stderr.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
