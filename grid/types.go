// SPDX-License-Identifier: MIT
// Package: bluenoise/grid
//
// types.go — Grid type, capacity limit and sentinel errors.

package grid

import (
	"errors"

	"github.com/katalvlaran/bluenoise/torus"
)

// Sentinel errors for grid construction.
var (
	// ErrInvalidCellSize indicates a minimum distance that is NaN, ±Inf or ≤ 0.
	ErrInvalidCellSize = errors.New("grid: minimum distance must be finite and > 0")
	// ErrTooLarge indicates the domain needs more than MaxCells cells at this spacing.
	ErrTooLarge = errors.New("grid: too many cells for domain and spacing")
)

// MaxCells caps cols×rows. At one int32 per cell this is 1 GiB.
const MaxCells = 1 << 28

// reach is how many cell rings around the centre can hold a point within r:
// r/s = √2, so a neighbour is at most 2 cells away on each axis.
const reach = 2

// empty marks an unoccupied cell.
const empty int32 = -1

// Grid maps cells of a torus.Domain to at most one point index each.
// It is not safe for concurrent mutation; the owning sampler serializes access.
//
// cellSize is the nominal side r/√2 that fixes cols and rows. The actual cell
// extents cellW = Width/cols and cellH = Height/rows are uniform and never
// larger than cellSize, so wrapped cell distance tracks periodic distance.
// cells is row-major: cells[cy*cols+cx].
// neighborOffsets is precomputed once, so queries never branch on grid size.
type Grid struct {
	domain          torus.Domain
	cellSize        float64
	cellW, cellH    float64
	cols, rows      int
	cells           []int32
	occupied        int
	neighborOffsets [][2]int
}
