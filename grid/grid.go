// SPDX-License-Identifier: MIT
// Package: bluenoise/grid
//
// grid.go — construction, cell mapping, insertion and neighbour scans.

package grid

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/bluenoise/torus"
)

// New builds an empty grid over d for minimum point spacing minDist.
// The nominal cell side is s = minDist/√2 and dimensions are ceil(W/s)×ceil(H/s).
// Cells are then stretched back to exactly tile the domain (Width/cols wide,
// Height/rows tall). A ragged last column would let a neighbour across the
// seam sit three cells away in wrapped index space, outside the 5×5 block.
// Returns torus.ErrInvalidExtent, ErrInvalidCellSize or ErrTooLarge.
// Complexity: O(cols×rows) time and memory.
func New(d torus.Domain, minDist float64) (*Grid, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("grid: New: %w", err)
	}
	if !(minDist > 0) || math.IsInf(minDist, 1) {
		return nil, fmt.Errorf("grid: New: minDist=%v: %w", minDist, ErrInvalidCellSize)
	}

	s := minDist / math.Sqrt2
	fc, fr := math.Ceil(d.Width/s), math.Ceil(d.Height/s)
	if fc*fr > MaxCells {
		return nil, fmt.Errorf("grid: New: %.0f×%.0f cells: %w", fc, fr, ErrTooLarge)
	}
	cols, rows := int(fc), int(fr)

	cells := make([]int32, cols*rows)
	for i := range cells {
		cells[i] = empty
	}

	xs, ys := axisOffsets(cols), axisOffsets(rows)
	offsets := make([][2]int, 0, len(xs)*len(ys))
	for _, dy := range ys {
		for _, dx := range xs {
			offsets = append(offsets, [2]int{dx, dy})
		}
	}

	return &Grid{
		domain:          d,
		cellSize:        s,
		cellW:           d.Width / float64(cols),
		cellH:           d.Height / float64(rows),
		cols:            cols,
		rows:            rows,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// axisOffsets returns the cell offsets scanned along one axis of n cells.
// A 5-wide window would revisit cells on axes shorter than 5, so those scan
// every cell exactly once instead.
func axisOffsets(n int) []int {
	if n >= 2*reach+1 {
		out := make([]int, 0, 2*reach+1)
		for o := -reach; o <= reach; o++ {
			out = append(out, o)
		}

		return out
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Cols returns the number of cell columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the nominal cell side s = minDist/√2.
func (g *Grid) CellSize() float64 { return g.cellSize }

// CellBounds returns the actual cell extents, each no larger than CellSize.
func (g *Grid) CellBounds() (w, h float64) { return g.cellW, g.cellH }

// Domain returns the covered domain.
func (g *Grid) Domain() torus.Domain { return g.domain }

// Len returns the number of occupied cells, which equals the number of
// inserted points.
func (g *Grid) Len() int { return g.occupied }

// CellOf returns the cell holding p after wrapping p into the domain.
// Rounding in x/cellW can land exactly on cols for x just below W, so the
// result is clamped to the last cell.
// Complexity: O(1).
func (g *Grid) CellOf(p torus.Point) (cx, cy int) {
	p = g.domain.Wrap(p)
	cx = int(p.X / g.cellW)
	cy = int(p.Y / g.cellH)
	if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy >= g.rows {
		cy = g.rows - 1
	}

	return cx, cy
}

// At returns the point index stored at cell (cx,cy), wrapping the cell
// coordinates. ok is false for an empty cell.
func (g *Grid) At(cx, cy int) (index int, ok bool) {
	v := g.cells[g.index(wrapIndex(cx, g.cols), wrapIndex(cy, g.rows))]
	if v == empty {
		return 0, false
	}

	return int(v), true
}

// Insert records index in p's cell.
// The cell must be empty: the spacing invariant guarantees it, so an occupied
// cell means the caller accepted a point it should have rejected, and Insert
// panics.
// Complexity: O(1).
func (g *Grid) Insert(p torus.Point, index int) {
	if index < 0 || index > math.MaxInt32 {
		panic(fmt.Sprintf("grid: Insert: index %d out of range", index))
	}
	cx, cy := g.CellOf(p)
	i := g.index(cx, cy)
	if prev := g.cells[i]; prev != empty {
		panic(fmt.Sprintf("grid: Insert(%d): cell (%d,%d) already holds %d", index, cx, cy, prev))
	}
	g.cells[i] = int32(index)
	g.occupied++
}

// Neighbors yields the indices stored in the 5×5 block of cells centred on
// c's cell, wrapping cell coordinates periodically. Order is row-major over
// the offsets and carries no meaning. The sequence is finite and lazy;
// stopping early is allowed.
// Complexity: O(1) per query.
func (g *Grid) Neighbors(c torus.Point) iter.Seq[int] {
	cx, cy := g.CellOf(c)

	return func(yield func(int) bool) {
		for _, d := range g.neighborOffsets {
			x := wrapIndex(cx+d[0], g.cols)
			y := wrapIndex(cy+d[1], g.rows)
			v := g.cells[g.index(x, y)]
			if v == empty {
				continue
			}
			if !yield(int(v)) {
				return
			}
		}
	}
}

// index maps (x,y) to a row-major index: y*cols + x.
func (g *Grid) index(x, y int) int {
	return y*g.cols + x
}

// Coordinate converts a row-major cell index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.cols, idx / g.cols
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}
