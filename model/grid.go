package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/rules"
)

// Grid represents a rectangular game board with toroidal adjacency:
// the last row wraps to the first and the last column wraps to the
// first, so every cell has exactly eight neighbor positions.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GridFromRows builds a rectangular grid from possibly ragged rows.
// Every row is right-padded with dead cells up to the longest row's
// length, so the toroidal wrap assumption holds before evolution.
// A nil rows slice is a contract violation; an empty one is a valid
// empty grid. When pool is non-nil the backing grid is reused from it.
func GridFromRows(rows [][]bool, pool *GridPool) (*Grid, error) {
	if rows == nil {
		return nil, errors.New("[GridFromRows] rows must not be nil")
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var g *Grid
	if pool != nil {
		g = pool.Get(width, len(rows))
	} else {
		g = NewGrid(width, len(rows))
	}

	for y, row := range rows {
		for x, alive := range row {
			g.cells[y][x] = alive
		}
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			// Clear existing cells
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = false
		}
	}
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

/*
Evolve advances the grid by one generation in place.

The grid is never copied in full. For each row the live cells of the
three wrapped neighbor rows are summed per column, then each cell's
eight-neighbor count is the sum over its own and the two wrapped
adjacent columns, minus the cell itself. Only three row buffers are
kept: the next state of the previous row (flushed into the grid once
the current row has been computed and the old values are no longer
needed), the next state of the current row, and the next state of
row 0, which is held back until the last row has read row 0 as its
wrapped successor.

A single-row grid wraps onto itself vertically: the row acts as its
own predecessor and successor, so each column sum counts that row
three times. Width-1 grids likewise follow the column index wrap
literally, with the single column adjacent to itself on both sides.
*/
func (g *Grid) Evolve() {
	if g.height == 0 || g.width == 0 {
		return
	}

	var (
		firstNext = make([]bool, g.width)
		prevNext  = make([]bool, g.width)
		curNext   = make([]bool, g.width)
		colSums   = make([]int, g.width)
	)

	g.nextRow(0, colSums, firstNext)
	if g.height > 1 {
		g.nextRow(1, colSums, prevNext)
		for y := 2; y < g.height; y++ {
			g.nextRow(y, colSums, curNext)
			copy(g.cells[y-1], prevNext)
			prevNext, curNext = curNext, prevNext
		}
		copy(g.cells[g.height-1], prevNext)
	}
	copy(g.cells[0], firstNext)
}

// nextRow computes the next state of row y into dst. colSums is
// scratch space holding, per column, the live count across the three
// wrapped neighbor rows (the cell itself plus its vertical neighbors).
func (g *Grid) nextRow(y int, colSums []int, dst []bool) {
	var (
		above = g.cells[(y-1+g.height)%g.height]
		mid   = g.cells[y]
		below = g.cells[(y+1)%g.height]
	)

	for x := 0; x < g.width; x++ {
		colSums[x] = liveCount(above[x]) + liveCount(mid[x]) + liveCount(below[x])
	}

	for x := 0; x < g.width; x++ {
		neighbors := colSums[(x-1+g.width)%g.width] + colSums[x] + colSums[(x+1)%g.width]
		if mid[x] {
			neighbors--
		}
		dst[x] = rules.ApplyConwayRules(neighbors, mid[x])
	}
}

func liveCount(alive bool) int {
	if alive {
		return 1
	}
	return 0
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}
