package model

import (
	"crypto/md5"
	"fmt"
)

// Grid is a dense, fixed-size board of cells stored in row-major order.
// A cell is alive when its value is true.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a grid of dead cells with the specified dimensions
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// index maps (row i, column j) onto the flat cell slice.
func (g *Grid) index(i, j int) int {
	if i < 0 || i >= g.height || j < 0 || j >= g.width {
		panic(fmt.Sprintf("model: cell (%d, %d) out of range for %dx%d grid", i, j, g.width, g.height))
	}
	return i*g.width + j
}

// Get returns the state of the cell at row i, column j
func (g *Grid) Get(i, j int) bool {
	return g.cells[g.index(i, j)]
}

// Set sets the cell at row i, column j to alive (true) or dead (false)
func (g *Grid) Set(i, j int, alive bool) {
	g.cells[g.index(i, j)] = alive
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for idx, alive := range g.cells {
		if other.cells[idx] != alive {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the grid state, used to spot repeated generations
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for idx, alive := range g.cells {
		if alive {
			buf[idx] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the rows using the description markers, one row per line
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for i := range g.height {
		for j := range g.width {
			if g.cells[i*g.width+j] {
				buf = append(buf, AliveMarker)
			} else {
				buf = append(buf, DeadMarker)
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
