package model

import (
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gameoflife/rules"
)

// CountNeighbors counts living neighbors of the cell at row i, column j.
// Positions beyond the grid edge do not exist and add nothing to the count.
func (g *Grid) CountNeighbors(i, j int) int {
	count := 0

	minRow := max(0, i-1)
	maxRow := min(g.height-1, i+1)
	minCol := max(0, j-1)
	maxCol := min(g.width-1, j+1)

	for r := minRow; r <= maxRow; r++ {
		row := g.cells[r*g.width : (r+1)*g.width]
		for c := minCol; c <= maxCol; c++ {
			if r == i && c == j {
				continue
			}
			if row[c] {
				count++
			}
		}
	}

	return count
}

// Step computes the next generation into a new grid. The current grid is only read.
func Step(current *Grid) *Grid {
	next := NewGrid(current.width, current.height)
	current.evolveRows(next, 0, current.height)
	return next
}

// StepParallel computes the same generation as Step with rows split across workers
func StepParallel(current *Grid, workers int) *Grid {
	if workers <= 1 || current.height < 2 {
		return Step(current)
	}
	workers = min(workers, current.height)

	var (
		eg            errgroup.Group
		next          = NewGrid(current.width, current.height)
		rowsPerWorker = (current.height + workers - 1) / workers // Ceiling division
	)

	for w := range workers {
		var (
			startRow = w * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, current.height)
		)
		if startRow >= current.height {
			break
		}

		eg.Go(func() error {
			current.evolveRows(next, startRow, endRow)
			return nil
		})
	}

	// workers never fail, Wait only joins them
	_ = eg.Wait()

	return next
}

// evolveRows writes rows [startRow, endRow) of the next generation into next.
func (g *Grid) evolveRows(next *Grid, startRow, endRow int) {
	for i := startRow; i < endRow; i++ {
		for j := range g.width {
			idx := i*g.width + j
			next.cells[idx] = rules.ApplyConwayRules(g.CountNeighbors(i, j), g.cells[idx])
		}
	}
}
