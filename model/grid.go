package model

import (
	"crypto/md5"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/finite-gol/rules"
	"github.com/sheikhrachel/finite-gol/utils"
)

// Grid is a finite, non-wrapping board stored row-major.
// Rows may differ in length; every row is bounded by its own length.
type Grid [][]CellState

// Bounds is an inclusive rectangle of rows and columns
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// NewGrid creates a rectangular grid of dead cells
func NewGrid(rows, cols int) Grid {
	g := make(Grid, max(rows, 0))
	for i := range g {
		g[i] = make([]CellState, max(cols, 0))
	}
	return g
}

// NewGridShaped creates a grid of dead cells with the same shape as shape
func NewGridShaped(shape Grid) Grid {
	g := make(Grid, len(shape))
	for i, row := range shape {
		g[i] = make([]CellState, len(row))
	}
	return g
}

// Rows returns the number of rows
func (g Grid) Rows() int {
	return len(g)
}

// Contains reports whether the coordinates address a cell of the grid.
// The column is checked against the length of the addressed row.
func (g Grid) Contains(c Coordinates) bool {
	return c.Row >= 0 && c.Row < len(g) && c.Col >= 0 && c.Col < len(g[c.Row])
}

// Get returns the state of a cell, or Dead outside the grid
func (g Grid) Get(row, col int) CellState {
	if !g.Contains(Coordinates{Row: row, Col: col}) {
		return Dead
	}
	return g[row][col]
}

// Set sets the state of a cell; writes outside the grid are ignored
func (g Grid) Set(row, col int, state CellState) {
	if g.Contains(Coordinates{Row: row, Col: col}) {
		g[row][col] = state
	}
}

// Clear kills every cell
func (g Grid) Clear() {
	for _, row := range g {
		clear(row)
	}
}

// Reset returns a dead grid shaped like shape, reusing g's storage where it is large enough
func (g Grid) Reset(shape Grid) Grid {
	if cap(g) < len(shape) {
		g = make(Grid, len(shape))
	} else {
		g = g[:len(shape)]
	}
	for i, row := range shape {
		if cap(g[i]) < len(row) {
			g[i] = make([]CellState, len(row))
			continue
		}
		g[i] = g[i][:len(row)]
		clear(g[i])
	}
	return g
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = append([]CellState(nil), row...)
	}
	return c
}

// SameShape reports whether both grids have the same row count and row lengths
func (g Grid) SameShape(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether both grids have the same shape and cell states
func (g Grid) Equal(other Grid) bool {
	if !g.SameShape(other) {
		return false
	}
	for i, row := range g {
		for j, cell := range row {
			if other[i][j] != cell {
				return false
			}
		}
	}
	return true
}

// Neighbors returns the in-grid positions around c
func (g Grid) Neighbors(c Coordinates) []Coordinates {
	neighbors := make([]Coordinates, 0, len(neighborShifts))
	for _, shift := range neighborShifts {
		if n := c.Apply(shift); g.Contains(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// LiveNeighbors counts the live cells among the in-grid positions around c
func (g Grid) LiveNeighbors(c Coordinates) (count int) {
	for _, shift := range neighborShifts {
		if n := c.Apply(shift); g.Contains(n) && g[n.Row][n.Col] == Alive {
			count++
		}
	}
	return
}

// nextState evaluates the rules for one cell against the current snapshot
func (g Grid) nextState(c Coordinates) CellState {
	return StateOf(rules.ApplyConwayRules(g.LiveNeighbors(c), g[c.Row][c.Col].IsAlive()))
}

// evolveRow writes the next state of every cell in row r into next
func (g Grid) evolveRow(next Grid, r int) {
	for c := range g[r] {
		next[r][c] = g.nextState(Coordinates{Row: r, Col: c})
	}
}

// blank returns a dead grid shaped like g, from the pool when one is given
func (g Grid) blank(pool *GridPool) Grid {
	if pool != nil {
		return pool.Get(g)
	}
	return NewGridShaped(g)
}

// ComputeNextGeneration returns the generation following grid.
// The input is never modified and the result has the same shape.
func ComputeNextGeneration(grid Grid) Grid {
	return grid.NextGeneration()
}

// NextGeneration calculates the next generation one row at a time
func (g Grid) NextGeneration() Grid {
	return g.evolveInto(NewGridShaped(g))
}

func (g Grid) evolveInto(next Grid) Grid {
	for r := range g {
		g.evolveRow(next, r)
	}
	return next
}

// NextGenerationParallel calculates the next generation using parallel processing
func (g Grid) NextGenerationParallel(pool *GridPool) Grid {
	next := g.blank(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (len(g) + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, len(g))
		)
		if startRow >= len(g) {
			break
		}

		eg.Go(func() error {
			for r := startRow; r < endRow; r++ {
				g.evolveRow(next, r)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	return next
}

// NextGenerationBounded calculates next generation only around the live cells
func (g Grid) NextGenerationBounded(pool *GridPool) Grid {
	next := g.blank(pool)

	bounds, ok := g.ActiveBounds()
	if !ok {
		return next
	}

	// Anything further than one cell from a live cell has no live neighbors
	minRow := max(0, bounds.MinRow-1)
	maxRow := min(len(g)-1, bounds.MaxRow+1)

	for r := minRow; r <= maxRow; r++ {
		maxCol := min(len(g[r])-1, bounds.MaxCol+1)
		for c := max(0, bounds.MinCol-1); c <= maxCol; c++ {
			next[r][c] = g.nextState(Coordinates{Row: r, Col: c})
		}
	}

	return next
}

// Step calculates the next generation with the strategy selected by config
func (g Grid) Step(config utils.Config, pool *GridPool) Grid {
	switch {
	case config.UseBoundedGrid:
		return g.NextGenerationBounded(pool)
	case config.UseParallel:
		return g.NextGenerationParallel(pool)
	default:
		return g.evolveInto(g.blank(pool))
	}
}

// ActiveBounds returns the smallest rectangle holding every live cell
func (g Grid) ActiveBounds() (b Bounds, ok bool) {
	for r, row := range g {
		for c, cell := range row {
			if cell != Alive {
				continue
			}
			if !ok {
				b = Bounds{MinRow: r, MaxRow: r, MinCol: c, MaxCol: c}
				ok = true
				continue
			}
			b.MinRow = min(b.MinRow, r)
			b.MaxRow = max(b.MaxRow, r)
			b.MinCol = min(b.MinCol, c)
			b.MaxCol = max(b.MaxCol, c)
		}
	}
	return
}

// GetBoundingBoxSize returns the size of the active region
func (g Grid) GetBoundingBoxSize() int {
	b, ok := g.ActiveBounds()
	if !ok {
		return 0
	}
	return (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
}

// CountCells returns the total number of cells
func (g Grid) CountCells() (count int) {
	for _, row := range g {
		count += len(row)
	}
	return
}

// CountLivingCells returns the total number of living cells
func (g Grid) CountLivingCells() (count int) {
	for _, row := range g {
		for _, cell := range row {
			if cell == Alive {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the grid's shape and state
func (g Grid) GetGridHash() string {
	h := md5.New()
	for _, row := range g {
		h.Write(strconv.AppendInt(nil, int64(len(row)), 10))
		h.Write([]byte{':'})
		for _, cell := range row {
			h.Write([]byte{byte(cell)})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
