package model

import (
	"math/rand"

	"github.com/sheikhrachel/finite-gol/utils"
)

// Randomize fills the grid with living cells at the given density
func (g Grid) Randomize(rng *rand.Rand, density float64) {
	for r, row := range g {
		for c := range row {
			g[r][c] = StateOf(rng.Float64() < density)
		}
	}
}

// Stamp copies pattern into g with its top-left corner at (startRow, startCol).
// Dead pattern cells are copied too; parts falling outside g are dropped.
func (g Grid) Stamp(pattern Grid, startRow, startCol int) {
	for r, row := range pattern {
		for c, cell := range row {
			g.Set(startRow+r, startCol+c, cell)
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g Grid) AddGlider(startRow, startCol int) {
	g.Stamp(Grid{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}, startRow, startCol)
}

// AddOscillator adds a horizontal blinker at the specified position
func (g Grid) AddOscillator(startRow, startCol int) {
	g.Stamp(Grid{{Alive, Alive, Alive}}, startRow, startCol)
}

// Seed builds the initial grid described by config
func Seed(config utils.Config) (Grid, error) {
	if config.PatternFile != "" {
		return LoadPattern(config.PatternFile)
	}

	var (
		g   = NewGrid(config.Rows, config.Cols)
		rng = rand.New(rand.NewSource(config.Seed))
	)

	switch config.Pattern {
	case utils.PatternGlider:
		g.AddGlider(1, 1)
	case utils.PatternBlinker:
		g.AddOscillator(config.Rows/2, config.Cols/2-1)
	case utils.PatternRandom:
		g.Randomize(rng, config.RandomDensity)
	default:
		g.Randomize(rng, config.RandomDensity)
		seedInterestingPatterns(g, config.Rows, config.Cols)
	}
	return g, nil
}

// seedInterestingPatterns adds gliders and oscillators on top of random life
func seedInterestingPatterns(g Grid, rows, cols int) {
	if rows < 10 || cols < 10 {
		return
	}

	g.AddGlider(5, 5)
	if cols >= 20 && rows >= 15 {
		g.AddGlider(5, cols-8)
	}

	g.AddOscillator(rows/4, cols/4)
	if cols >= 30 {
		g.AddOscillator(3*rows/4, 3*cols/4)
	}
}
