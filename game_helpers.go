package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/finite-gol/model"
	"github.com/sheikhrachel/finite-gol/utils"
)

// game is the state carried between frames
type game struct {
	config   utils.Config
	grid     model.Grid
	pool     *model.GridPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  *model.History
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid, err := model.Seed(config)
	if err != nil {
		return nil, err
	}

	return &game{
		config:   config,
		grid:     grid,
		pool:     pool,
		renderer: model.NewTerminalRenderer(),
		stats:    utils.NewStats(),
		history:  model.NewHistory(0),
	}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid model.Grid) {
	fmt.Printf("Features: Memory Pool: %v, Bounded: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseBoundedGrid, config.UseParallel)
	fmt.Printf("Grid: %d rows, %d cells | Initial living cells: %d\n",
		grid.Rows(), grid.CountCells(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates the game state and returns status information
func updateGameState(g *game, generation int, lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.grid.CountLivingCells()

	var density float64
	if cells := g.grid.CountCells(); cells > 0 {
		density = float64(livingCells) / float64(cells) * 100
	}

	// Update performance stats
	g.stats.Update(generation, livingCells, time.Since(lastFrameTime))
	g.stats.BoundingBoxSize = g.grid.GetBoundingBoxSize()

	// Compare against earlier generations before remembering this one
	isStagnant := g.history.IsStagnant(g.grid)
	g.history.Update(g.grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, generation, livingCells int, density float64, status string, lastRestartGen int) {
	// Show bounding box info for bounded grids
	boundingInfo := ""
	if g.config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", g.stats.BoundingBoxSize)
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		generation, livingCells, density, status, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the grid with the next seed so restarts differ
func restartGame(g *game) error {
	model.GridToPool(g.grid, g.pool)

	g.config.Seed++
	grid, err := model.Seed(g.config)
	if err != nil {
		return err
	}

	g.grid = grid
	g.history.Reset()
	fmt.Printf("New patterns loaded! Living cells: %d\n", grid.CountLivingCells())
	return nil
}

// advance replaces the grid with its next generation
func advance(g *game) {
	next := g.grid.Step(g.config, g.pool)
	model.GridToPool(g.grid, g.pool)
	g.grid = next
}
