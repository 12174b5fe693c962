package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/finite-gol/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Printf("Error loading configuration: %+v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	g, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Error seeding grid: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, g.grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n", generation, g.stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
			return
		default:
		}

		frameStart := time.Now()
		g.renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(g, generation, lastFrameTime)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(g, generation, livingCells, density, status, lastRestartGen)
		if err := g.renderer.Display(g.grid); err != nil {
			fmt.Printf("Error rendering grid: %v\n", err)
			return
		}

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		if shouldRestart, reason := checkRestartConditions(livingCells, stagnantCount, config); shouldRestart {
			if !config.AutoRestart {
				fmt.Printf("\nStopping due to %s\n", reason)
				return
			}
			fmt.Printf("Restarting due to %s...\n", reason)
			if err := restartGame(g); err != nil {
				fmt.Printf("Error reseeding grid: %+v\n", err)
				os.Exit(1)
			}
			lastRestartGen = generation
			stagnantCount = 0
		} else {
			advance(g)
		}

		generation++
		time.Sleep(config.FrameRate)
	}
}
