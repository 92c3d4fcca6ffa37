package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/sheikhrachel/gameoflife/model"
	"github.com/sheikhrachel/gameoflife/utils"
)

// initialGrid loads the grid file when one is configured, otherwise fills a random grid
func initialGrid(config utils.Config, logger *slog.Logger) (*model.Grid, error) {
	if config.File != "" {
		grid, err := model.LoadFile(config.File)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded grid file", "path", config.File,
			"width", grid.Width(), "height", grid.Height())
		return grid, nil
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("generating random grid", "width", config.Width, "height", config.Height, "seed", seed)

	return model.NewRandomGrid(config.Width, config.Height, model.NewSeededRand(seed)), nil
}

// runGame displays the grid iterations times, waiting config.Delay after each frame
// and stepping between frames. It returns the last displayed generation.
func runGame(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	renderer model.Renderer,
	stats *utils.Stats,
	logger *slog.Logger,
) (*model.Grid, error) {
	lastFrameTime := time.Now()

	for generation := range config.Iterations {
		frameStart := time.Now()
		population := grid.CountLivingCells()
		stats.Update(generation, population, grid.Hash(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		renderer.Clear()
		renderer.Display(grid, stats.Status(population, grid.Width()*grid.Height()))

		if err := wait(ctx, config.Delay); err != nil {
			logger.Info("run interrupted", "generation", generation)
			return grid, err
		}

		// no step after the final display
		if generation < config.Iterations-1 {
			grid = model.StepParallel(grid, config.Workers)
		}
	}

	return grid, nil
}

// wait sleeps for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
