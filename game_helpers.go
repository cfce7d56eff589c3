package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

// game drives one grid through generations. Only the goroutine calling run
// touches the grid.
type game struct {
	config   utils.Config
	rng      *rand.Rand
	pool     *model.GridPool
	grid     *model.Grid
	history  model.History
	stats    *utils.Stats
	renderer render.Renderer
	logger   *log.Logger

	generation     int
	stagnantCount  int
	lastRestartGen int
	lastFrameTime  time.Time
}

// newGame sets up the initial game state
func newGame(config utils.Config, renderer render.Renderer, logger *log.Logger) (*game, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:        config,
		rng:           rand.New(rand.NewSource(seed)),
		stats:         utils.NewStats(),
		renderer:      renderer,
		logger:        logger,
		lastFrameTime: time.Now(),
	}
	if config.UseMemoryPool {
		g.pool = model.NewGridPool()
	}

	grid, err := g.newGrid()
	if err != nil {
		return nil, errors.Wrap(err, "[newGame]")
	}
	g.grid = grid
	g.logger.Printf("grid %dx%d seeded with %d living cells (seed %d)", config.Size, config.Size, grid.CountLivingCells(), seed)
	return g, nil
}

// newGrid builds a randomly populated grid, from the pool when one is configured
func (g *game) newGrid() (*model.Grid, error) {
	var (
		grid *model.Grid
		err  error
	)
	if g.pool != nil {
		grid, err = g.pool.Get(g.config.Size)
	} else {
		grid, err = model.NewGrid(g.config.Size)
	}
	if err != nil {
		return nil, errors.Wrap(err, "[newGrid]")
	}

	if err = model.Randomize(grid, g.config.RandomDensity, g.rng); err != nil {
		return nil, errors.Wrap(err, "[newGrid]")
	}
	if g.config.SeedPatterns {
		if err = model.Seed(grid); err != nil {
			return nil, errors.Wrap(err, "[newGrid]")
		}
	}
	return grid, nil
}

// run draws the initial generation, then steps and draws once per frame
// until ctx is done or the generation limit is reached
func (g *game) run(ctx context.Context) error {
	if err := g.frame(); err != nil {
		return err
	}

	ticker := time.NewTicker(max(g.config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		done, err := g.tick()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// tick advances the game by one generation, or restarts it, and draws the result.
// It reports true once the generation limit has been reached.
func (g *game) tick() (bool, error) {
	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		g.logger.Printf("reached maximum generations limit (%d)", g.config.MaxGenerations)
		return true, nil
	}

	shouldRestart, reason := checkRestartConditions(g.grid.CountLivingCells(), g.stagnantCount, g.config)
	if shouldRestart && g.config.AutoRestart {
		if err := g.restart(reason); err != nil {
			return false, err
		}
	} else {
		model.Step(g.grid)
	}
	g.generation++

	return false, g.frame()
}

// frame records the current generation and renders it
func (g *game) frame() error {
	if g.history.Observe(g.grid) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	now := time.Now()
	livingCells := g.grid.CountLivingCells()
	g.stats.Update(g.generation, livingCells, now.Sub(g.lastFrameTime))
	g.lastFrameTime = now

	g.renderer.Clear()
	g.renderer.Status(g.statusLines(livingCells)...)
	if err := g.renderer.Draw(g.grid); err != nil {
		return errors.Wrap(err, "[frame]")
	}
	return nil
}

// statusLines describes the current generation
func (g *game) statusLines(livingCells int) []string {
	density := float64(livingCells) / float64(g.grid.Len()) * 100

	status := "Active"
	if g.stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	lines := []string{
		fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
			g.generation, livingCells, density, status),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
			g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds()),
	}
	if g.generation > g.lastRestartGen {
		lines = append(lines, fmt.Sprintf("Generations since restart: %d", g.generation-g.lastRestartGen))
	}
	return lines
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restart replaces the grid with a freshly generated one
func (g *game) restart(reason string) error {
	model.GridToPool(g.grid, g.pool)

	grid, err := g.newGrid()
	if err != nil {
		return errors.Wrap(err, "[restart]")
	}
	g.grid = grid
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation + 1
	g.stats.Restarts++

	g.logger.Printf("restarted at generation %d due to %s, living cells: %d", g.generation, reason, grid.CountLivingCells())
	return nil
}

// close releases the grid and the display
func (g *game) close() {
	model.GridToPool(g.grid, g.pool)
	g.renderer.Close()
}
