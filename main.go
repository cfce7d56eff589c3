package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "go-life: %+v\n", err)
		os.Exit(1)
	}
}

// loadConfig falls back to defaults when the file does not exist
func loadConfig(path string) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Using default configuration (%s not found)\n", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// newLogger writes to the configured log file, or to stderr unless the
// full-screen renderer owns the terminal
func newLogger(config utils.Config) (*log.Logger, io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)

	switch {
	case config.LogFile != "":
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[newLogger] failed to open log file: %+v", config.LogFile)
		}
		out, closer = f, f
	case config.Renderer == utils.RendererScreen:
		out = io.Discard
	}
	return log.New(out, "go-life ", log.LstdFlags|log.Lmsgprefix), closer, nil
}

func newRenderer(config utils.Config) (render.Renderer, error) {
	if config.Renderer == utils.RendererTerminal {
		return render.NewTerminalRenderer(os.Stdout), nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[newRenderer] failed to create screen")
	}
	layout := model.Layout{CellWidth: config.CellWidth, CellHeight: config.CellHeight}
	return render.NewScreenRenderer(screen, layout, config.GridLines)
}

func run(configPath string) error {
	config, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, logCloser, err := newLogger(config)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	renderer, err := newRenderer(config)
	if err != nil {
		return err
	}

	g, err := newGame(config, renderer, logger)
	if err != nil {
		renderer.Close()
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return g.run(ctx)
	})
	if screen, ok := renderer.(*render.ScreenRenderer); ok {
		eg.Go(func() error {
			return screen.WatchInput(ctx)
		})
	}

	err = eg.Wait()
	g.close()
	if err != nil && !errors.Is(err, render.ErrQuit) {
		return err
	}

	logger.Printf("shutting down after %d generations", g.generation)
	fmt.Printf("Final stats: %d generations in %.1f seconds, %d restarts\n",
		g.generation, g.stats.Runtime().Seconds(), g.stats.Restarts)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
	return nil
}
