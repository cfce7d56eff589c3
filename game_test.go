package main

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// recordingRenderer keeps a copy of every drawn generation
type recordingRenderer struct {
	frames [][]bool
	status [][]string
	closed bool
}

func (r *recordingRenderer) Clear() {}

func (r *recordingRenderer) Status(lines ...string) {
	r.status = append(r.status, lines)
}

func (r *recordingRenderer) Draw(d model.DrawData) error {
	n := d.Size()
	cells := make([]bool, n*n)
	for i := range cells {
		cells[i] = d.Alive(i)
	}
	r.frames = append(r.frames, cells)
	return nil
}

func (r *recordingRenderer) Close() { r.closed = true }

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Size = 8
	config.Seed = 1
	config.FrameRate = time.Millisecond
	config.Renderer = utils.RendererTerminal
	return config
}

func newTestGame(t *testing.T, config utils.Config) (*game, *recordingRenderer) {
	t.Helper()
	r := &recordingRenderer{}
	g, err := newGame(config, r, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	return g, r
}

func countLive(cells []bool) (n int) {
	for _, alive := range cells {
		if alive {
			n++
		}
	}
	return
}

func TestGameRunStopsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 5
	config.AutoRestart = false
	g, r := newTestGame(t, config)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	if g.generation != 5 {
		t.Errorf("generation = %d, want 5", g.generation)
	}
	// the initial generation plus one frame per step
	if len(r.frames) != 6 {
		t.Errorf("drew %d frames, want 6", len(r.frames))
	}

	g.close()
	if !r.closed {
		t.Error("close did not close the renderer")
	}
}

func TestGameTickSteps(t *testing.T) {
	config := testConfig()
	config.RandomDensity = 0
	config.AutoRestart = false
	g, r := newTestGame(t, config)

	if err := model.Place(g.grid, model.Blinker, 3, 2); err != nil {
		t.Fatalf("Place: %v", err)
	}
	horizontal := g.grid.Cells()

	for range 2 {
		if _, err := g.tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}

	if len(r.frames) != 2 {
		t.Fatalf("drew %d frames, want 2", len(r.frames))
	}
	vertical := r.frames[0]
	if countLive(vertical) != 3 || !vertical[2*8+3] || !vertical[4*8+3] {
		t.Errorf("first frame is not the vertical blinker: %v", vertical)
	}
	for i, alive := range r.frames[1] {
		if alive != horizontal[i] {
			t.Fatalf("second frame differs from the horizontal blinker at %d", i)
		}
	}
}

func TestGameRestartsOnExtinction(t *testing.T) {
	config := testConfig()
	config.RandomDensity = 0.5
	g, r := newTestGame(t, config)

	g.grid.Clear()
	if _, err := g.tick(); err != nil {
		t.Fatalf("tick: %v", err)
	}

	if g.stats.Restarts != 1 {
		t.Errorf("Restarts = %d, want 1", g.stats.Restarts)
	}
	if countLive(r.frames[0]) == 0 {
		t.Error("restarted grid has no living cells")
	}
	if g.lastRestartGen != g.generation {
		t.Errorf("lastRestartGen = %d, want %d", g.lastRestartGen, g.generation)
	}
}

func TestGameRestartsOnStagnation(t *testing.T) {
	config := testConfig()
	config.RandomDensity = 0
	config.StagnationThreshold = 2
	g, _ := newTestGame(t, config)

	if err := model.Place(g.grid, model.Block, 3, 3); err != nil {
		t.Fatalf("Place: %v", err)
	}

	// the block repeats from the second tick on, reaching the threshold on the third
	for range 4 {
		if _, err := g.tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if g.stats.Restarts != 1 {
		t.Errorf("Restarts = %d, want 1", g.stats.Restarts)
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	tests := []struct {
		name          string
		living        int
		stagnantCount int
		want          bool
		reason        string
	}{
		{"extinct", 0, 0, true, "extinction"},
		{"stagnant", 10, config.StagnationThreshold, true, "stagnation detected"},
		{"active", 10, config.StagnationThreshold - 1, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := checkRestartConditions(tt.living, tt.stagnantCount, config)
			if got != tt.want || reason != tt.reason {
				t.Errorf("checkRestartConditions = (%v, %q), want (%v, %q)", got, reason, tt.want, tt.reason)
			}
		})
	}
}
