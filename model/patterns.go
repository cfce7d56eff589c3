package model

import "github.com/pkg/errors"

// Pattern is a set of live cells given as (row, col) offsets from an origin
type Pattern [][2]int

var (
	// Block is the 2x2 still life
	Block = Pattern{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	// Blinker is the horizontal period 2 oscillator
	Blinker = Pattern{{0, 0}, {0, 1}, {0, 2}}
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
)

// Place sets the pattern's cells alive with its origin at (row, col).
// Cells falling outside the grid are dropped.
func Place(g *Grid, p Pattern, row, col int) error {
	for _, cell := range p {
		index, err := g.Index(row+cell[0], col+cell[1])
		if err != nil {
			continue
		}
		if err = g.Set(index, true); err != nil {
			return errors.Wrap(err, "[Place]")
		}
	}
	return nil
}

type placement struct {
	pattern  Pattern
	row, col int
}

// Seed places a few well known patterns over the current generation when there is room for them
func Seed(g *Grid) error {
	n := g.Size()
	if n < 10 {
		return nil
	}

	placements := []placement{
		{Glider, 5, 5},
		{Blinker, 3 * n / 4, n / 4},
	}
	if n >= 20 {
		placements = append(placements, placement{Glider, 5, n - 8})
	}
	if n >= 30 {
		placements = append(placements, placement{Blinker, 3 * n / 4, 3 * n / 4})
	}

	for _, pl := range placements {
		if err := Place(g, pl.pattern, pl.row, pl.col); err != nil {
			return errors.Wrap(err, "[Seed]")
		}
	}
	return nil
}
