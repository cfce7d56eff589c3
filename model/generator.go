package model

import "github.com/pkg/errors"

// DefaultProbability is the chance a cell starts alive
const DefaultProbability = 0.2

// RandSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Generate builds an n×n grid where each cell is independently alive with probability p
func Generate(n int, p float64, rng RandSource) (*Grid, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, errors.Wrap(err, "[Generate]")
	}
	if err = Randomize(g, p, rng); err != nil {
		return nil, errors.Wrap(err, "[Generate]")
	}
	return g, nil
}

// Randomize overwrites the current generation of g, drawing one value per cell in index order
func Randomize(g *Grid, p float64, rng RandSource) error {
	if p < 0 || p > 1 {
		return errors.Wrapf(ErrInvalidProbability, "[Randomize] p: %v", p)
	}
	for index := range g.current {
		g.current[index] = rng.Float64() < p
	}
	return nil
}
