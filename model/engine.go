package model

import "github.com/sheikhrachel/go-life/rules"

// Step advances the grid by exactly one generation. Every cell of next is
// assigned from the current generation only, then the buffers are committed,
// so observers never see a half-updated grid.
func Step(g *Grid) {
	for index, alive := range g.current {
		g.next[index] = rules.Next(alive, g.countNeighbors(index))
	}
	g.Commit()
}

// Run advances the grid by the given number of generations
func Run(g *Grid, generations int) {
	for range generations {
		Step(g)
	}
}
