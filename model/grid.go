package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is the N×N board. It owns two row-major buffers: current is read
// when producing the next generation and when rendering, next is scratch
// space written by a step and promoted by Commit.
type Grid struct {
	size    int
	current []bool
	next    []bool
}

// NewGrid creates an all-dead grid with the given dimension
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] size: %d", size)
	}
	cells := size * size
	return &Grid{
		size:    size,
		current: make([]bool, cells),
		next:    make([]bool, cells),
	}, nil
}

// Size returns the grid dimension N
func (g *Grid) Size() int {
	return g.size
}

// Len returns the number of cells, N²
func (g *Grid) Len() int {
	return len(g.current)
}

func (g *Grid) checkIndex(index int) error {
	if index < 0 || index >= len(g.current) {
		return errors.Wrapf(ErrOutOfRange, "index %d not in [0, %d)", index, len(g.current))
	}
	return nil
}

// Get returns the current state of a cell
func (g *Grid) Get(index int) (bool, error) {
	if err := g.checkIndex(index); err != nil {
		return false, errors.Wrap(err, "[Get]")
	}
	return g.current[index], nil
}

// Alive returns the current state of a cell, panicking on a bad index.
// Renderers and the engine use it where the index comes from ranging the grid.
func (g *Grid) Alive(index int) bool {
	if err := g.checkIndex(index); err != nil {
		panic(errors.Wrap(err, "[Alive]"))
	}
	return g.current[index]
}

// Set writes a cell of the current generation. It is meant for seeding the
// grid, never for use while a step is in progress.
func (g *Grid) Set(index int, alive bool) error {
	if err := g.checkIndex(index); err != nil {
		return errors.Wrap(err, "[Set]")
	}
	g.current[index] = alive
	return nil
}

// SetNext writes a cell of the scratch buffer
func (g *Grid) SetNext(index int, alive bool) error {
	if err := g.checkIndex(index); err != nil {
		return errors.Wrap(err, "[SetNext]")
	}
	g.next[index] = alive
	return nil
}

// Commit promotes the scratch buffer to the current generation.
// The buffers are swapped, so callers must assign every cell of next
// before the following Commit.
func (g *Grid) Commit() {
	g.current, g.next = g.next, g.current
}

// Index maps a (row, col) pair to its row-major cell index
func (g *Grid) Index(row, col int) (int, error) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return 0, errors.Wrapf(ErrOutOfRange, "[Index] row %d col %d on %dx%d grid", row, col, g.size, g.size)
	}
	return row*g.size + col, nil
}

// Coords maps a cell index to its (row, col) pair
func (g *Grid) Coords(index int) (row, col int) {
	return index / g.size, index % g.size
}

// Cells returns a copy of the current generation
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.current))
	copy(out, g.current)
	return out
}

// Load replaces the current generation with cells, which must hold exactly N² values
func (g *Grid) Load(cells []bool) error {
	if len(cells) != len(g.current) {
		return errors.Wrapf(ErrOutOfRange, "[Load] got %d cells, want %d", len(cells), len(g.current))
	}
	copy(g.current, cells)
	return nil
}

// Clear kills every cell in both buffers
func (g *Grid) Clear() {
	clear(g.current)
	clear(g.next)
}

// Reset resizes the grid to a new dimension and clears it
func (g *Grid) Reset(size int) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "[Reset] size: %d", size)
	}
	cells := size * size
	g.size = size
	if cap(g.current) < cells || cap(g.next) < cells {
		g.current = make([]bool, cells)
		g.next = make([]bool, cells)
		return nil
	}
	g.current = g.current[:cells]
	g.next = g.next[:cells]
	g.Clear()
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.current {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.current))
	for i, alive := range g.current {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
