package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grid buffers across restarts
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the given dimension from the pool
func (p *GridPool) Get(size int) (*Grid, error) {
	g := p.pool.Get().(*Grid)
	if err := g.Reset(size); err != nil {
		p.pool.Put(g)
		return nil, errors.Wrap(err, "[GridPool.Get]")
	}
	return g, nil
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
