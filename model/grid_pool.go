package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grid storage between generations.
// A grid must not be used by the caller after it is put back.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(Grid)
			},
		},
	}
}

// Get retrieves a dead grid from the pool, reshaped like shape
func (p *GridPool) Get(shape Grid) Grid {
	g := p.pool.Get().(*Grid)
	return g.Reset(shape)
}

// Put returns a grid to the pool
func (p *GridPool) Put(g Grid) {
	p.pool.Put(&g)
}
