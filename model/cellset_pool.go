package model

import "sync"

// CellSetToPool returns a set to the pool for reuse
func CellSetToPool(set *CellSet, pool *CellSetPool) {
	if pool == nil || set == nil {
		return
	}

	pool.Put(set)
}

// CellSetPool recycles the map storage of retired generations
type CellSetPool struct {
	pool sync.Pool
}

func NewCellSetPool() *CellSetPool {
	return &CellSetPool{
		pool: sync.Pool{
			New: func() any {
				return NewCellSet()
			},
		},
	}
}

// Get retrieves an empty set from the pool
func (p *CellSetPool) Get() *CellSet {
	return p.pool.Get().(*CellSet)
}

// Put returns a set to the pool, clearing its state
func (p *CellSetPool) Put(s *CellSet) {
	s.Clear()
	p.pool.Put(s)
}
