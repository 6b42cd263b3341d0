package model

import (
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

/*
Clock owns the simulation state and advances it one generation per Tick.

Tick and Reset must be serialized by the caller. Population, Iterations and
Time are published atomically and may be read from any goroutine.
*/
type Clock struct {
	gridSize        Size
	zoneSize        Size
	reverseInterval int

	current    *CellSet
	generation int
	pool       *CellSetPool

	population atomic.Int64
	iterations atomic.Int64
	elapsed    atomic.Int64
}

// NewClock creates a clock with an empty board.
// zoneSize is kept for reporting only; zoning is driven by gridSize.
func NewClock(gridSize, zoneSize Size, reverseInterval int) (*Clock, error) {
	if reverseInterval <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[NewClock] reverse interval must be positive, got %d", reverseInterval)
	}
	return &Clock{
		gridSize:        gridSize,
		zoneSize:        zoneSize,
		reverseInterval: reverseInterval,
		current:         NewCellSet(),
		pool:            NewCellSetPool(),
	}, nil
}

// Reset clears all state and seeds the board from the pattern, centered on the origin
func (c *Clock) Reset(p Pattern) {
	seeded := c.pool.Get()
	for _, cell := range p.Seed() {
		seeded.Add(cell)
	}

	CellSetToPool(c.current, c.pool)
	c.current = seeded
	c.generation = 0

	c.population.Store(int64(seeded.Count()))
	c.iterations.Store(0)
	c.elapsed.Store(0)
}

// Tick advances exactly one generation and accounts interval of simulated time.
// The returned delta lists the cells that were born and died.
func (c *Clock) Tick(interval time.Duration) Delta {
	next, generation := Step(c.current, c.generation, c.gridSize, c.reverseInterval, c.pool)
	delta := Diff(c.current, next)

	prev := c.current
	c.current = next
	c.generation = generation
	CellSetToPool(prev, c.pool)

	c.population.Store(int64(next.Count()))
	c.iterations.Add(1)
	c.elapsed.Add(int64(interval))

	return delta
}

// Population is the number of live cells
func (c *Clock) Population() int { return int(c.population.Load()) }

// Iterations is the number of ticks since the last Reset
func (c *Clock) Iterations() int { return int(c.iterations.Load()) }

// Time is the simulated time accumulated since the last Reset
func (c *Clock) Time() time.Duration { return time.Duration(c.elapsed.Load()) }

// Generation is the generation counter used by the reversal cadence
func (c *Clock) Generation() int { return c.generation }

// GridSize returns the zoning threshold size
func (c *Clock) GridSize() Size { return c.gridSize }

// ZoneSize returns the configured zone size. It does not affect zoning.
func (c *Clock) ZoneSize() Size { return c.zoneSize }

// ReverseInterval returns the flip cadence of the special zone
func (c *Clock) ReverseInterval() int { return c.reverseInterval }

// Cells returns a sorted snapshot of the live cells
func (c *Clock) Cells() []Cell { return c.current.Cells() }

// CellSet exposes the current generation. The set is recycled on the next Tick
// or Reset and must not be retained or modified.
func (c *Clock) CellSet() *CellSet { return c.current }
