package model

import (
	"github.com/sheikhrachel/zonelife/rules"
)

// Step computes the next generation from current without modifying it.
//
// The generation counter is advanced before any rule is applied, so the
// reversal cadence is tested against the new generation number. Every
// neighbor count is read from current, giving synchronous update semantics.
// When pool is non-nil the returned set is drawn from it.
func Step(current *CellSet, generation int, gridSize Size, reverseInterval int, pool *CellSetPool) (*CellSet, int) {
	if reverseInterval <= 0 {
		panic("model: reverse interval must be positive")
	}

	generation++

	var next *CellSet
	if pool != nil {
		next = pool.Get()
	} else {
		next = NewCellSet()
	}

	for c := range CandidateCells(current).All() {
		alive := current.Contains(c)
		neighbors := CountLiveNeighbors(c, current)
		zone := rules.Classify(c.X, c.Y, gridSize.W, gridSize.H)

		if rules.NextState(alive, neighbors, zone, generation, reverseInterval) {
			next.Add(c)
		}
	}

	return next, generation
}

// Delta lists the cells that changed between two generations
type Delta struct {
	Born []Cell
	Died []Cell
}

// Empty reports whether nothing changed
func (d Delta) Empty() bool {
	return len(d.Born) == 0 && len(d.Died) == 0
}

// Diff reports which cells became alive and which died going from prev to next
func Diff(prev, next *CellSet) Delta {
	var d Delta
	for c := range next.All() {
		if !prev.Contains(c) {
			d.Born = append(d.Born, c)
		}
	}
	for c := range prev.All() {
		if !next.Contains(c) {
			d.Died = append(d.Died, c)
		}
	}
	sortCells(d.Born)
	sortCells(d.Died)
	return d
}
