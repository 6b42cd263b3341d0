package model

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// CellSet is the sparse set of live cells
type CellSet struct {
	cells map[Cell]struct{}
}

// NewCellSet creates a set holding the given cells
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Contains reports whether the cell is alive
func (s *CellSet) Contains(c Cell) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells[c]
	return ok
}

// Add marks a cell alive
func (s *CellSet) Add(c Cell) {
	if s.cells == nil {
		s.cells = make(map[Cell]struct{})
	}
	s.cells[c] = struct{}{}
}

// Remove marks a cell dead
func (s *CellSet) Remove(c Cell) {
	delete(s.cells, c)
}

// Clear removes every cell, keeping the allocated storage
func (s *CellSet) Clear() {
	clear(s.cells)
}

// Count returns the number of live cells
func (s *CellSet) Count() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// All iterates the live cells in no particular order. The set must not be
// mutated while iterating.
func (s *CellSet) All() iter.Seq[Cell] {
	if s == nil {
		return func(func(Cell) bool) {}
	}
	return maps.Keys(s.cells)
}

// Cells returns a sorted snapshot, ordered by row then column
func (s *CellSet) Cells() []Cell {
	out := slices.Collect(s.All())
	sortCells(out)
	return out
}

func sortCells(cells []Cell) {
	slices.SortFunc(cells, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}

// Clone returns an independent copy of the set
func (s *CellSet) Clone() *CellSet {
	if s == nil {
		return NewCellSet()
	}
	return &CellSet{cells: maps.Clone(s.cells)}
}

// Equal reports whether both sets hold exactly the same cells
func (s *CellSet) Equal(o *CellSet) bool {
	if s.Count() != o.Count() {
		return false
	}
	for c := range s.All() {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

// Bounds returns the inclusive bounding box of the live cells.
// ok is false for an empty set.
func (s *CellSet) Bounds() (minCell, maxCell Cell, ok bool) {
	for c := range s.All() {
		if !ok {
			minCell, maxCell, ok = c, c, true
			continue
		}
		minCell.X = min(minCell.X, c.X)
		minCell.Y = min(minCell.Y, c.Y)
		maxCell.X = max(maxCell.X, c.X)
		maxCell.Y = max(maxCell.Y, c.Y)
	}
	return
}
