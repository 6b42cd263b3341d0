package model

// mooreOffsets lists the eight neighbor offsets at Chebyshev distance 1
var mooreOffsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the Moore neighborhood of a cell, excluding the cell itself
func Neighbors(c Cell) [8]Cell {
	var out [8]Cell
	for i, d := range mooreOffsets {
		out[i] = c.Add(d)
	}
	return out
}

// CountLiveNeighbors counts how many of the cell's eight neighbors are in the set
func CountLiveNeighbors(c Cell, set *CellSet) int {
	count := 0
	for _, d := range mooreOffsets {
		if set.Contains(c.Add(d)) {
			count++
		}
	}
	return count
}

// CandidateCells returns every live cell together with its neighbors. These are
// the only cells whose state can change in the next generation.
func CandidateCells(alive *CellSet) *CellSet {
	candidates := &CellSet{cells: make(map[Cell]struct{}, alive.Count()*9)}
	for c := range alive.All() {
		candidates.Add(c)
		for _, d := range mooreOffsets {
			candidates.Add(c.Add(d))
		}
	}
	return candidates
}
