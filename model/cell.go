package model

import "fmt"

// Cell is a coordinate on the unbounded plane
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell offset by d
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the cell offset by -d
func (c Cell) Sub(d Cell) Cell {
	return Cell{X: c.X - d.X, Y: c.Y - d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Size is an integer width/height pair
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}
