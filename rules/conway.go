package rules

/*
ApplyConwayRules applies the standard B3/S23 rule to a single cell.

A dead cell with exactly three live neighbors is born, a live cell with two or
three live neighbors survives, and every other cell is dead next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
