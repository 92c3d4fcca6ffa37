package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A living cell survives with 2 or 3 living neighbors, a dead cell is born with exactly 3,
every other cell is dead in the next generation: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
