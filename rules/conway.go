package rules

/*
ApplyConwayRules applies the standard B3/S23 Game of Life rule to determine the next state of a cell.

neighbors is the number of live cells among the cell's 8 toroidal neighbor positions, the cell itself excluded:
(alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
