// Package world provides the star map: sectors on a hex grid, the planets in
// them, planet buildings and the governor seat of each planet.
// Uses axial coordinates (q, r) for the grid.
package world

// Coord is a sector position on the star map in axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// neighborDirections defines the six neighbor offsets in axial coordinates.
var neighborDirections = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent sectors.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, dir := range neighborDirections {
		result[i] = Coord{Q: c.Q + dir.Q, R: c.R + dir.R}
	}
	return result
}

// Distance returns the number of jumps between two sectors.
func Distance(a, b Coord) int {
	return max(abs(a.Q-b.Q), abs(a.R-b.R), abs(a.S()-b.S()))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
