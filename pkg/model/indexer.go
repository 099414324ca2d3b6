package model

import (
	"github.com/mbarrene/tents/pkg/csp"
	"github.com/mbarrene/tents/pkg/puzzle"
)

// indexer interface gives a dense decision variable to every empty cell of a
// grid and vice versa
type indexer interface {
	// Returns the decision variable of an empty cell
	Var(c puzzle.Coordinate) csp.Var
	// Returns the cell of a decision variable
	Cell(v csp.Var) puzzle.Coordinate
	// Returns the number of decision variables
	Count() int
}

// Variables are allocated row-major over the empty cells, so repeated builds
// of the same problem produce the same system.
func newIndexer(problem puzzle.Problem) indexer {
	vars := make(map[puzzle.Coordinate]csp.Var)
	cells := make([]puzzle.Coordinate, 0)
	for i := range problem.Rows() {
		for j := range problem.Cols() {
			c := puzzle.Coordinate{Row: i, Col: j}
			if problem.At(c) == puzzle.Empty {
				vars[c] = csp.Var(len(cells))
				cells = append(cells, c)
			}
		}
	}
	return &indexerImplementation{
		vars:  vars,
		cells: cells,
	}
}
