package model

import (
	"github.com/mbarrene/tents/pkg/csp"
	"github.com/mbarrene/tents/pkg/puzzle"
)

type Placer interface {
	// Returns a tent placement if one exists, else returns nil (a valid
	// output where err shall be nil), together with the size of the
	// underlying constraint system
	Build(problem puzzle.Problem) (solution *puzzle.Solution, variables int, constraints int, err error)

	// Re-checks a placement against the puzzle rules on the raw problem
	Verify(problem puzzle.Problem, solution *puzzle.Solution) bool
}

func NewPlacer(solver csp.Solver) Placer {
	return &cspPlacer{
		solver: solver,
	}
}
