package model

import (
	"github.com/mbarrene/tents/pkg/csp"
	"github.com/mbarrene/tents/pkg/puzzle"
)

type cspPlacer struct {
	solver csp.Solver
}

func (placer *cspPlacer) Build(problem puzzle.Problem) (*puzzle.Solution, int, int, error) {
	if err := problem.Validate(); err != nil {
		return nil, 0, 0, err
	}

	//** Build constraint system
	system, gridIndexer := buildSystem(problem)

	//** Solve system
	assignment, err := placer.solver.Solve(system)
	if err != nil {
		return nil, 0, 0, err
	} else if assignment == nil { // Return nil if the system is not satisfiable
		return nil, system.Variables, len(system.Constraints), nil
	}

	//** Read tents back from the assignment
	tents := make([]puzzle.Coordinate, 0)
	for v, value := range assignment {
		if value {
			tents = append(tents, gridIndexer.Cell(csp.Var(v)))
		}
	}

	return puzzle.NewSolution(problem, tents), system.Variables, len(system.Constraints), nil
}

func (placer *cspPlacer) Verify(problem puzzle.Problem, solution *puzzle.Solution) bool {
	return verify(problem, solution)
}

// BuildSystem exposes the constraint system built for a problem, mainly for
// inspection and DIMACS export.
func BuildSystem(problem puzzle.Problem) (*csp.System, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	system, _ := buildSystem(problem)
	return system, nil
}

func buildSystem(problem puzzle.Problem) (*csp.System, indexer) {
	//** Initialize dependencies
	gridIndexer := newIndexer(problem)
	state := constraintState{
		problem: problem,
		indexer: gridIndexer,
	}

	//** Collect constraints in a fixed order
	system := &csp.System{Variables: gridIndexer.Count()}
	system.Constraints = append(system.Constraints, rowCountConstraints(state)...)
	system.Constraints = append(system.Constraints, colCountConstraints(state)...)

	pairing, contradictions := treePairingConstraints(state)
	system.Constraints = append(system.Constraints, pairing...)
	for _, reason := range contradictions {
		system.Contradict(reason)
	}

	system.Constraints = append(system.Constraints, tentSupportConstraints(state)...)
	system.Constraints = append(system.Constraints, noTouchConstraints(state)...)

	return system, gridIndexer
}
