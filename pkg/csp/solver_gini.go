package csp

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns a Solver backed by the in-process gini SAT engine.
// The system is lowered to CNF first; auxiliary encoding variables are
// stripped from the returned assignment.
func NewGiniSolver() Solver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(system *System) (Assignment, error) {
	if err := checkSystem(system); err != nil {
		return nil, err
	}
	if len(system.Contradictions) > 0 { // Short-circuit structurally impossible systems
		return nil, nil
	}

	formula := system.CNF()
	engine := gini.New()
	for _, clause := range formula.Clauses {
		for _, literal := range clause {
			if literal > 0 {
				engine.Add(z.Var(literal).Pos())
			} else {
				engine.Add(z.Var(-literal).Neg())
			}
		}
		engine.Add(0)
	}

	if engine.Solve() != 1 { // Return nil if the formula is not satisfiable
		return nil, nil
	}

	// Variables absent from every clause are unknown to the engine; they
	// keep false.
	assignment := make(Assignment, system.Variables)
	maxVar := engine.MaxVar()
	for v := range assignment {
		if variable := z.Var(v + 1); variable <= maxVar {
			assignment[v] = engine.Value(variable.Pos())
		}
	}
	return assignment, nil
}
