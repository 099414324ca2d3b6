package csp

import "fmt"

type Solver interface {
	Solve(*System) (Assignment, error) // Returns a satisfying assignment if the system is satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// Rejects malformed systems before solving. Out-of-range variables and
// negative cardinalities are caller defects, not unsatisfiable inputs.
func checkSystem(system *System) error {
	for _, constraint := range system.Constraints {
		for _, v := range constraint.Vars() {
			if v < 0 || int(v) >= system.Variables {
				return fmt.Errorf("constraint %v references unknown variable %v", constraint, v)
			}
		}
		if exactly, ok := constraint.(Exactly); ok && exactly.N < 0 {
			return fmt.Errorf("constraint %v requires a negative cardinality", exactly)
		}
	}
	return nil
}
