package csp

import (
	"fmt"
	"math/rand/v2"
)

// GenerateSystem builds a random System mixing the three constraint kinds.
// Intended for cross-checking solver backends; variables must be at least 2.
func GenerateSystem(variables, constraints int) *System {
	system := &System{Variables: variables}

	for i := range constraints {
		switch rand.IntN(3) {
		case 0:
			set := randomSubset(variables)
			system.Constraints = append(system.Constraints, Exactly{
				Label: labelFor(i),
				Set:   set,
				N:     rand.IntN(len(set) + 1),
			})
		case 1:
			a := Var(rand.IntN(variables))
			b := Var(rand.IntN(variables))
			if a == b {
				b = Var((int(b) + 1) % variables)
			}
			system.Constraints = append(system.Constraints, NotBoth{Label: labelFor(i), A: a, B: b})
		default:
			system.Constraints = append(system.Constraints, Unit{
				Label: labelFor(i),
				V:     Var(rand.IntN(variables)),
				Value: rand.IntN(2) == 0,
			})
		}
	}
	return system
}

func labelFor(i int) string {
	return fmt.Sprintf("random %v", i)
}

func randomSubset(variables int) []Var {
	set := make([]Var, 0, variables)
	for v := range variables {
		if rand.Float32() < 0.5 {
			set = append(set, Var(v))
		}
	}
	if len(set) == 0 {
		set = append(set, Var(rand.IntN(variables)))
	}
	return set
}

// AssertAssignment checks an assignment independently of any solver: it must
// be total and satisfy every constraint of the system.
func AssertAssignment(system *System, assignment Assignment) bool {
	if len(assignment) != system.Variables {
		return false
	}
	for _, constraint := range system.Constraints {
		if !constraint.Satisfied(assignment) {
			return false
		}
	}
	return true
}

// BruteForceSatisfiable decides a system by exhaustive enumeration. Only
// usable on systems with a handful of variables; intended as a test oracle.
func BruteForceSatisfiable(system *System) bool {
	if len(system.Contradictions) > 0 {
		return false
	}

	assignment := make(Assignment, system.Variables)
	var enumerate func(v int) bool
	enumerate = func(v int) bool {
		if v == system.Variables {
			return AssertAssignment(system, assignment)
		}
		for _, value := range []bool{true, false} {
			assignment[v] = value
			if enumerate(v + 1) {
				return true
			}
		}
		return false
	}
	return enumerate(0)
}
