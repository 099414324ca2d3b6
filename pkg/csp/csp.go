package csp

import "fmt"

// Var identifies a boolean decision variable within a System. Variables are
// dense indices in [0, System.Variables).
type Var int

// Assignment holds one boolean value per variable, indexed by Var.
type Assignment []bool

// Constraint is a logical condition over a subset of a System's variables.
type Constraint interface {
	// Returns the variables the constraint ranges over
	Vars() []Var
	// Evaluates the constraint under a complete assignment
	Satisfied(assignment Assignment) bool
	// Returns a diagnostic description prefixed by the constraint's label
	String() string
}

// Exactly requires exactly N variables of Set to be true. It carries the
// per-row and per-column tent counts and the one-tent-per-tree rule.
type Exactly struct {
	Label string
	Set   []Var
	N     int
}

func (c Exactly) Vars() []Var { return c.Set }

func (c Exactly) Satisfied(assignment Assignment) bool {
	trues := 0
	for _, v := range c.Set {
		if assignment[v] {
			trues++
		}
	}
	return trues == c.N
}

func (c Exactly) String() string {
	return fmt.Sprintf("%v: exactly %v of %v", c.Label, c.N, c.Set)
}

// NotBoth forbids A and B from being true simultaneously.
type NotBoth struct {
	Label string
	A, B  Var
}

func (c NotBoth) Vars() []Var { return []Var{c.A, c.B} }

func (c NotBoth) Satisfied(assignment Assignment) bool {
	return !assignment[c.A] || !assignment[c.B]
}

func (c NotBoth) String() string {
	return fmt.Sprintf("%v: not both %v and %v", c.Label, c.A, c.B)
}

// Unit pins V to Value.
type Unit struct {
	Label string
	V     Var
	Value bool
}

func (c Unit) Vars() []Var { return []Var{c.V} }

func (c Unit) Satisfied(assignment Assignment) bool { return assignment[c.V] == c.Value }

func (c Unit) String() string {
	return fmt.Sprintf("%v: %v must be %v", c.Label, c.V, c.Value)
}

// System is an ordered collection of constraints over boolean variables.
// Contradictions lists structural impossibilities found while the system was
// built; a non-empty list makes the system unsatisfiable without any search.
type System struct {
	Variables      int
	Constraints    []Constraint
	Contradictions []string
}

func (s *System) Contradict(reason string) {
	s.Contradictions = append(s.Contradictions, reason)
}
