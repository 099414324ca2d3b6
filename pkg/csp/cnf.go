package csp

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// CNF is a conjunctive-normal-form formula. Literals are 1-based: literal
// v+1 stands for variable v and its negation for false. Variables beyond the
// originating System's count are auxiliary encoding variables.
type CNF struct {
	Variables int
	Clauses   [][]int
}

func (f CNF) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", f.Variables, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// CNF lowers the system to clauses: Unit as a unit clause, NotBoth as a
// binary clause and Exactly as an at-most bound on the literals plus an
// at-most bound on their negations. The clause order follows the constraint
// order, so the encoding is reproducible.
func (s *System) CNF() CNF {
	formula := CNF{Variables: s.Variables}
	for _, constraint := range s.Constraints {
		switch c := constraint.(type) {
		case Unit:
			literal := literalOf(c.V)
			if !c.Value {
				literal = -literal
			}
			formula.Clauses = append(formula.Clauses, []int{literal})
		case NotBoth:
			formula.Clauses = append(formula.Clauses, []int{-literalOf(c.A), -literalOf(c.B)})
		case Exactly:
			literals := lo.Map(c.Set, func(v Var, _ int) int { return literalOf(v) })
			negated := lo.Map(literals, func(literal int, _ int) int { return -literal })
			// At most N trues, and at most len-N falses so that at least N are true
			formula.atMost(literals, c.N)
			formula.atMost(negated, len(literals)-c.N)
		}
	}
	return formula
}

func literalOf(v Var) int {
	return int(v) + 1
}

// atMost appends clauses forcing at most k of the literals to be true, using
// the sequential-counter encoding (Sinz 2005). register(i, j) reads "at
// least j+1 of the first i+1 literals are true".
func (f *CNF) atMost(literals []int, k int) {
	n := len(literals)
	if k < 0 {
		f.Clauses = append(f.Clauses, []int{}) // Unsatisfiable bound
		return
	}
	if k >= n {
		return
	}
	if k == 0 {
		for _, literal := range literals {
			f.Clauses = append(f.Clauses, []int{-literal})
		}
		return
	}

	registers := make([][]int, n-1)
	for i := range registers {
		registers[i] = make([]int, k)
		for j := range registers[i] {
			f.Variables++
			registers[i][j] = f.Variables
		}
	}

	f.Clauses = append(f.Clauses, []int{-literals[0], registers[0][0]})
	for j := 1; j < k; j++ {
		f.Clauses = append(f.Clauses, []int{-registers[0][j]})
	}
	for i := 1; i < n-1; i++ {
		f.Clauses = append(f.Clauses, []int{-literals[i], registers[i][0]})
		f.Clauses = append(f.Clauses, []int{-registers[i-1][0], registers[i][0]})
		for j := 1; j < k; j++ {
			f.Clauses = append(f.Clauses, []int{-literals[i], -registers[i-1][j-1], registers[i][j]})
			f.Clauses = append(f.Clauses, []int{-registers[i-1][j], registers[i][j]})
		}
		f.Clauses = append(f.Clauses, []int{-literals[i], -registers[i-1][k-1]})
	}
	f.Clauses = append(f.Clauses, []int{-literals[n-1], -registers[n-2][k-1]})
}
