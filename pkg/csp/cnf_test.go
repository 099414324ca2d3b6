package csp

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestToDIMACS(t *testing.T) {
	// Arrange
	system := &System{
		Variables: 2,
		Constraints: []Constraint{
			Unit{Label: "pin", V: 0, Value: true},
			NotBoth{Label: "pair", A: 0, B: 1},
		},
	}

	// Act
	formula := system.CNF()

	// Assert
	assert.Equal(t, 2, formula.Variables)
	assert.Equal(t, "p cnf 2 2\n1 0\n-1 -2 0\n", formula.ToDIMACS())
}

func TestCNFNegatedUnit(t *testing.T) {
	// Arrange
	system := &System{
		Variables:   1,
		Constraints: []Constraint{Unit{Label: "pin", V: 0, Value: false}},
	}

	// Act
	formula := system.CNF()

	// Assert
	assert.Equal(t, [][]int{{-1}}, formula.Clauses)
}

// Exhausts every cardinality bound over small sets, including the empty set
// and bounds beyond the set size.
func TestCNFExactlyBounds(t *testing.T) {
	solver := NewGiniSolver()

	for n := 0; n <= 5; n++ {
		for k := 0; k <= n+1; k++ {
			// Arrange
			set := make([]Var, n)
			for i := range set {
				set[i] = Var(i)
			}
			system := &System{
				Variables:   max(n, 1),
				Constraints: []Constraint{Exactly{Label: "bound", Set: set, N: k}},
			}

			// Act
			assignment, err := solver.Solve(system)

			// Assert
			assert.Nil(t, err)
			if k > n {
				assert.Nil(t, assignment)
				continue
			}
			assert.NotNil(t, assignment)
			assert.True(t, AssertAssignment(system, assignment))
			trues := lo.CountBy(set, func(v Var) bool { return assignment[v] })
			assert.Equal(t, k, trues)
		}
	}
}

func TestAtMostEdgeCases(t *testing.T) {
	t.Run("negative bound yields an empty clause", func(t *testing.T) {
		formula := CNF{Variables: 2}

		formula.atMost([]int{1, 2}, -1)

		assert.Equal(t, [][]int{{}}, formula.Clauses)
	})

	t.Run("bound at the set size adds nothing", func(t *testing.T) {
		formula := CNF{Variables: 2}

		formula.atMost([]int{1, 2}, 2)

		assert.Empty(t, formula.Clauses)
		assert.Equal(t, 2, formula.Variables)
	})

	t.Run("zero bound negates every literal", func(t *testing.T) {
		formula := CNF{Variables: 3}

		formula.atMost([]int{1, 2, 3}, 0)

		assert.Equal(t, [][]int{{-1}, {-2}, {-3}}, formula.Clauses)
	})
}
