package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func emptyProblem(rows, cols int) Problem {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return Problem{
		RowCounts: make([]int, rows),
		ColCounts: make([]int, cols),
		Cells:     cells,
	}
}

func TestOrthogonal(t *testing.T) {
	problem := emptyProblem(3, 3)

	t.Run("interior cell has four neighbors", func(t *testing.T) {
		neighbors := problem.Orthogonal(Coordinate{1, 1})

		assert.Equal(t, []Coordinate{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, neighbors)
	})

	t.Run("corner cell keeps only in-grid neighbors", func(t *testing.T) {
		neighbors := problem.Orthogonal(Coordinate{0, 0})

		assert.Equal(t, []Coordinate{{1, 0}, {0, 1}}, neighbors)
	})
}

func TestSurrounding(t *testing.T) {
	t.Run("interior cell has eight neighbors", func(t *testing.T) {
		problem := emptyProblem(3, 3)

		neighbors := problem.Surrounding(Coordinate{1, 1})

		assert.Equal(t, []Coordinate{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}, neighbors)
	})

	t.Run("corner cell keeps only in-grid neighbors", func(t *testing.T) {
		problem := emptyProblem(2, 2)

		neighbors := problem.Surrounding(Coordinate{0, 0})

		assert.Equal(t, []Coordinate{{0, 1}, {1, 0}, {1, 1}}, neighbors)
	})
}

func TestTreesAreRowMajor(t *testing.T) {
	// Arrange
	problem := emptyProblem(2, 3)
	problem.Cells[1][0] = Tree
	problem.Cells[0][2] = Tree
	problem.Cells[0][0] = Tree

	// Act
	trees := problem.Trees()

	// Assert
	assert.Equal(t, []Coordinate{{0, 0}, {0, 2}, {1, 0}}, trees)
}

func TestValidate(t *testing.T) {
	scenarios := []struct {
		name    string
		mutate  func(problem *Problem)
		message string
	}{
		{
			name:    "empty grid",
			mutate:  func(problem *Problem) { problem.Cells = nil },
			message: "empty grid",
		},
		{
			name:    "ragged row",
			mutate:  func(problem *Problem) { problem.Cells[1] = problem.Cells[1][:1] },
			message: "not rectangular",
		},
		{
			name:    "row counts length",
			mutate:  func(problem *Problem) { problem.RowCounts = []int{1} },
			message: "row counts length",
		},
		{
			name:    "column counts length",
			mutate:  func(problem *Problem) { problem.ColCounts = []int{1, 2, 3} },
			message: "column counts length",
		},
		{
			name:    "negative row count",
			mutate:  func(problem *Problem) { problem.RowCounts[0] = -1 },
			message: "negative count",
		},
		{
			name:    "tent in the input grid",
			mutate:  func(problem *Problem) { problem.Cells[0][0] = Tent },
			message: "must be empty or a tree",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// Arrange
			problem := emptyProblem(2, 2)
			scenario.mutate(&problem)

			// Act
			err := problem.Validate()

			// Assert
			assert.NotNil(t, err)
			assert.Contains(t, err.Error(), scenario.message)
		})
	}

	t.Run("well-formed problem", func(t *testing.T) {
		problem := emptyProblem(2, 2)
		problem.Cells[0][0] = Tree

		assert.Nil(t, problem.Validate())
	})
}
