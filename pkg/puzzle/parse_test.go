package puzzle

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProblem(t *testing.T) {
	// Arrange
	text := `
0 1

1 T .
0 . .
`

	// Act
	problem, err := ParseProblem(text)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, []int{1, 0}, problem.RowCounts)
	assert.Equal(t, []int{0, 1}, problem.ColCounts)
	assert.Equal(t, [][]Cell{{Tree, Empty}, {Empty, Empty}}, problem.Cells)
}

func TestParseProblemRejectsMalformedInput(t *testing.T) {
	scenarios := []struct {
		name    string
		text    string
		message string
	}{
		{
			name:    "empty input",
			text:    "\n\n",
			message: "column-count line",
		},
		{
			name:    "non-numeric column count",
			text:    "a 1\n1 T .",
			message: "bad column count",
		},
		{
			name:    "non-numeric row count",
			text:    "0 1\nx T .",
			message: "bad row count",
		},
		{
			name:    "missing cells",
			text:    "0 1\n1 T",
			message: "expected 3 tokens",
		},
		{
			name:    "unknown cell token",
			text:    "0 1\n1 T Q",
			message: "bad cell",
		},
		{
			name:    "negative column count",
			text:    "0 -1\n1 T .",
			message: "negative count",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			// Act
			_, err := ParseProblem(scenario.text)

			// Assert
			assert.NotNil(t, err)
			assert.Contains(t, err.Error(), scenario.message)
		})
	}
}

func TestInputFromJson(t *testing.T) {
	// Arrange
	file := path.Join(t.TempDir(), "puzzle.json")
	content := `{
		"rowCounts": [1, 0],
		"colCounts": [0, 1],
		"grid": ["T.", ".."]
	}`
	err := os.WriteFile(file, []byte(content), 0644)
	assert.Nil(t, err)

	// Act
	problem, err := InputFromJson(file)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, []int{1, 0}, problem.RowCounts)
	assert.Equal(t, []int{0, 1}, problem.ColCounts)
	assert.Equal(t, [][]Cell{{Tree, Empty}, {Empty, Empty}}, problem.Cells)
}

func TestInputFromJsonRejectsMalformedInput(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := InputFromJson(path.Join(t.TempDir(), "absent.json"))

		assert.NotNil(t, err)
	})

	t.Run("grid and counts disagree", func(t *testing.T) {
		// Arrange
		file := path.Join(t.TempDir(), "puzzle.json")
		content := `{"rowCounts": [1], "colCounts": [0, 1], "grid": ["T.", ".."]}`
		err := os.WriteFile(file, []byte(content), 0644)
		assert.Nil(t, err)

		// Act
		_, err = InputFromJson(file)

		// Assert
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "row counts length")
	})

	t.Run("unknown cell rune", func(t *testing.T) {
		// Arrange
		file := path.Join(t.TempDir(), "puzzle.json")
		content := `{"rowCounts": [1, 0], "colCounts": [0, 1], "grid": ["T?", ".."]}`
		err := os.WriteFile(file, []byte(content), 0644)
		assert.Nil(t, err)

		// Act
		_, err = InputFromJson(file)

		// Assert
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "bad cell")
	})
}
