package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ParseProblem reads the puzzle text format: the first line holds the column
// counts and every following line a row count followed by that row's cells,
// "." for empty and "T" for a tree, all whitespace-separated. Blank lines
// are skipped.
func ParseProblem(text string) (Problem, error) {
	lines := lo.Filter(strings.Split(text, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	if len(lines) < 2 {
		return Problem{}, fmt.Errorf("puzzle must have a column-count line and at least one row")
	}

	colCounts := make([]int, 0)
	for _, token := range strings.Fields(lines[0]) {
		count, err := strconv.Atoi(token)
		if err != nil {
			return Problem{}, fmt.Errorf("bad column count %q: %v", token, err)
		}
		colCounts = append(colCounts, count)
	}

	problem := Problem{ColCounts: colCounts}
	for i, line := range lines[1:] {
		tokens := strings.Fields(line)
		if len(tokens) != len(colCounts)+1 {
			return Problem{}, fmt.Errorf("bad input line for row %v (expected %v tokens): %v", i+1, len(colCounts)+1, line)
		}

		count, err := strconv.Atoi(tokens[0])
		if err != nil {
			return Problem{}, fmt.Errorf("bad row count %q: %v", tokens[0], err)
		}
		problem.RowCounts = append(problem.RowCounts, count)

		row := make([]Cell, 0, len(colCounts))
		for j, token := range tokens[1:] {
			cell, err := parseCell(token)
			if err != nil {
				return Problem{}, fmt.Errorf("row %v column %v: %v", i+1, j+1, err)
			}
			row = append(row, cell)
		}
		problem.Cells = append(problem.Cells, row)
	}

	if err := problem.Validate(); err != nil {
		return Problem{}, err
	}
	return problem, nil
}

func parseCell(token string) (Cell, error) {
	switch token {
	case ".":
		return Empty, nil
	case "T":
		return Tree, nil
	default:
		return Empty, fmt.Errorf("bad cell %q (expected \".\" or \"T\")", token)
	}
}

type rawProblem struct {
	RowCounts []int    `mapstructure:"rowCounts"`
	ColCounts []int    `mapstructure:"colCounts"`
	Grid      []string `mapstructure:"grid"`
}

// InputFromJson loads a puzzle from its JSON form: the two count arrays plus
// the grid as one string per row using the same "." and "T" legend as the
// text format.
func InputFromJson(file string) (Problem, error) {
	bytes, _ := os.ReadFile(file)
	var inputJson map[string]any
	err := json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return Problem{}, err
	}

	var raw rawProblem
	mapstructure.Decode(inputJson, &raw)

	problem := Problem{RowCounts: raw.RowCounts, ColCounts: raw.ColCounts}
	for i, line := range raw.Grid {
		row := make([]Cell, 0, len(line))
		for j, r := range []rune(line) {
			cell, err := parseCell(string(r))
			if err != nil {
				return Problem{}, fmt.Errorf("row %v column %v: %v", i+1, j+1, err)
			}
			row = append(row, cell)
		}
		problem.Cells = append(problem.Cells, row)
	}

	if err := problem.Validate(); err != nil {
		return Problem{}, err
	}
	return problem, nil
}
