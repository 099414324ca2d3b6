package puzzle

import (
	"fmt"

	"github.com/samber/lo"
)

// Cell is the content of one grid position.
type Cell int

const (
	Empty Cell = iota
	Tree
	Tent
)

func (cell Cell) String() string {
	switch cell {
	case Tree:
		return "T"
	case Tent:
		return "X"
	default:
		return "."
	}
}

// Coordinate addresses a grid cell by zero-based row and column.
type Coordinate struct {
	Row int
	Col int
}

// Problem is a parsed puzzle: the grid plus the required tent count for
// every row and column. Cells hold only Empty and Tree; Tent appears in
// solutions, never in problems.
type Problem struct {
	RowCounts []int
	ColCounts []int
	Cells     [][]Cell
}

func (problem Problem) Rows() int {
	return len(problem.Cells)
}

func (problem Problem) Cols() int {
	if len(problem.Cells) == 0 {
		return 0
	}
	return len(problem.Cells[0])
}

func (problem Problem) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < problem.Rows() && c.Col >= 0 && c.Col < problem.Cols()
}

func (problem Problem) At(c Coordinate) Cell {
	return problem.Cells[c.Row][c.Col]
}

// Trees returns the tree coordinates in row-major order.
func (problem Problem) Trees() []Coordinate {
	var trees []Coordinate
	for i, row := range problem.Cells {
		for j, cell := range row {
			if cell == Tree {
				trees = append(trees, Coordinate{i, j})
			}
		}
	}
	return trees
}

// Orthogonal returns the up/down/left/right neighbors of c that fall inside
// the grid.
func (problem Problem) Orthogonal(c Coordinate) []Coordinate {
	candidates := []Coordinate{
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	}
	return lo.Filter(candidates, func(neighbor Coordinate, _ int) bool {
		return problem.Contains(neighbor)
	})
}

// Surrounding returns the neighbors of c within Chebyshev distance 1
// (orthogonal and diagonal) that fall inside the grid.
func (problem Problem) Surrounding(c Coordinate) []Coordinate {
	var candidates []Coordinate
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			candidates = append(candidates, Coordinate{c.Row + di, c.Col + dj})
		}
	}
	return lo.Filter(candidates, func(neighbor Coordinate, _ int) bool {
		return problem.Contains(neighbor)
	})
}

// Validate checks the structural shape of the problem: a non-empty
// rectangular grid of Empty and Tree cells with count arrays matching the
// dimensions and no negative counts. Whether the counts are achievable is
// left to the solver.
func (problem Problem) Validate() error {
	if problem.Rows() == 0 || problem.Cols() == 0 {
		return fmt.Errorf("empty grid")
	}
	for i, row := range problem.Cells {
		if len(row) != problem.Cols() {
			return fmt.Errorf("grid is not rectangular: row %v has %v cells, expected %v", i+1, len(row), problem.Cols())
		}
	}
	if len(problem.RowCounts) != problem.Rows() {
		return fmt.Errorf("row counts length %v does not match %v rows", len(problem.RowCounts), problem.Rows())
	}
	if len(problem.ColCounts) != problem.Cols() {
		return fmt.Errorf("column counts length %v does not match %v columns", len(problem.ColCounts), problem.Cols())
	}
	for i, count := range problem.RowCounts {
		if count < 0 {
			return fmt.Errorf("negative count %v for row %v", count, i+1)
		}
	}
	for j, count := range problem.ColCounts {
		if count < 0 {
			return fmt.Errorf("negative count %v for column %v", count, j+1)
		}
	}
	for i, row := range problem.Cells {
		for j, cell := range row {
			if cell != Empty && cell != Tree {
				return fmt.Errorf("cell (%v, %v) must be empty or a tree", i+1, j+1)
			}
		}
	}
	return nil
}
