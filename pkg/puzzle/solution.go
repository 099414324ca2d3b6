package puzzle

import (
	"fmt"
	"strings"
)

// Solution is a solved grid: the problem's trees plus the placed tents.
type Solution struct {
	problem Problem
	tents   map[Coordinate]bool
}

func NewSolution(problem Problem, tents []Coordinate) *Solution {
	solution := &Solution{
		problem: problem,
		tents:   make(map[Coordinate]bool),
	}
	for _, tent := range tents {
		solution.tents[tent] = true
	}
	return solution
}

func (solution *Solution) Problem() Problem {
	return solution.problem
}

// Tents returns the tent coordinates in row-major order.
func (solution *Solution) Tents() []Coordinate {
	var tents []Coordinate
	for i := range solution.problem.Rows() {
		for j := range solution.problem.Cols() {
			if solution.tents[Coordinate{i, j}] {
				tents = append(tents, Coordinate{i, j})
			}
		}
	}
	return tents
}

// At reports the solved content of a cell: the problem's tree, a placed
// tent, or empty.
func (solution *Solution) At(c Coordinate) Cell {
	if solution.problem.At(c) == Tree {
		return Tree
	}
	if solution.tents[c] {
		return Tent
	}
	return Empty
}

// String renders the solved grid with cN column headers, rN: row prefixes
// and the X/T/. legend.
func (solution *Solution) String() string {
	var builder strings.Builder
	builder.WriteString("      ")
	for j := range solution.problem.Cols() {
		builder.WriteString(center(fmt.Sprintf("c%v", j+1), 4))
	}
	builder.WriteString("\n")
	for i := range solution.problem.Rows() {
		fmt.Fprintf(&builder, "r%v: ", i+1)
		for j := range solution.problem.Cols() {
			builder.WriteString(center(solution.At(Coordinate{i, j}).String(), 4))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}
