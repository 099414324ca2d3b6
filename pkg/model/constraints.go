package model

import (
	"fmt"

	"github.com/mbarrene/tents/pkg/csp"
	"github.com/mbarrene/tents/pkg/puzzle"
	"github.com/samber/lo"
)

type constraintState struct {
	problem puzzle.Problem
	indexer indexer
}

// Exactly rowCounts[i] tents among the empty cells of each row i
func rowCountConstraints(state constraintState) []csp.Constraint {
	constraints := make([]csp.Constraint, 0, state.problem.Rows())
	for i := range state.problem.Rows() {
		set := make([]csp.Var, 0)
		for j := range state.problem.Cols() {
			c := puzzle.Coordinate{Row: i, Col: j}
			if state.problem.At(c) == puzzle.Empty {
				set = append(set, state.indexer.Var(c))
			}
		}
		constraints = append(constraints, csp.Exactly{
			Label: fmt.Sprintf("row %v", i+1),
			Set:   set,
			N:     state.problem.RowCounts[i],
		})
	}
	return constraints
}

// Exactly colCounts[j] tents among the empty cells of each column j
func colCountConstraints(state constraintState) []csp.Constraint {
	constraints := make([]csp.Constraint, 0, state.problem.Cols())
	for j := range state.problem.Cols() {
		set := make([]csp.Var, 0)
		for i := range state.problem.Rows() {
			c := puzzle.Coordinate{Row: i, Col: j}
			if state.problem.At(c) == puzzle.Empty {
				set = append(set, state.indexer.Var(c))
			}
		}
		constraints = append(constraints, csp.Exactly{
			Label: fmt.Sprintf("column %v", j+1),
			Set:   set,
			N:     state.problem.ColCounts[j],
		})
	}
	return constraints
}

// Exactly one tent among the empty orthogonal neighbors of each tree. A tree
// with no empty orthogonal neighbor cannot be paired at all, which is
// reported as a contradiction instead of a constraint.
func treePairingConstraints(state constraintState) (constraints []csp.Constraint, contradictions []string) {
	for _, tree := range state.problem.Trees() {
		neighbors := lo.Filter(state.problem.Orthogonal(tree), func(neighbor puzzle.Coordinate, _ int) bool {
			return state.problem.At(neighbor) == puzzle.Empty
		})
		if len(neighbors) == 0 {
			contradictions = append(contradictions, fmt.Sprintf("tree (%v, %v) has no empty orthogonal neighbor to hold its tent", tree.Row+1, tree.Col+1))
			continue
		}

		set := lo.Map(neighbors, func(neighbor puzzle.Coordinate, _ int) csp.Var {
			return state.indexer.Var(neighbor)
		})
		constraints = append(constraints, csp.Exactly{
			Label: fmt.Sprintf("tree (%v, %v)", tree.Row+1, tree.Col+1),
			Set:   set,
			N:     1,
		})
	}
	return constraints, contradictions
}

// A tent must stand beside a tree. Cells with an orthogonal tree satisfy the
// rule whatever their value, so only the unsupported variables contribute a
// constraint: they are pinned false.
func tentSupportConstraints(state constraintState) []csp.Constraint {
	constraints := make([]csp.Constraint, 0)
	for v := range csp.Var(state.indexer.Count()) {
		cell := state.indexer.Cell(v)
		supported := lo.SomeBy(state.problem.Orthogonal(cell), func(neighbor puzzle.Coordinate) bool {
			return state.problem.At(neighbor) == puzzle.Tree
		})
		if !supported {
			constraints = append(constraints, csp.Unit{
				Label: fmt.Sprintf("no tree beside (%v, %v)", cell.Row+1, cell.Col+1),
				V:     v,
				Value: false,
			})
		}
	}
	return constraints
}

// No two tents within Chebyshev distance 1 of each other. Each unordered
// pair of adjacent empty cells is emitted once, relying on the row-major
// variable order.
func noTouchConstraints(state constraintState) []csp.Constraint {
	constraints := make([]csp.Constraint, 0)
	for a := range csp.Var(state.indexer.Count()) {
		cell := state.indexer.Cell(a)
		for _, neighbor := range state.problem.Surrounding(cell) {
			if state.problem.At(neighbor) != puzzle.Empty {
				continue
			}
			b := state.indexer.Var(neighbor)
			if b <= a {
				continue
			}
			constraints = append(constraints, csp.NotBoth{
				Label: fmt.Sprintf("touch (%v, %v)~(%v, %v)", cell.Row+1, cell.Col+1, neighbor.Row+1, neighbor.Col+1),
				A:     a,
				B:     b,
			})
		}
	}
	return constraints
}
