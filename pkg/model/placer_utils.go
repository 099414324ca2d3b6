package model

import (
	"slices"

	"github.com/mbarrene/tents/pkg/puzzle"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

func verify(problem puzzle.Problem, solution *puzzle.Solution) bool {
	if solution == nil || problem.Validate() != nil {
		return false
	}

	tents := solution.Tents()

	// Check that:
	// - Every tent stands on an empty cell
	// - Every tent has at least one orthogonal tree to pair with
	// - No other tent is within Chebyshev distance 1 of a tent
	for _, tent := range tents {
		if problem.At(tent) != puzzle.Empty {
			return false
		}
		if !lo.SomeBy(problem.Orthogonal(tent), func(neighbor puzzle.Coordinate) bool {
			return problem.At(neighbor) == puzzle.Tree
		}) {
			return false
		}
		if lo.SomeBy(problem.Surrounding(tent), func(neighbor puzzle.Coordinate) bool {
			return solution.At(neighbor) == puzzle.Tent
		}) {
			return false
		}
	}

	// Check that every tree has exactly one orthogonal tent
	for _, tree := range problem.Trees() {
		adjacent := lo.CountBy(problem.Orthogonal(tree), func(neighbor puzzle.Coordinate) bool {
			return solution.At(neighbor) == puzzle.Tent
		})
		if adjacent != 1 {
			return false
		}
	}

	// Check that the required tent count of every row and column is met exactly
	rowTents := make([]int, problem.Rows())
	colTents := make([]int, problem.Cols())
	for _, tent := range tents {
		rowTents[tent.Row]++
		colTents[tent.Col]++
	}
	return slices.Equal(rowTents, problem.RowCounts) && slices.Equal(colTents, problem.ColCounts)
}

// Pairings matches trees to distinct orthogonally adjacent tents through a
// largest bipartite matching. Two trees may legitimately share their only
// adjacent tent, in which case one of them stays unpaired and is reported in
// unpaired.
func Pairings(problem puzzle.Problem, solution *puzzle.Solution) (pairs map[puzzle.Coordinate]puzzle.Coordinate, unpaired []puzzle.Coordinate, err error) {
	trees := problem.Trees()
	tents := solution.Tents()

	// Build neighbors predicate on orthogonal adjacency
	neighbors := func(treeAny any, tentAny any) (bool, error) {
		tree := treeAny.(puzzle.Coordinate)
		tent := tentAny.(puzzle.Coordinate)

		return lo.Contains(problem.Orthogonal(tree), tent), nil
	}

	// Transform trees and tents to slices of any
	treesAny, tentsAny := lo.Map(trees, func(tree puzzle.Coordinate, _ int) any { return tree }), lo.Map(tents, func(tent puzzle.Coordinate, _ int) any { return tent })

	graph, err := bipartitegraph.NewBipartiteGraph(treesAny, tentsAny, neighbors)
	if err != nil {
		return nil, nil, err
	}

	matching := graph.LargestMatching()

	pairs = make(map[puzzle.Coordinate]puzzle.Coordinate, len(matching))
	for _, edge := range matching {
		treeIndex, tentIndex := edge.Node1, edge.Node2-len(trees)
		pairs[trees[treeIndex]] = tents[tentIndex]
	}

	unpaired = lo.Filter(trees, func(tree puzzle.Coordinate, _ int) bool {
		_, paired := pairs[tree]
		return !paired
	})

	return pairs, unpaired, nil
}
