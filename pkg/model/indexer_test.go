package model

import (
	"testing"

	"github.com/mbarrene/tents/pkg/csp"
	"github.com/mbarrene/tents/pkg/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestIndexerAllocatesRowMajor(t *testing.T) {
	// Arrange
	problem, err := puzzle.ParseProblem("0 0 0\n0 . T .\n0 . . .")
	assert.Nil(t, err)

	// Act
	gridIndexer := newIndexer(problem)

	// Assert
	assert.Equal(t, 5, gridIndexer.Count())
	cells := make([]puzzle.Coordinate, 0, gridIndexer.Count())
	for v := range csp.Var(gridIndexer.Count()) {
		cells = append(cells, gridIndexer.Cell(v))
	}
	assert.Equal(t, []puzzle.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, cells)
}

func TestIndexerRoundTrip(t *testing.T) {
	// Arrange
	problem, err := puzzle.ParseProblem("0 0 0 0\n0 T . . .\n0 . . T .\n0 . T . .")
	assert.Nil(t, err)

	// Act
	gridIndexer := newIndexer(problem)

	// Assert
	assert.Equal(t, 9, gridIndexer.Count())
	for v := range csp.Var(gridIndexer.Count()) {
		assert.Equal(t, v, gridIndexer.Var(gridIndexer.Cell(v)))
	}
	for _, cell := range []puzzle.Coordinate{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 3}} {
		assert.Equal(t, cell, gridIndexer.Cell(gridIndexer.Var(cell)))
	}
}
