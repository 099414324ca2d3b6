package model

import (
	"log"

	"github.com/mbarrene/tents/pkg/csp"
	"github.com/mbarrene/tents/pkg/puzzle"
)

type indexerImplementation struct {
	vars  map[puzzle.Coordinate]csp.Var
	cells []puzzle.Coordinate
}

func (indexer *indexerImplementation) Var(c puzzle.Coordinate) csp.Var {
	v, ok := indexer.vars[c]
	if !ok {
		log.Panicf("cell (%v, %v) has no decision variable", c.Row, c.Col)
	}
	return v
}

func (indexer *indexerImplementation) Cell(v csp.Var) puzzle.Coordinate {
	return indexer.cells[v]
}

func (indexer *indexerImplementation) Count() int {
	return len(indexer.cells)
}
