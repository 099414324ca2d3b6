package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mbarrene/tents/pkg/csp"
	"github.com/mbarrene/tents/pkg/model"
	"github.com/mbarrene/tents/pkg/puzzle"

	"github.com/samber/lo"
)

const satisfiableTestDirectory = "../../test/puzzles/satisfiable/"
const unsatisfiableTestDirectory = "../../test/puzzles/unsatisfiable/"

// Each placement is built several times and the fastest run is kept,
// which smooths out scheduler noise on the small instances.
const runsPerTest = 5

type SolverType int

const (
	backtrack SolverType = iota
	gini
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	rejected
)

var solverTypeNames = map[SolverType]string{
	backtrack: "backtrack",
	gini:      "gini",
}

var resultTypeNames = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	rejected:      "rejected",
}

var solverConstructors = map[SolverType]func() csp.Solver{
	backtrack: csp.NewBacktrackSolver,
	gini:      csp.NewGiniSolver,
}

type TestMetadata struct {
	Name        string
	Satisfiable bool
	Rows        int
	Cols        int
	Trees       int
	Problem     puzzle.Problem
}

type BenchmarkResult struct {
	Solver      SolverType
	Test        TestMetadata
	Variables   int
	Constraints int
	Duration    time.Duration
	Result      ResultType
}

func main() {
	tests := getTests()
	solvers := []SolverType{backtrack, gini}

	results := make([]BenchmarkResult, 0, len(tests)*len(solvers))
	for _, test := range tests {
		for _, solver := range solvers {
			fmt.Printf("Benchmarking test \"%v\" with solver \"%v\"\n", test.Name, solverTypeNames[solver])
			results = append(results, measure(solver, test))
		}
	}

	toCsv(results)
}

// Returns the metadata of every puzzle under the test directories, tagged
// with the directory's expected outcome
func getTests() []TestMetadata {
	tests := make([]TestMetadata, 0)

	directories := lo.Zip2(
		[]string{satisfiableTestDirectory, unsatisfiableTestDirectory},
		[]bool{true, false},
	)
	for _, tuple := range directories {
		directory, satisfiable := tuple.A, tuple.B

		testFiles, err := os.ReadDir(directory)
		if err != nil {
			log.Fatalf("an error occurred while reading test directory: %v", err)
		}

		for _, file := range testFiles {
			filename := directory + file.Name()
			text, err := os.ReadFile(filename)
			if err != nil {
				log.Fatalf("an error occurred while reading test file: %v", err)
			}

			problem, err := puzzle.ParseProblem(string(text))
			if err != nil {
				log.Fatalf("an error occurred while parsing test file %v: %v", filename, err)
			}

			tests = append(tests, TestMetadata{
				Name:        file.Name(),
				Satisfiable: satisfiable,
				Rows:        problem.Rows(),
				Cols:        problem.Cols(),
				Trees:       len(problem.Trees()),
				Problem:     problem,
			})
		}
	}

	return tests
}

// Returns the benchmark result of building a placement for the given test
// with the given solver
func measure(solver SolverType, test TestMetadata) BenchmarkResult {
	placer := model.NewPlacer(solverConstructors[solver]())

	var solution *puzzle.Solution
	var variables, constraints int
	var duration time.Duration

	for run := range runsPerTest {
		start := time.Now()
		s, v, c, err := placer.Build(test.Problem)
		elapsed := time.Since(start)

		if err != nil {
			log.Fatalf("an error occurred while benchmarking test %v: %v", test.Name, err)
		}

		if run == 0 || elapsed < duration {
			duration = elapsed
		}
		solution, variables, constraints = s, v, c
	}

	result := solved
	if solution == nil {
		result = unsatisfiable
	} else if !placer.Verify(test.Problem, solution) {
		result = rejected
	}

	return BenchmarkResult{
		Solver:      solver,
		Test:        test,
		Variables:   variables,
		Constraints: constraints,
		Duration:    duration,
		Result:      result,
	}
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("an error occurred while creating csv file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"Solver",
		"Test",
		"Satisfiable",
		"Rows",
		"Cols",
		"Trees",
		"Variables",
		"Constraints",
		"Duration(us)",
		"Result",
	}
	if err := writer.Write(header); err != nil {
		log.Panicf("an error occurred while writing csv header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(record(result)); err != nil {
			log.Panicf("an error occurred while writing csv record: %v", err)
		}
	}
}

// Returns the csv record of a benchmark result
func record(result BenchmarkResult) []string {
	return []string{
		solverTypeNames[result.Solver],
		result.Test.Name,
		fmt.Sprintf("%v", result.Test.Satisfiable),
		fmt.Sprintf("%v", result.Test.Rows),
		fmt.Sprintf("%v", result.Test.Cols),
		fmt.Sprintf("%v", result.Test.Trees),
		fmt.Sprintf("%v", result.Variables),
		fmt.Sprintf("%v", result.Constraints),
		fmt.Sprintf("%v", result.Duration.Microseconds()),
		fmt.Sprintf("%v", resultTypeNames[result.Result]),
	}
}
