package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/mbarrene/tents/pkg/csp"
	"github.com/mbarrene/tents/pkg/model"
	"github.com/mbarrene/tents/pkg/puzzle"
)

var (
	validSolvers = []string{"backtrack", "gini"}
	solvers      = map[string]func() csp.Solver{
		"backtrack": csp.NewBacktrackSolver,
		"gini":      csp.NewGiniSolver,
	}
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the puzzle file (text format, or JSON when the file ends in .json)")
	solverPtr := flag.String("solver", "backtrack", "Solver to use. Allowed values are: \"backtrack\" and \"gini\", where \"backtrack\" is the default")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	dimacsPtr := flag.Bool("dimacs", false, "Write the puzzle's constraint system as a DIMACS CNF formula instead of solving it")
	pairsPtr := flag.Bool("pairs", false, "Write the tree to tent pairings below the solved grid")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract input
	problem, err := readProblem(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Export the lowered formula without solving
	if *dimacsPtr {
		system, err := model.BuildSystem(problem)
		if err != nil {
			log.Fatalf("cannot build constraint system: %v", err)
		}
		write(outFile, system.CNF().ToDIMACS())
		return
	}

	// Initialize engines
	solver := solvers[solverStr]()
	placer := model.NewPlacer(solver)

	// Build placement
	solution, variables, constraints, err := placer.Build(problem)

	if err != nil {
		log.Fatalf("an error occurred during placement construction: %v", err)
	} else if solution == nil {
		fmt.Println("No solution found.")
		fmt.Printf("Variables: %v\n", variables)
		fmt.Printf("Constraints: %v\n", constraints)
		os.Exit(20)
	}

	// Verify placement correctness
	if !placer.Verify(problem, solution) {
		fmt.Printf("Variables: %v\n", variables)
		fmt.Printf("Constraints: %v\n", constraints)
		os.Exit(15)
	}

	// Build output from solution
	var builder strings.Builder
	builder.WriteString(solution.String())
	if *pairsPtr {
		pairs, unpaired, err := model.Pairings(problem, solution)
		if err != nil {
			log.Fatalf("an error occurred while pairing trees to tents: %v", err)
		}
		for _, tree := range problem.Trees() {
			if tent, paired := pairs[tree]; paired {
				fmt.Fprintf(&builder, "tree (%v, %v) -> tent (%v, %v)\n", tree.Row+1, tree.Col+1, tent.Row+1, tent.Col+1)
			}
		}
		for _, tree := range unpaired {
			fmt.Fprintf(&builder, "tree (%v, %v) shares its tent with another tree\n", tree.Row+1, tree.Col+1)
		}
	}

	write(outFile, builder.String())

	fmt.Printf("Variables: %v\n", variables)
	fmt.Printf("Constraints: %v\n", constraints)
}

func readProblem(filePath string) (puzzle.Problem, error) {
	if strings.HasSuffix(filePath, ".json") {
		return puzzle.InputFromJson(filePath)
	}
	text, err := os.ReadFile(filePath)
	if err != nil {
		return puzzle.Problem{}, err
	}
	return puzzle.ParseProblem(string(text))
}

// Writes to file, or to the Standard Output when file is empty
func write(file string, content string) {
	if file == "" {
		fmt.Print(content)
		return
	}
	if err := os.WriteFile(file, []byte(content), 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
}
