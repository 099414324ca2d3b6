package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mbarrene/tents/pkg/csp"
	"github.com/mbarrene/tents/pkg/model"
	"github.com/mbarrene/tents/pkg/puzzle"
)

func main() {
	const File string = "../test/puzzles/satisfiable/5x5.txt"

	text, err := os.ReadFile(File)
	if err != nil {
		log.Fatalf("cannot read input file: %v", err)
	}

	problem, err := puzzle.ParseProblem(string(text))
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// solver := csp.NewBacktrackSolver()
	solver := csp.NewGiniSolver()
	placer := model.NewPlacer(solver)

	solution, variables, constraints, err := placer.Build(problem)
	if err != nil {
		log.Fatal(err)
	} else if solution == nil {
		fmt.Println("Not satisfiable")
		return
	}

	fmt.Print(solution)
	fmt.Printf("Variables: %v, Constraints: %v\n", variables, constraints)

	pairs, unpaired, err := model.Pairings(problem, solution)
	if err != nil {
		log.Fatal(err)
	}

	for _, tree := range problem.Trees() {
		if tent, paired := pairs[tree]; paired {
			fmt.Printf("Tree: (%v, %v), Tent: (%v, %v)\n", tree.Row+1, tree.Col+1, tent.Row+1, tent.Col+1)
		}
	}
	for _, tree := range unpaired {
		fmt.Printf("Tree: (%v, %v) shares its tent with another tree\n", tree.Row+1, tree.Col+1)
	}

	if !placer.Verify(problem, solution) {
		log.Fatal("Verification failed")
	}

	fmt.Println("Well done!")
}
