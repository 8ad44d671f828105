package main

import (
	"context"
	"driver-allocation-service/internal/adapters/solver/glpksolver"
	"driver-allocation-service/internal/cli"
	"driver-allocation-service/internal/config"
	"driver-allocation-service/internal/ports"
	"fmt"
	"os"
)

// main is the composition root: the GLPK solver is the only piece wired here,
// everything else lives in cli.RunAllocate.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: allocate <workbook.xlsx>")
		os.Exit(1)
	}

	newSolver := func(cfg *config.Config) ports.Solver {
		return glpksolver.NewGLPKSolver(cfg.Solver.Verbose)
	}

	if err := cli.RunAllocate(context.Background(), os.Args[1], newSolver, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "allocation failed:", err)
		os.Exit(1)
	}
}
