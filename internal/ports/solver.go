package ports

import (
	"context"
	"driver-allocation-service/internal/domain"
)

// Contract for an external integer-programming solver.
type Solver interface {
	// Return one 0/1 value per program variable such that every constraint holds
	// and the objective is optimal (or the best found within the solver's limits).
	Solve(ctx context.Context, program *domain.Program) (*domain.SolverResult, error)
}
