package services

import (
	"context"
	"driver-allocation-service/internal/domain"
	"driver-allocation-service/internal/platform/obs"
	"driver-allocation-service/internal/ports"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
)

type AllocateDriversRequest struct {
	// Zero means the solver runs without a deadline.
	SolverTimeout time.Duration
}

// Everything a caller needs to report on a finished run.
type AllocationResult struct {
	Solution   *domain.Solution
	Stats      RosterStats
	Candidates int
	Excluded   int
	Status     domain.SolveStatus
	Report     ports.PlanReport
}

// AllocateDrivers runs one planning period end to end:
// roster -> candidates -> program -> solver -> solution -> written plan.
//
// Any failure before the write stage returns without touching the output.
func AllocateDrivers(
	ctx context.Context,
	req AllocateDriversRequest,
	repo ports.RosterRepository,
	solver ports.Solver,
	writer ports.PlanWriter,
) (_ *AllocationResult, err error) {
	defer obs.Time(ctx, "allocate_drivers")(&err)
	l := obs.Logger(ctx)

	records, err := repo.ListRosterRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate drivers: list roster: %w", err)
	}

	roster, stats := ParseRoster(ctx, records)
	l.Info("roster parsed",
		zap.Int("rows", stats.Rows),
		zap.Int("drivers", len(roster.Drivers)),
		zap.Int("routes", len(roster.Routes)),
		zap.Int("skipped_drivers", stats.SkippedDrivers),
		zap.Int("skipped_routes", stats.SkippedRoutes),
		zap.Int("duplicate_drivers", stats.DuplicateDrivers),
		zap.Int("duplicate_routes", stats.DuplicateRoutes),
	)

	candidates := GenerateCandidates(roster.Drivers, roster.Routes)
	program, illegal := BuildProgram(candidates)
	l.Info("program built",
		zap.Int("candidates", len(candidates)),
		zap.Int("variables", len(program.Variables)),
		zap.Int("constraints", len(program.Constraints)),
		zap.Int("excluded_illegal", len(illegal)),
	)

	result := &AllocationResult{
		Stats:      stats,
		Candidates: len(candidates),
		Excluded:   len(illegal),
		Status:     domain.StatusOptimal,
	}

	solution, status, err := solve(ctx, req, solver, program)
	if err != nil {
		return nil, fmt.Errorf("allocate drivers: %w", err)
	}
	result.Status = status

	orderByRoster(solution, roster.Routes)
	result.Solution = solution

	report, err := writer.WritePlan(ctx, solution)
	if err != nil {
		return nil, fmt.Errorf("allocate drivers: write plan: %w", err)
	}
	result.Report = report

	l.Info("allocation complete",
		zap.Int("allocated", solution.Len()),
		zap.Int("unassigned_routes", report.RoutesUnassigned),
		zap.Int("objective", solution.Objective()),
		zap.Stringer("status", status),
	)

	return result, nil
}

// solve runs the solver and extracts the solution. An empty program is
// solved trivially without calling the solver.
func solve(
	ctx context.Context,
	req AllocateDriversRequest,
	solver ports.Solver,
	program *domain.Program,
) (_ *domain.Solution, _ domain.SolveStatus, err error) {
	defer obs.Time(ctx, "solve")(&err)

	if program.Empty() {
		return &domain.Solution{Allocations: []domain.Allocation{}}, domain.StatusOptimal, nil
	}

	if req.SolverTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.SolverTimeout)
		defer cancel()
	}

	res, err := solver.Solve(ctx, program)
	if err != nil {
		return nil, 0, fmt.Errorf("solve program: %w", err)
	}

	sol, err := ExtractSolution(program, res)
	if err != nil {
		return nil, 0, err
	}

	return sol, res.Status, nil
}

// orderByRoster sorts allocations into the order routes appear in the roster.
func orderByRoster(sol *domain.Solution, routes []domain.Route) {
	pos := make(map[string]int, len(routes))
	for i, r := range routes {
		pos[r.ID] = i
	}
	slices.SortStableFunc(sol.Allocations, func(a, b domain.Allocation) int {
		return pos[a.Route.ID] - pos[b.Route.ID]
	})
}
