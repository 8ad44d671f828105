package cli

import (
	"context"
	"driver-allocation-service/internal/adapters/repositories"
	"driver-allocation-service/internal/adapters/workbook"
	"driver-allocation-service/internal/config"
	"driver-allocation-service/internal/domain"
	"driver-allocation-service/internal/platform/db"
	"driver-allocation-service/internal/platform/obs"
	"driver-allocation-service/internal/ports"
	"driver-allocation-service/internal/services"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SolverFactory builds the solver once configuration is loaded.
type SolverFactory func(cfg *config.Config) ports.Solver

// RunAllocate allocates drivers for the workbook at path and prints the result to stdout.
func RunAllocate(ctx context.Context, path string, newSolver SolverFactory, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := obs.NewLogger(cfg.Environment, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx = obs.WithRun(ctx, logger, uuid.NewString())
	obs.Logger(ctx).Info("starting allocation", zap.String("workbook", path), zap.String("roster_source", cfg.Roster.Source))

	wb, err := workbook.Open(path, workbook.Options{
		RosterSheet:    cfg.Roster.Sheet,
		PlanSheet:      cfg.Plan.Sheet,
		RouteColumn:    cfg.Plan.RouteColumn,
		AssignedColumn: cfg.Plan.AssignedColumn,
		PlannedColumn:  cfg.Plan.PlannedColumn,
		LargeGap:       cfg.LargeGap(),
	})
	if err != nil {
		return err
	}
	defer wb.Close()

	var roster ports.RosterRepository = wb
	if cfg.Roster.Source == config.RosterSourcePostgres {
		conn, err := db.Open(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer conn.Close()
		roster = repositories.NewPostgresRosterRepository(conn)
	}

	result, err := services.AllocateDrivers(
		ctx,
		services.AllocateDriversRequest{SolverTimeout: cfg.SolverTimeout()},
		roster,
		newSolver(cfg),
		wb,
	)
	if err != nil {
		return err
	}

	return PrintAllocations(stdout, result.Solution)
}

// PrintAllocations writes the completion banner and one route:driver line per allocation.
func PrintAllocations(w io.Writer, sol *domain.Solution) error {
	if _, err := fmt.Fprint(w, "Allocation complete:\n\n"); err != nil {
		return fmt.Errorf("print allocations: %w", err)
	}
	if sol == nil {
		return nil
	}
	for _, a := range sol.Allocations {
		if _, err := fmt.Fprintf(w, "%s:%s\n", a.Route.ID, a.Driver.ID); err != nil {
			return fmt.Errorf("print allocations: %w", err)
		}
	}
	return nil
}
