package ports

import (
	"context"
	"driver-allocation-service/internal/domain"
)

// Summary of what a PlanWriter changed in the persisted output.
type PlanReport struct {
	RoutesWritten    int
	RoutesUnassigned int
	LargeGapFlagged  int
	UnplannedFlagged int
}

// Contract for persisting a Solution and flagging anomalies next to it.
type PlanWriter interface {
	// Write allocations into the output. Implementations must not modify the Solution.
	WritePlan(ctx context.Context, solution *domain.Solution) (PlanReport, error)
}
