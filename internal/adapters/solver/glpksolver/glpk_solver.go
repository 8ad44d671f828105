package glpksolver

import (
	"context"
	"driver-allocation-service/internal/domain"
	"driver-allocation-service/internal/platform/obs"
	"errors"
	"fmt"

	"github.com/lukpank/go-glpk/glpk"
	"go.uber.org/zap"
)

// GLPK-backed implementation of the Solver port (branch-and-cut with presolve).
type GLPKSolver struct {
	Verbose bool
}

func NewGLPKSolver(verbose bool) *GLPKSolver {
	return &GLPKSolver{Verbose: verbose}
}

type glpkOutcome struct {
	res *domain.SolverResult
	err error
}

// Solve runs GLPK on p. The cgo call cannot be interrupted, so a ctx deadline
// abandons the search and reports ErrSolverTimeout.
func (s *GLPKSolver) Solve(ctx context.Context, p *domain.Program) (_ *domain.SolverResult, err error) {
	defer obs.Time(ctx, "solver.glpk.Solve")(&err)

	if p.Empty() {
		return &domain.SolverResult{Status: domain.StatusOptimal, Values: []float64{}}, nil
	}

	if ctx.Err() != nil {
		return nil, contextError(ctx)
	}

	done := make(chan glpkOutcome, 1)
	go func() {
		res, err := s.solve(p)
		done <- glpkOutcome{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, contextError(ctx)
	case out := <-done:
		if out.err == nil && out.res.Status == domain.StatusFeasible {
			obs.Logger(ctx).Warn("solver stopped before proving optimality", zap.Float64("objective", out.res.Objective))
		}
		return out.res, out.err
	}
}

func contextError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("glpk solve: %w", domain.ErrSolverTimeout)
	}
	return fmt.Errorf("glpk solve: %w", ctx.Err())
}

func (s *GLPKSolver) solve(p *domain.Program) (*domain.SolverResult, error) {
	lp := glpk.New()
	defer lp.Delete()

	lp.SetProbName(p.Name)
	if p.Sense == domain.Maximize {
		lp.SetObjDir(glpk.MAX)
	} else {
		lp.SetObjDir(glpk.MIN)
	}

	// GLPK columns and rows are 1-based.
	lp.AddCols(len(p.Variables))
	for j, v := range p.Variables {
		col := j + 1
		lp.SetColName(col, v.Name)
		lp.SetColKind(col, glpk.BV)
		lp.SetObjCoef(col, v.Objective)
	}

	if len(p.Constraints) > 0 {
		lp.AddRows(len(p.Constraints))
	}
	for i, c := range p.Constraints {
		row := i + 1
		lp.SetRowName(row, c.Name)
		lp.SetRowBnds(row, glpk.UP, 0, c.Upper)

		// Element 0 of ind/val is ignored by SetMatRow.
		ind := make([]int32, len(c.Vars)+1)
		val := make([]float64, len(c.Vars)+1)
		for k, vi := range c.Vars {
			ind[k+1] = int32(vi + 1)
			val[k+1] = 1
		}
		lp.SetMatRow(row, ind, val)
	}

	iocp := glpk.NewIocp()
	iocp.SetPresolve(true)
	if s.Verbose {
		iocp.SetMsgLev(glpk.MSG_ON)
	} else {
		iocp.SetMsgLev(glpk.MSG_OFF)
	}

	if err := lp.Intopt(iocp); err != nil {
		return nil, fmt.Errorf("glpk solve: intopt: %v: %w", err, domain.ErrSolverFailed)
	}

	var status domain.SolveStatus
	switch lp.MipStatus() {
	case glpk.OPT:
		status = domain.StatusOptimal
	case glpk.FEAS:
		status = domain.StatusFeasible
	default:
		return nil, fmt.Errorf("glpk solve: mip status %v: %w", lp.MipStatus(), domain.ErrSolverFailed)
	}

	values := make([]float64, len(p.Variables))
	for j := range p.Variables {
		values[j] = lp.MipColVal(j + 1)
	}

	return &domain.SolverResult{
		Status:    status,
		Values:    values,
		Objective: lp.MipObjVal(),
	}, nil
}
