package services

import (
	"context"
	"driver-allocation-service/internal/domain"
	"driver-allocation-service/internal/ports"
	"math"
)

// exhaustiveSolver enumerates every 0/1 assignment that satisfies the program's
// constraints and keeps the best one. Small programs only.
type exhaustiveSolver struct {
	calls int
}

func (s *exhaustiveSolver) Solve(ctx context.Context, p *domain.Program) (*domain.SolverResult, error) {
	s.calls++

	n := len(p.Variables)
	rowsOf := make([][]int, n)
	for ci, c := range p.Constraints {
		for _, vi := range c.Vars {
			rowsOf[vi] = append(rowsOf[vi], ci)
		}
	}

	load := make([]float64, len(p.Constraints))
	cur := make([]float64, n)
	best := make([]float64, n)
	bestObj := math.Inf(-1)

	var walk func(i int, obj float64)
	walk = func(i int, obj float64) {
		if i == n {
			if obj > bestObj {
				bestObj = obj
				copy(best, cur)
			}
			return
		}

		walk(i+1, obj)

		for _, ci := range rowsOf[i] {
			if load[ci]+1 > p.Constraints[ci].Upper {
				return
			}
		}
		for _, ci := range rowsOf[i] {
			load[ci]++
		}
		cur[i] = 1
		walk(i+1, obj+p.Variables[i].Objective)
		cur[i] = 0
		for _, ci := range rowsOf[i] {
			load[ci]--
		}
	}
	walk(0, 0)

	return &domain.SolverResult{Status: domain.StatusOptimal, Values: best, Objective: bestObj}, nil
}

type staticRoster []domain.RosterRecord

func (r staticRoster) ListRosterRecords(ctx context.Context) ([]domain.RosterRecord, error) {
	out := make([]domain.RosterRecord, len(r))
	copy(out, r)
	return out, nil
}

type recordingWriter struct {
	calls    int
	solution *domain.Solution
}

func (w *recordingWriter) WritePlan(ctx context.Context, sol *domain.Solution) (ports.PlanReport, error) {
	w.calls++
	w.solution = sol
	return ports.PlanReport{RoutesWritten: sol.Len()}, nil
}

func driver(id string, h, m int, class domain.LicenseClass) domain.Driver {
	return domain.Driver{ID: id, Start: domain.NewTimeOfDay(h, m), Class: class}
}

func route(id string, h, m int, class domain.LicenseClass) domain.Route {
	return domain.Route{ID: id, Start: domain.NewTimeOfDay(h, m), Class: class}
}

// record builds a roster row holding both halves.
func record(row int, d domain.Driver, r domain.Route) domain.RosterRecord {
	return domain.RosterRecord{
		Row:         row,
		DriverStart: d.Start.String(),
		DriverID:    d.ID,
		DriverClass: d.Class.String(),
		RouteStart:  r.Start.String(),
		RouteID:     r.ID,
		RouteClass:  r.Class.String(),
	}
}
