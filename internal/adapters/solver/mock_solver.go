package solver

import (
	"context"
	"driver-allocation-service/internal/domain"
)

// MockSolver answers with preset values keyed by candidate ("driver|route").
// Variables without a preset value resolve to 0.
type MockSolver struct {
	values map[string]float64
	Status domain.SolveStatus
	Err    error
	Calls  int
}

func NewMockSolver(values map[string]float64) *MockSolver {
	m := make(map[string]float64, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &MockSolver{values: m}
}

func (s *MockSolver) Solve(ctx context.Context, p *domain.Program) (*domain.SolverResult, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}

	res := &domain.SolverResult{Status: s.Status, Values: make([]float64, len(p.Variables))}
	for i, v := range p.Variables {
		res.Values[i] = s.values[v.Candidate.Key()]
		res.Objective += res.Values[i] * v.Objective
	}
	return res, nil
}
