package solver

import (
	"context"
	"driver-allocation-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSolverKeyedValues(t *testing.T) {
	a := domain.Candidate{Driver: domain.Driver{ID: "A"}, Route: domain.Route{ID: "R1"}, Score: 500}
	b := domain.Candidate{Driver: domain.Driver{ID: "B"}, Route: domain.Route{ID: "R1"}, Score: 250}
	p := &domain.Program{Variables: []domain.Variable{
		{Name: "x1", Candidate: a, Objective: 500},
		{Name: "x2", Candidate: b, Objective: 250},
	}}

	s := NewMockSolver(map[string]float64{"A|R1": 1})
	res, err := s.Solve(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0}, res.Values)
	assert.Equal(t, 500.0, res.Objective)
	assert.Equal(t, 1, s.Calls)
}
