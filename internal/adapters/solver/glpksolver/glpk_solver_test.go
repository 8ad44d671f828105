//go:build glpk

package glpksolver

import (
	"context"
	"driver-allocation-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two drivers, two routes, all legal:
// x1=A|R1 (500) x2=A|R2 (250) x3=B|R1 (-100) x4=B|R2 (500)
func assignmentProgram() *domain.Program {
	return &domain.Program{
		Name:  "test",
		Sense: domain.Maximize,
		Variables: []domain.Variable{
			{Name: "x1", Objective: 500},
			{Name: "x2", Objective: 250},
			{Name: "x3", Objective: -100},
			{Name: "x4", Objective: 500},
		},
		Constraints: []domain.Constraint{
			{Name: "route1", Vars: []int{0, 2}, Upper: 1},
			{Name: "route2", Vars: []int{1, 3}, Upper: 1},
			{Name: "driver1", Vars: []int{0, 1}, Upper: 1},
			{Name: "driver2", Vars: []int{2, 3}, Upper: 1},
		},
	}
}

func TestGLPKSolverFindsOptimalMatching(t *testing.T) {
	res, err := NewGLPKSolver(false).Solve(context.Background(), assignmentProgram())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOptimal, res.Status)
	assert.Equal(t, []float64{1, 0, 0, 1}, res.Values)
	assert.InDelta(t, 1000, res.Objective, 1e-9)
}

func TestGLPKSolverDeclinesNegativeOnly(t *testing.T) {
	p := &domain.Program{
		Name:        "negative",
		Sense:       domain.Maximize,
		Variables:   []domain.Variable{{Name: "x1", Objective: -100}},
		Constraints: []domain.Constraint{{Name: "route1", Vars: []int{0}, Upper: 1}},
	}

	res, err := NewGLPKSolver(false).Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, res.Values)
}

func TestGLPKSolverExpiredDeadline(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	res, err := NewGLPKSolver(false).Solve(ctx, assignmentProgram())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrSolverTimeout)
}

func TestGLPKSolverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGLPKSolver(false).Solve(ctx, assignmentProgram())
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrSolverTimeout)
}
