package services

import (
	"driver-allocation-service/internal/domain"
	"errors"
	"fmt"
)

// ExtractSolution reads the solver's values back into a route->driver mapping.
//
// Only values equal to exactly 1 count as selected; zero, fractional or otherwise
// indeterminate values are treated as not selected. The mapping is validated before
// it is returned.
func ExtractSolution(p *domain.Program, res *domain.SolverResult) (*domain.Solution, error) {
	if p.Empty() {
		return &domain.Solution{Allocations: []domain.Allocation{}}, nil
	}
	if res == nil {
		return nil, errors.New("extract solution: solver result is nil")
	}
	if len(res.Values) != len(p.Variables) {
		return nil, fmt.Errorf(
			"extract solution: got %d values for %d variables",
			len(res.Values), len(p.Variables),
		)
	}

	sol := &domain.Solution{Allocations: []domain.Allocation{}}
	for i, v := range p.Variables {
		if res.Values[i] != 1 {
			continue
		}
		c := v.Candidate
		sol.Allocations = append(sol.Allocations, domain.Allocation{
			Route:  c.Route,
			Driver: c.Driver,
			Gap:    c.Gap,
			Score:  c.Score,
		})
	}

	if err := ValidateSolution(sol); err != nil {
		return nil, fmt.Errorf("extract solution: %w", err)
	}

	return sol, nil
}

// ValidateSolution checks the matching and license invariants of a solution.
// A violation means the solver or the model is broken; callers must treat it as fatal.
func ValidateSolution(sol *domain.Solution) error {
	routes := make(map[string]struct{}, sol.Len())
	drivers := make(map[string]struct{}, sol.Len())

	for _, a := range sol.Allocations {
		if _, dup := routes[a.Route.ID]; dup {
			return fmt.Errorf("validate solution: route %q: %w", a.Route.ID, domain.ErrMatchingViolation)
		}
		routes[a.Route.ID] = struct{}{}

		if _, dup := drivers[a.Driver.ID]; dup {
			return fmt.Errorf("validate solution: driver %q: %w", a.Driver.ID, domain.ErrMatchingViolation)
		}
		drivers[a.Driver.ID] = struct{}{}

		if !domain.CanOperate(a.Driver.Class, a.Route.Class) {
			return fmt.Errorf(
				"validate solution: driver %q (%s) on route %q (%s): %w",
				a.Driver.ID, a.Driver.Class, a.Route.ID, a.Route.Class, domain.ErrIllegalAssignment,
			)
		}
	}

	return nil
}
