package services

import (
	"driver-allocation-service/internal/domain"
	"fmt"
)

const programName = "AllocateDrivers"

// PartitionLegal splits candidates by legality into two new slices, preserving order.
func PartitionLegal(candidates []domain.Candidate) (legal, illegal []domain.Candidate) {
	legal = make([]domain.Candidate, 0, len(candidates))
	illegal = make([]domain.Candidate, 0)
	for _, c := range candidates {
		if c.Legal {
			legal = append(legal, c)
		} else {
			illegal = append(illegal, c)
		}
	}
	return legal, illegal
}

// BuildProgram constructs the assignment program for a candidate set.
//
// Illegal candidates never become variables, so the solver cannot select them no matter
// how the capacity constraints play out; they are returned for reporting. Every legal
// candidate gets one binary variable weighted by its score, and every distinct route and
// driver gets a "sum <= 1" row. Because all rows are upper bounds, selecting nothing is
// always feasible.
func BuildProgram(candidates []domain.Candidate) (*domain.Program, []domain.Candidate) {
	legal, illegal := PartitionLegal(candidates)

	p := &domain.Program{
		Name:      programName,
		Sense:     domain.Maximize,
		Variables: make([]domain.Variable, 0, len(legal)),
	}

	routeVars := make(map[string][]int)
	driverVars := make(map[string][]int)
	var routeOrder, driverOrder []string

	for i, c := range legal {
		p.Variables = append(p.Variables, domain.Variable{
			Name:      fmt.Sprintf("x%d", i+1),
			Candidate: c,
			Objective: float64(c.Score),
		})

		if _, ok := routeVars[c.Route.ID]; !ok {
			routeOrder = append(routeOrder, c.Route.ID)
		}
		routeVars[c.Route.ID] = append(routeVars[c.Route.ID], i)

		if _, ok := driverVars[c.Driver.ID]; !ok {
			driverOrder = append(driverOrder, c.Driver.ID)
		}
		driverVars[c.Driver.ID] = append(driverVars[c.Driver.ID], i)
	}

	p.Constraints = make([]domain.Constraint, 0, len(routeOrder)+len(driverOrder))

	// A route is covered at most once; it may stay unassigned.
	for i, id := range routeOrder {
		p.Constraints = append(p.Constraints, domain.Constraint{
			Name:  fmt.Sprintf("route%d", i+1),
			Vars:  routeVars[id],
			Upper: 1,
		})
	}

	// No double-booking; drivers may stay unused.
	for i, id := range driverOrder {
		p.Constraints = append(p.Constraints, domain.Constraint{
			Name:  fmt.Sprintf("driver%d", i+1),
			Vars:  driverVars[id],
			Upper: 1,
		})
	}

	return p, illegal
}
