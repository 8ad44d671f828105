package domain

import "time"

// Allocation is one selected (route, driver) pairing.
type Allocation struct {
	Route  Route
	Driver Driver
	Gap    time.Duration
	Score  int
}

// Solution is a partial injective mapping from routes to drivers.
// Every allocation corresponds to a variable the solver selected.
type Solution struct {
	Allocations []Allocation
}

// DriverFor returns the driver allocated to routeID, if any.
func (s *Solution) DriverFor(routeID string) (Allocation, bool) {
	if s == nil {
		return Allocation{}, false
	}
	for _, a := range s.Allocations {
		if a.Route.ID == routeID {
			return a, true
		}
	}
	return Allocation{}, false
}

// AssignedDrivers returns the set of driver ids that received a route.
func (s *Solution) AssignedDrivers() map[string]struct{} {
	out := make(map[string]struct{})
	if s == nil {
		return out
	}
	for _, a := range s.Allocations {
		out[a.Driver.ID] = struct{}{}
	}
	return out
}

// Objective sums the scores of all allocations.
func (s *Solution) Objective() int {
	if s == nil {
		return 0
	}
	total := 0
	for _, a := range s.Allocations {
		total += a.Score
	}
	return total
}

// Len returns the number of allocated routes.
func (s *Solution) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Allocations)
}
