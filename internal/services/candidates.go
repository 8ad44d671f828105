package services

import "driver-allocation-service/internal/domain"

// GenerateCandidates pairs every driver with every route.
//
// Output is driver-major and has exactly len(drivers)*len(routes) entries; inputs
// are expected to be validated and free of duplicate ids. Neither slice is modified.
func GenerateCandidates(drivers []domain.Driver, routes []domain.Route) []domain.Candidate {
	if len(drivers) == 0 || len(routes) == 0 {
		return []domain.Candidate{}
	}

	out := make([]domain.Candidate, 0, len(drivers)*len(routes))
	for _, d := range drivers {
		for _, r := range routes {
			gap := Gap(d.Start, r.Start)
			out = append(out, domain.Candidate{
				Driver: d,
				Route:  r,
				Gap:    gap,
				Score:  ScoreGap(gap),
				Legal:  domain.CanOperate(d.Class, r.Class),
			})
		}
	}

	return out
}
