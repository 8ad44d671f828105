package services

import (
	"context"
	"driver-allocation-service/internal/domain"
	"driver-allocation-service/internal/platform/obs"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Counts of roster halves that could not participate in the run.
type RosterStats struct {
	Rows             int
	SkippedDrivers   int
	SkippedRoutes    int
	DuplicateDrivers int
	DuplicateRoutes  int
}

// ParseRoster turns raw rows into validated drivers and routes.
//
// The driver and route halves of a row are judged independently: a bad driver half
// never removes the route on the same row. Fully blank halves are ignored; partially
// filled or unparseable halves are counted and logged.
// The first occurrence of an id wins.
func ParseRoster(ctx context.Context, records []domain.RosterRecord) (domain.Roster, RosterStats) {
	l := obs.Logger(ctx)
	stats := RosterStats{Rows: len(records)}

	roster := domain.Roster{
		Drivers: make([]domain.Driver, 0, len(records)),
		Routes:  make([]domain.Route, 0, len(records)),
	}
	seenDrivers := make(map[string]struct{}, len(records))
	seenRoutes := make(map[string]struct{}, len(records))

	for _, rec := range records {
		if !blank(rec.DriverID, rec.DriverStart, rec.DriverClass) {
			d, err := parseDriver(rec)
			switch {
			case err != nil:
				stats.SkippedDrivers++
				l.Warn("skipping driver", zap.Int("row", rec.Row), zap.Error(err))
			case has(seenDrivers, d.ID):
				stats.DuplicateDrivers++
				l.Warn("skipping duplicate driver", zap.Int("row", rec.Row), zap.String("driver", d.ID))
			default:
				seenDrivers[d.ID] = struct{}{}
				roster.Drivers = append(roster.Drivers, d)
			}
		}

		if !blank(rec.RouteID, rec.RouteStart, rec.RouteClass) {
			r, err := parseRoute(rec)
			switch {
			case err != nil:
				stats.SkippedRoutes++
				l.Warn("skipping route", zap.Int("row", rec.Row), zap.Error(err))
			case has(seenRoutes, r.ID):
				stats.DuplicateRoutes++
				l.Warn("skipping duplicate route", zap.Int("row", rec.Row), zap.String("route", r.ID))
			default:
				seenRoutes[r.ID] = struct{}{}
				roster.Routes = append(roster.Routes, r)
			}
		}
	}

	return roster, stats
}

func parseDriver(rec domain.RosterRecord) (domain.Driver, error) {
	id := strings.TrimSpace(rec.DriverID)
	if id == "" {
		return domain.Driver{}, errors.New("parse driver: missing identity")
	}

	start, err := domain.ParseTimeOfDay(rec.DriverStart)
	if err != nil {
		return domain.Driver{}, fmt.Errorf("parse driver %q: start: %w", id, err)
	}

	class, err := domain.ParseLicenseClass(rec.DriverClass)
	if err != nil {
		return domain.Driver{}, fmt.Errorf("parse driver %q: %w", id, err)
	}

	return domain.Driver{ID: id, Start: start, Class: class}, nil
}

func parseRoute(rec domain.RosterRecord) (domain.Route, error) {
	id := strings.TrimSpace(rec.RouteID)
	if id == "" {
		return domain.Route{}, errors.New("parse route: missing identity")
	}

	start, err := domain.ParseTimeOfDay(rec.RouteStart)
	if err != nil {
		return domain.Route{}, fmt.Errorf("parse route %q: start: %w", id, err)
	}

	class, err := domain.ParseLicenseClass(rec.RouteClass)
	if err != nil {
		return domain.Route{}, fmt.Errorf("parse route %q: %w", id, err)
	}

	return domain.Route{ID: id, Start: start, Class: class}, nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
