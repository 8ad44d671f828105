package domain

import "time"

// A possible (driver, route) pairing.
// Score and Legal are derived once at generation time and never change.
type Candidate struct {
	Driver Driver
	Route  Route
	Gap    time.Duration
	Score  int
	Legal  bool
}

// Key identifies the pairing; it is unique within a candidate set.
func (c Candidate) Key() string {
	return c.Driver.ID + "|" + c.Route.ID
}
