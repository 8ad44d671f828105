package ports

import (
	"context"
	"driver-allocation-service/internal/domain"
)

// Port: a boundary for retrieving raw roster rows from a data source.
type RosterRepository interface {
	// Return every roster row in source order. Rows are returned unparsed.
	ListRosterRecords(ctx context.Context) ([]domain.RosterRecord, error)
}
