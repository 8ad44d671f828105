package repositories

import (
	"context"
	"database/sql"
	"driver-allocation-service/internal/domain"
	"driver-allocation-service/internal/platform/obs"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the RosterRepository port.
type PostgresRosterRepository struct{ DB *sql.DB }

func NewPostgresRosterRepository(db *sql.DB) *PostgresRosterRepository {
	return &PostgresRosterRepository{DB: db}
}

// Return all roster rows ordered by row number. NULL columns come back as empty strings.
func (s *PostgresRosterRepository) ListRosterRecords(ctx context.Context) (_ []domain.RosterRecord, err error) {
	defer obs.Time(ctx, "roster.postgres.ListRosterRecords")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres roster repository: DB is nil")
	}

	query := `
	SELECT
		row_no,
		driver_start,
		driver_id,
		driver_class,
		route_start,
		route_id,
		route_class
	FROM roster_entries
	ORDER BY row_no;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list roster records: query roster_entries table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RosterRecord, 0, 64)
	for rows.Next() {
		var row int
		var driverStart, driverID, driverClass, routeStart, routeID, routeClass sql.NullString
		if err := rows.Scan(&row, &driverStart, &driverID, &driverClass, &routeStart, &routeID, &routeClass); err != nil {
			return nil, fmt.Errorf("list roster records: scan row: %w", err)
		}
		records = append(records, domain.RosterRecord{
			Row:         row,
			DriverStart: driverStart.String,
			DriverID:    driverID.String,
			DriverClass: driverClass.String,
			RouteStart:  routeStart.String,
			RouteID:     routeID.String,
			RouteClass:  routeClass.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roster records: row iteration: %w", err)
	}

	return records, nil
}
