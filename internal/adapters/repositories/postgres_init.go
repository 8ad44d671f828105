package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Initialize the Postgres roster schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRosterQuery := `
	CREATE TABLE IF NOT EXISTS roster_entries (
		row_no INTEGER PRIMARY KEY,
		driver_start TEXT,
		driver_id TEXT,
		driver_class TEXT,
		route_start TEXT,
		route_id TEXT,
		route_class TEXT
	);
	`

	statements := []string{
		createRosterQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// One seed row. Driver and route halves may be left empty independently.
type RosterSeed struct {
	DriverStart string `json:"driver_start"`
	DriverID    string `json:"driver"`
	DriverClass string `json:"driver_class"`
	RouteStart  string `json:"route_start"`
	RouteID     string `json:"route"`
	RouteClass  string `json:"route_class"`
}

// Replace the roster table contents with rows from a JSON file.
// Values are stored as given; validation happens when a run parses the roster.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed roster: read %q: %w", jsonPath, err)
	}

	var rows []RosterSeed
	if err := json.Unmarshal(bytes, &rows); err != nil {
		return fmt.Errorf("seed roster: parse json: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed roster: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM roster_entries;`); err != nil {
		return fmt.Errorf("seed roster: clear table: %w", err)
	}

	query := `
	INSERT INTO roster_entries (
		row_no,
		driver_start,
		driver_id,
		driver_class,
		route_start,
		route_id,
		route_class
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed roster: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		// Row numbers mirror a spreadsheet: row 1 would be the header.
		rowNo := i + 2
		if _, err := stmt.ExecContext(ctx,
			rowNo,
			nullIfEmpty(r.DriverStart),
			nullIfEmpty(r.DriverID),
			nullIfEmpty(r.DriverClass),
			nullIfEmpty(r.RouteStart),
			nullIfEmpty(r.RouteID),
			nullIfEmpty(r.RouteClass),
		); err != nil {
			return fmt.Errorf("seed roster: insert row_no=%d: %w", rowNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed roster: commit tx: %w", err)
	}

	return nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
