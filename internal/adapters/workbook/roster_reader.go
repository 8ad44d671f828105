package workbook

import (
	"context"
	"driver-allocation-service/internal/domain"
	"driver-allocation-service/internal/platform/obs"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Roster headers, matched case-insensitively in any column order.
const (
	HeaderDriverStart = "Driver Start Time"
	HeaderDriver      = "Driver"
	HeaderDriverClass = "Driver Class"
	HeaderRouteStart  = "Route Start Time"
	HeaderRoute       = "Route"
	HeaderRouteClass  = "Route Class"
)

var rosterHeaders = []string{
	HeaderDriverStart,
	HeaderDriver,
	HeaderDriverClass,
	HeaderRouteStart,
	HeaderRoute,
	HeaderRouteClass,
}

// ListRosterRecords implements ports.RosterRepository over the roster sheet.
// The first row is the header; every later row becomes one record.
func (w *Workbook) ListRosterRecords(ctx context.Context) (_ []domain.RosterRecord, err error) {
	defer obs.Time(ctx, "workbook.ListRosterRecords")(&err)

	sheet, err := w.sheet(w.opts.RosterSheet)
	if err != nil {
		return nil, fmt.Errorf("list roster records: %w", err)
	}

	// Raw values keep time and date-time cells as serials instead of their display text.
	rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("list roster records: read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("list roster records: sheet %q has no header row: %w", sheet, domain.ErrColumnMissing)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}

	idx := make(map[string]int, len(rosterHeaders))
	for _, h := range rosterHeaders {
		i, ok := cols[strings.ToLower(h)]
		if !ok {
			return nil, fmt.Errorf("list roster records: sheet %q: %q: %w", sheet, h, domain.ErrColumnMissing)
		}
		idx[h] = i
	}

	records := make([]domain.RosterRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		records = append(records, domain.RosterRecord{
			Row:         i + 2,
			DriverStart: cellAt(row, idx[HeaderDriverStart]),
			DriverID:    cellAt(row, idx[HeaderDriver]),
			DriverClass: cellAt(row, idx[HeaderDriverClass]),
			RouteStart:  cellAt(row, idx[HeaderRouteStart]),
			RouteID:     cellAt(row, idx[HeaderRoute]),
			RouteClass:  cellAt(row, idx[HeaderRouteClass]),
		})
	}

	return records, nil
}
