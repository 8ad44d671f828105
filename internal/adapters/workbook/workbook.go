package workbook

import (
	"driver-allocation-service/internal/domain"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Layout of the roster and plan sheets.
type Options struct {
	// Sheet holding the roster; empty selects the first sheet.
	RosterSheet string
	PlanSheet   string

	RouteColumn    string
	AssignedColumn string
	PlannedColumn  string

	// Assigned drivers whose start differs from the route by more than this are flagged.
	LargeGap time.Duration
}

// Workbook is an xlsx file used both as roster source and plan destination.
// It is read once and saved in place at most once per WritePlan call.
type Workbook struct {
	path string
	f    *excelize.File
	opts Options
}

// Open loads the workbook at path. The caller must Close it.
func Open(path string, opts Options) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}

	return &Workbook{path: path, f: f, opts: opts}, nil
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

func (w *Workbook) sheet(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		first := w.f.GetSheetName(0)
		if first == "" {
			return "", fmt.Errorf("workbook %q has no sheets: %w", w.path, domain.ErrSheetNotFound)
		}
		return first, nil
	}

	idx, err := w.f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return "", fmt.Errorf("workbook %q: sheet %q: %w", w.path, name, domain.ErrSheetNotFound)
	}
	return name, nil
}

// columnIndex converts a column letter to a zero-based index.
func columnIndex(letter string) (int, error) {
	n, err := excelize.ColumnNameToNumber(letter)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", letter, err)
	}
	return n - 1, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
