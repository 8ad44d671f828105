package workbook

import (
	"context"
	"driver-allocation-service/internal/domain"
	"driver-allocation-service/internal/platform/obs"
	"driver-allocation-service/internal/ports"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	colorNormal    = "000000"
	colorUnplanned = "FF0000"
	colorLargeGap  = "FFA500"
)

type recolorKey struct {
	base  int
	color string
}

// fontColors derives styles that differ from a cell's current style only in font colour.
type fontColors struct {
	f       *excelize.File
	derived map[recolorKey]int
}

func newFontColors(f *excelize.File) *fontColors {
	return &fontColors{f: f, derived: make(map[recolorKey]int)}
}

// apply sets the font colour of cell, keeping its fill, borders, number format
// and other font attributes.
func (c *fontColors) apply(sheet, cell, color string) error {
	base, err := c.f.GetCellStyle(sheet, cell)
	if err != nil {
		return fmt.Errorf("read style %s: %w", cell, err)
	}

	key := recolorKey{base: base, color: color}
	id, ok := c.derived[key]
	if !ok {
		st, err := c.f.GetStyle(base)
		if err != nil {
			return fmt.Errorf("read style %d of %s: %w", base, cell, err)
		}

		recolored := excelize.Style{}
		if st != nil {
			recolored = *st
		}
		font := excelize.Font{}
		if recolored.Font != nil {
			font = *recolored.Font
		}
		font.Color = color
		font.ColorIndexed = 0
		font.ColorTheme = nil
		font.ColorTint = 0
		recolored.Font = &font

		id, err = c.f.NewStyle(&recolored)
		if err != nil {
			return fmt.Errorf("create font style %s: %w", color, err)
		}
		c.derived[key] = id
	}

	if err := c.f.SetCellStyle(sheet, cell, cell, id); err != nil {
		return fmt.Errorf("style %s: %w", cell, err)
	}
	return nil
}

// WritePlan implements ports.PlanWriter.
//
// For every route row of the plan sheet the assigned driver is written (or the
// cell cleared), then every driver listed in the planned column is coloured red
// when it received no route and black otherwise. The file is saved once at the end.
func (w *Workbook) WritePlan(ctx context.Context, sol *domain.Solution) (_ ports.PlanReport, err error) {
	defer obs.Time(ctx, "workbook.WritePlan")(&err)

	var report ports.PlanReport

	sheet, err := w.sheet(w.opts.PlanSheet)
	if err != nil {
		return report, fmt.Errorf("write plan: %w", err)
	}

	routeIdx, err := columnIndex(w.opts.RouteColumn)
	if err != nil {
		return report, fmt.Errorf("write plan: route %w", err)
	}
	plannedIdx, err := columnIndex(w.opts.PlannedColumn)
	if err != nil {
		return report, fmt.Errorf("write plan: planned %w", err)
	}
	assignedIdx, err := columnIndex(w.opts.AssignedColumn)
	if err != nil {
		return report, fmt.Errorf("write plan: assigned %w", err)
	}

	colors := newFontColors(w.f)

	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return report, fmt.Errorf("write plan: read sheet %q: %w", sheet, err)
	}

	// Row 1 is the header.
	for i := 1; i < len(rows); i++ {
		routeID := cellAt(rows[i], routeIdx)
		if routeID == "" {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(assignedIdx+1, i+1)
		if err != nil {
			return report, fmt.Errorf("write plan: %w", err)
		}

		color := colorNormal
		if a, ok := sol.DriverFor(routeID); ok {
			if err := w.f.SetCellStr(sheet, cell, a.Driver.ID); err != nil {
				return report, fmt.Errorf("write plan: set %s: %w", cell, err)
			}
			report.RoutesWritten++
			if a.Gap > w.opts.LargeGap {
				color = colorLargeGap
				report.LargeGapFlagged++
			}
		} else {
			if err := w.f.SetCellStr(sheet, cell, ""); err != nil {
				return report, fmt.Errorf("write plan: clear %s: %w", cell, err)
			}
			report.RoutesUnassigned++
		}

		if err := colors.apply(sheet, cell, color); err != nil {
			return report, fmt.Errorf("write plan: %w", err)
		}
	}

	assigned := sol.AssignedDrivers()
	for i := 1; i < len(rows); i++ {
		driverID := cellAt(rows[i], plannedIdx)
		if driverID == "" {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(plannedIdx+1, i+1)
		if err != nil {
			return report, fmt.Errorf("write plan: %w", err)
		}

		color := colorNormal
		if _, ok := assigned[driverID]; !ok {
			color = colorUnplanned
			report.UnplannedFlagged++
		}
		if err := colors.apply(sheet, cell, color); err != nil {
			return report, fmt.Errorf("write plan: %w", err)
		}
	}

	if err := w.f.Save(); err != nil {
		return report, fmt.Errorf("write plan: save %q: %w", w.path, err)
	}

	return report, nil
}
