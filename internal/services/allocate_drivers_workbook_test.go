package services

import (
	"context"
	"driver-allocation-service/internal/adapters/workbook"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// The plan sheet doubles as the roster: A-E and G hold roster columns,
// F receives assignments and I lists the drivers expected to work.
func writePlanWorkbook(t *testing.T) string {
	t.Helper()

	rows := [][]any{
		{"Route", "Route Start Time", "Route Class", "Driver", "Driver Start Time", "Assigned", "Driver Class", "", "Planned"},
		{"R1", "09:05", "class 1", "A", "09:00", "", "class 1", "", "A"},
		{"R2", "09:07", "class 2", "B", "09:10", "", "class 2", "", "B"},
		{"R3", "06:00", "class 1", "C", "13:00", "", "class 2", "", "C"},
		{"R4", "16:00", "class 2", "", "", "", "", "", ""},
	}

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Plan"))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Plan", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func runWorkbook(t *testing.T, path string) *AllocationResult {
	t.Helper()

	wb, err := workbook.Open(path, workbook.Options{
		RosterSheet:    "Plan",
		PlanSheet:      "Plan",
		RouteColumn:    "A",
		AssignedColumn: "F",
		PlannedColumn:  "I",
		LargeGap:       60 * time.Minute,
	})
	require.NoError(t, err)
	defer wb.Close()

	res, err := AllocateDrivers(context.Background(), AllocateDriversRequest{}, wb, &exhaustiveSolver{}, wb)
	require.NoError(t, err)
	return res
}

func assignedColumn(t *testing.T, path string) []string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	out := make([]string, 0, 4)
	for row := 2; row <= 5; row++ {
		v, err := f.GetCellValue("Plan", fmt.Sprintf("F%d", row))
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestAllocateDriversWorkbookRoundTrip(t *testing.T) {
	path := writePlanWorkbook(t)

	first := runWorkbook(t, path)
	afterFirst := assignedColumn(t, path)

	// C (class 2) cannot take R3 (class 1); R4 would pair with C at a 180 minute gap and is declined.
	assert.Equal(t, []string{"A", "B", "", ""}, afterFirst)
	assert.Equal(t, 2, first.Report.RoutesWritten)
	assert.Equal(t, 2, first.Report.RoutesUnassigned)
	assert.Equal(t, 1, first.Report.UnplannedFlagged)

	second := runWorkbook(t, path)

	assert.Equal(t, first.Solution, second.Solution, "re-running on the annotated workbook is idempotent")
	assert.Equal(t, afterFirst, assignedColumn(t, path))
}
