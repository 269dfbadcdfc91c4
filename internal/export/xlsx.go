// Package export renders roster snapshots as XLSX workbooks for the lab's
// printed schedule handouts.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tgberrios/CRM-sub000/internal/roster"
)

const rosterSheet = "Roster"

var rosterHeader = []string{"Team", "Category", "Slot", "Role", "Name"}

// WriteRosterXLSX writes one workbook with a single Roster sheet: a header
// row followed by one row per slot, teams in snapshot order.
func WriteRosterXLSX(w io.Writer, date string, teams []roster.TeamSnapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(rosterSheet)
	if err != nil {
		return fmt.Errorf("export: failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("export: failed to drop default sheet: %w", err)
	}

	if err := f.SetCellValue(rosterSheet, "A1", fmt.Sprintf("Console Prep Roster %s", date)); err != nil {
		return fmt.Errorf("export: failed to write title: %w", err)
	}

	for col, name := range rosterHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return fmt.Errorf("export: failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(rosterSheet, cell, name); err != nil {
			return fmt.Errorf("export: failed to write header: %w", err)
		}
	}

	row := 3
	for _, team := range teams {
		for slot, person := range team.Personnel {
			values := []any{team.Name, team.Category, slot + 1, roster.DisplayRole(person.Role), person.Name}
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return fmt.Errorf("export: failed to compute cell: %w", err)
				}
				if err := f.SetCellValue(rosterSheet, cell, value); err != nil {
					return fmt.Errorf("export: failed to write row: %w", err)
				}
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: failed to write workbook: %w", err)
	}
	return nil
}
