package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tgberrios/CRM-sub000/internal/roster"
)

func TestWriteRosterXLSX(t *testing.T) {
	t.Parallel()

	teams := []roster.TeamSnapshot{
		{
			ID: 1, Name: "Alpha", Category: "Xbox",
			Personnel: []roster.Slot{
				{Name: "Alice", Role: "lead"},
				{Name: "Bob", Role: "tester"},
			},
		},
		{
			ID: 2, Name: "Bravo", Category: "BVT",
			Personnel: []roster.Slot{{Name: "No Manager Available", Role: "manager"}},
		},
	}

	var buf bytes.Buffer
	if err := WriteRosterXLSX(&buf, "03-18-2024", teams); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Roster" {
		t.Fatalf("unexpected sheets: %v", got)
	}

	checks := map[string]string{
		"A1": "Console Prep Roster 03-18-2024",
		"A2": "Team",
		"E2": "Name",
		"A3": "Alpha",
		"D3": "Lead",
		"E3": "Alice",
		"E4": "Bob",
		"A5": "Bravo",
		"E5": "No Manager Available",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue("Roster", cell)
		if err != nil {
			t.Fatalf("get %s failed: %v", cell, err)
		}
		if got != want {
			t.Fatalf("cell %s: got %q, want %q", cell, got, want)
		}
	}
}

func TestWriteRosterXLSXEmptyTeams(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteRosterXLSX(&buf, "03-18-2024", nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected a workbook even with no teams")
	}
}
