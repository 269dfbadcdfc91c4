package roster

import (
	"reflect"
	"testing"
)

func TestDedupe_KeepsHighestIDPerDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		entries []HistoryEntry
		wantID  int64
	}{
		{
			name: "higher id listed second",
			entries: []HistoryEntry{
				{ID: 5, Date: "03-14-2024", Data: "[]"},
				{ID: 9, Date: "03-14-2024", Data: "[]"},
			},
			wantID: 9,
		},
		{
			name: "higher id listed first",
			entries: []HistoryEntry{
				{ID: 9, Date: "03-14-2024", Data: "[]"},
				{ID: 5, Date: "03-14-2024", Data: "[]"},
			},
			wantID: 9,
		},
		{
			name: "mixed date representations collapse to one key",
			entries: []HistoryEntry{
				{ID: 2, Date: "2024-03-14", Data: "[]"},
				{ID: 7, Date: "03-14-2024", Data: "[]"},
			},
			wantID: 7,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Dedupe(tc.entries)
			if len(got) != 1 {
				t.Fatalf("expected one entry, got %d", len(got))
			}
			if got[0].ID != tc.wantID {
				t.Fatalf("expected id %d to survive, got %d", tc.wantID, got[0].ID)
			}
		})
	}
}

func TestDedupe_AtMostOneEntryPerDate(t *testing.T) {
	t.Parallel()

	entries := []HistoryEntry{
		{ID: 1, Date: "03-14-2024"},
		{ID: 2, Date: "03-14-2024"},
		{ID: 3, Date: "03-15-2024"},
		{ID: 4, Date: "03-15-2024"},
		{ID: 5, Date: "03-16-2024"},
	}

	got := Dedupe(entries)
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct dates, got %d", len(got))
	}

	seen := make(map[string]bool)
	for _, entry := range got {
		if seen[entry.Date] {
			t.Fatalf("date %s appears more than once", entry.Date)
		}
		seen[entry.Date] = true
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	t.Parallel()

	entries := []HistoryEntry{
		{ID: 12, Date: "01-02-2024", Data: "[]"},
		{ID: 3, Date: "01-02-2024", Data: "[]"},
		{ID: 8, Date: "01-05-2024", Data: "[]"},
		{ID: 1, Date: "12-31-2023", Data: "[]"},
	}

	once := Dedupe(entries)
	twice := Dedupe(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedupe is not idempotent: %v vs %v", once, twice)
	}
}

func TestDedupe_UndefinedIDNeverOverwrites(t *testing.T) {
	t.Parallel()

	entries := []HistoryEntry{
		{ID: 4, Date: "03-14-2024", Data: `[{"id":1}]`},
		{ID: 0, Date: "03-14-2024", Data: "[]"},
	}

	got := Dedupe(entries)
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if got[0].ID != 4 {
		t.Fatalf("entry with undefined id displaced id 4, got %d", got[0].ID)
	}

	// The undefined-id entry still survives when it is alone for its date.
	alone := Dedupe([]HistoryEntry{{ID: 0, Date: "03-15-2024", Data: "[]"}})
	if len(alone) != 1 || alone[0].ID != 0 {
		t.Fatalf("sole undefined-id entry should survive, got %v", alone)
	}
}

func TestDedupe_SortsChronologically(t *testing.T) {
	t.Parallel()

	entries := []HistoryEntry{
		{ID: 1, Date: "01-02-2024"},
		{ID: 2, Date: "12-30-2023"},
		{ID: 3, Date: "02-01-2024"},
	}

	got := Dedupe(entries)
	wantOrder := []string{"12-30-2023", "01-02-2024", "02-01-2024"}
	for i, want := range wantOrder {
		if got[i].Date != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].Date)
		}
	}
}

func TestEntryForDate(t *testing.T) {
	t.Parallel()

	t.Run("skips empty payloads", func(t *testing.T) {
		t.Parallel()

		entries := []HistoryEntry{
			{ID: 1, Date: "03-14-2024", Data: ""},
			{ID: 2, Date: "03-14-2024", Data: "[]"},
		}
		if _, ok := EntryForDate(entries, "03-14-2024"); ok {
			t.Fatal("expected no qualifying entry for empty payloads")
		}
	})

	t.Run("finds populated payload", func(t *testing.T) {
		t.Parallel()

		entries := []HistoryEntry{
			{ID: 3, Date: "03-14-2024", Data: `[{"id":1,"name":"Alpha"}]`},
			{ID: 4, Date: "03-15-2024", Data: `[{"id":2,"name":"Beta"}]`},
		}
		entry, ok := EntryForDate(entries, "03-14-2024")
		if !ok {
			t.Fatal("expected a qualifying entry")
		}
		if entry.ID != 3 {
			t.Fatalf("expected entry 3, got %d", entry.ID)
		}
	})
}
