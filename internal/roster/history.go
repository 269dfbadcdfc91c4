package roster

import "sort"

// HistoryEntry is the view of a stored configuration history row needed by
// the deduplicated reader. ID is the write order assigned by the store; an
// ID of zero or below means the write order is unknown.
type HistoryEntry struct {
	ID   int64
	Date string
	Data string
}

// Dedupe collapses history entries to at most one per calendar date,
// preferring the entry with the strictly greater ID. The reduction is a
// fold over the input and does not depend on input order: for entries
// sharing a date the survivor always carries the maximum ID.
//
// An entry without a known ID (ID <= 0) never displaces an entry already
// held for its date; it survives only when it is the sole entry for that
// date.
func Dedupe(entries []HistoryEntry) []HistoryEntry {
	byDate := make(map[string]HistoryEntry, len(entries))
	for _, entry := range entries {
		key, err := CanonicalDate(entry.Date)
		if err != nil {
			key = entry.Date
		}
		existing, ok := byDate[key]
		if !ok {
			entry.Date = key
			byDate[key] = entry
			continue
		}
		if entry.ID > 0 && entry.ID > existing.ID {
			entry.Date = key
			byDate[key] = entry
		}
	}

	out := make([]HistoryEntry, 0, len(byDate))
	for _, entry := range byDate {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, errI := ParseCanonical(out[i].Date)
		tj, errJ := ParseCanonical(out[j].Date)
		if errI != nil || errJ != nil {
			return out[i].Date < out[j].Date
		}
		if ti.Equal(tj) {
			return out[i].ID < out[j].ID
		}
		return ti.Before(tj)
	})
	return out
}

// EntryForDate finds the deduplicated entry for the canonical date, skipping
// entries whose payload is empty or the literal empty-array serialization.
func EntryForDate(entries []HistoryEntry, date string) (HistoryEntry, bool) {
	found := HistoryEntry{}
	ok := false
	for _, entry := range entries {
		if entry.Date != date || EmptySnapshot(entry.Data) {
			continue
		}
		// Post-dedup there is at most one qualifying entry; keep the last
		// defensively in case the caller passed a raw list.
		found = entry
		ok = true
	}
	return found, ok
}
