package roster

import (
	"fmt"
	"strings"
	"time"
)

// CanonicalLayout is the textual date form used as the dedup and lookup key
// for configuration history entries.
const CanonicalLayout = "01-02-2006"

// acceptedLayouts lists the date representations callers may supply. All of
// them normalize to CanonicalLayout before use.
var acceptedLayouts = []string{
	CanonicalLayout,
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
}

// CanonicalDate normalizes any accepted date representation to the canonical
// MM-DD-YYYY key.
func CanonicalDate(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("roster: empty date")
	}
	for _, layout := range acceptedLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts.Format(CanonicalLayout), nil
		}
	}
	return "", fmt.Errorf("roster: unrecognized date %q", value)
}

// ParseCanonical converts a canonical date key back into a calendar day.
func ParseCanonical(date string) (time.Time, error) {
	ts, err := time.Parse(CanonicalLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("roster: invalid canonical date %q", date)
	}
	return ts, nil
}

// WeekdayOf reports the weekday of a canonical date key.
func WeekdayOf(date string) (time.Weekday, error) {
	ts, err := ParseCanonical(date)
	if err != nil {
		return time.Sunday, err
	}
	return ts.Weekday(), nil
}
