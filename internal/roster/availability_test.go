package roster

import (
	"testing"
	"time"
)

func TestWorkPattern_Includes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern WorkPattern
		day     time.Weekday
		want    bool
	}{
		{WorkPatternMonFri, time.Monday, true},
		{WorkPatternMonFri, time.Friday, true},
		{WorkPatternMonFri, time.Saturday, false},
		{WorkPatternMonFri, time.Sunday, false},
		{WorkPatternSunThu, time.Sunday, true},
		{WorkPatternSunThu, time.Friday, false},
		{WorkPatternTueSat, time.Saturday, true},
		{WorkPatternTueSat, time.Monday, false},
		{WorkPattern("unknown"), time.Monday, false},
	}

	for _, tc := range cases {
		if got := tc.pattern.Includes(tc.day); got != tc.want {
			t.Fatalf("%s includes %s = %v, want %v", tc.pattern, tc.day, got, tc.want)
		}
	}
}

func TestWorkPattern_Valid(t *testing.T) {
	t.Parallel()

	for _, pattern := range WorkPatterns() {
		if !pattern.Valid() {
			t.Fatalf("pattern %s should be valid", pattern)
		}
	}
	if WorkPattern("mon-sun").Valid() {
		t.Fatal("unknown pattern reported valid")
	}
}

func TestCanonicalDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "03-14-2024", want: "03-14-2024"},
		{in: "2024-03-14", want: "03-14-2024"},
		{in: "2024-03-14T09:00:00Z", want: "03-14-2024"},
		{in: " 12-31-2023 ", want: "12-31-2023"},
		{in: "14/03/2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := CanonicalDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("CanonicalDate(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("CanonicalDate(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("CanonicalDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	t.Parallel()

	// 03-16-2024 is a Saturday; 03-17-2024 is a Sunday.
	day, err := WeekdayOf("03-16-2024")
	if err != nil {
		t.Fatalf("WeekdayOf failed: %v", err)
	}
	if day != time.Saturday {
		t.Fatalf("expected Saturday, got %s", day)
	}

	day, err = WeekdayOf("03-17-2024")
	if err != nil {
		t.Fatalf("WeekdayOf failed: %v", err)
	}
	if day != time.Sunday {
		t.Fatalf("expected Sunday, got %s", day)
	}
}
