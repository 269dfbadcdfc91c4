package roster

import "time"

// WorkPattern is one of the fixed weekly work-day patterns assignable to
// personnel.
type WorkPattern string

const (
	WorkPatternMonFri WorkPattern = "mon-fri"
	WorkPatternSunThu WorkPattern = "sun-thu"
	WorkPatternTueSat WorkPattern = "tue-sat"
)

var patternWeekdays = map[WorkPattern][]time.Weekday{
	WorkPatternMonFri: {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	WorkPatternSunThu: {time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday},
	WorkPatternTueSat: {time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
}

// Valid reports whether the pattern is one of the known weekly patterns.
func (p WorkPattern) Valid() bool {
	_, ok := patternWeekdays[p]
	return ok
}

// Includes reports whether the pattern covers the given weekday. Unknown
// patterns cover no days, so personnel without a recognizable pattern are
// never offered for assignment.
func (p WorkPattern) Includes(day time.Weekday) bool {
	for _, d := range patternWeekdays[p] {
		if d == day {
			return true
		}
	}
	return false
}

// WorkPatterns lists the valid patterns in a stable order, for validation
// messages and API responses.
func WorkPatterns() []WorkPattern {
	return []WorkPattern{WorkPatternMonFri, WorkPatternSunThu, WorkPatternTueSat}
}
