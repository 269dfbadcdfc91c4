package persistence

import "time"

// Personnel represents a team member in the certification lab. Role carries
// the comma-joined role tag list exactly as entered (e.g. "tester, lead");
// display markers such as "[LEAD]" in the name pass through untouched.
type Personnel struct {
	ID        int64
	Name      string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkDay links a person to their weekly work-day pattern. At most one row
// exists per person; writes use upsert semantics.
type WorkDay struct {
	PersonnelID int64
	WorkDays    string
	UpdatedAt   time.Time
}

// Team represents a console-prep team. Rosters are not normalized here;
// they live inside configuration history snapshots.
type Team struct {
	ID        int64
	Name      string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConfigHistoryEntry is one stored team/personnel assignment snapshot for a
// calendar date. ID is assigned by the store in write order; Date is the
// canonical MM-DD-YYYY key; Data is the JSON-serialized team array. The
// table intentionally has no uniqueness constraint on Date; duplicate rows
// are collapsed on read.
type ConfigHistoryEntry struct {
	ID        int64
	Date      string
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Account represents an operator login for the tracker.
type Account struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session represents an authentication session persisted for an account.
type Session struct {
	ID        string
	AccountID string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	RevokedAt *time.Time
}
