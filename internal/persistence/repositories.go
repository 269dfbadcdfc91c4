package persistence

import (
	"context"
	"time"
)

// PersonnelRepository exposes CRUD operations for lab personnel.
type PersonnelRepository interface {
	CreatePersonnel(ctx context.Context, person Personnel) (Personnel, error)
	UpdatePersonnel(ctx context.Context, person Personnel) error
	GetPersonnel(ctx context.Context, id int64) (Personnel, error)
	ListPersonnel(ctx context.Context) ([]Personnel, error)
	DeletePersonnel(ctx context.Context, id int64) error
}

// WorkDayRepository stores weekly work-day patterns, one row per person.
type WorkDayRepository interface {
	UpsertWorkDay(ctx context.Context, workDay WorkDay) error
	GetWorkDay(ctx context.Context, personnelID int64) (WorkDay, error)
	ListWorkDays(ctx context.Context) ([]WorkDay, error)
}

// TeamRepository exposes CRUD operations for console-prep teams.
type TeamRepository interface {
	CreateTeam(ctx context.Context, team Team) (Team, error)
	UpdateTeam(ctx context.Context, team Team) error
	GetTeam(ctx context.Context, id int64) (Team, error)
	ListTeams(ctx context.Context) ([]Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	// SeedTeams inserts the default team rows when the table is empty and
	// reports whether seeding happened.
	SeedTeams(ctx context.Context, teams []Team) (bool, error)
}

// ConfigHistoryRepository stores dated roster snapshots. Reads return every
// physical row; deduplication is the caller's concern.
type ConfigHistoryRepository interface {
	ListConfigHistory(ctx context.Context) ([]ConfigHistoryEntry, error)
	AddConfigHistory(ctx context.Context, entry ConfigHistoryEntry) (ConfigHistoryEntry, error)
	UpdateConfigHistory(ctx context.Context, entry ConfigHistoryEntry) (ConfigHistoryEntry, error)
	DeleteConfigHistoryByDate(ctx context.Context, date string) error
}

// AbsenceRepository stores per-date absence lists keyed by canonical date.
type AbsenceRepository interface {
	ListAbsences(ctx context.Context, date string) ([]int64, error)
	ReplaceAbsences(ctx context.Context, date string, personnelIDs []int64) error
}

// AccountRepository exposes CRUD operations for operator accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account Account) error
	UpdateAccount(ctx context.Context, account Account) error
	GetAccount(ctx context.Context, id string) (Account, error)
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

// SessionRepository stores authentication session state.
type SessionRepository interface {
	CreateSession(ctx context.Context, session Session) (Session, error)
	GetSession(ctx context.Context, token string) (Session, error)
	RevokeSession(ctx context.Context, token string, revokedAt time.Time) (Session, error)
	DeleteExpiredSessions(ctx context.Context, reference time.Time) error
}
