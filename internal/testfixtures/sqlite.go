package testfixtures

import (
	"path/filepath"
	"testing"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
	"github.com/tgberrios/CRM-sub000/internal/persistence/sqlite"
)

// SQLiteHarness provides repository access backed by a temporary SQLite
// database for integration-style persistence tests.
type SQLiteHarness struct {
	Pool      *sqlite.ConnectionPool
	Personnel persistence.PersonnelRepository
	WorkDays  persistence.WorkDayRepository
	Teams     persistence.TeamRepository
	History   persistence.ConfigHistoryRepository
	Absences  persistence.AbsenceRepository
	Accounts  persistence.AccountRepository
	Sessions  persistence.SessionRepository

	cleanup func()
}

// Close releases resources associated with the harness.
func (h *SQLiteHarness) Close() {
	if h != nil && h.cleanup != nil {
		h.cleanup()
		h.cleanup = nil
	}
}

// NewSQLiteHarness constructs a SQLiteHarness using a temporary file that is
// migrated automatically. Callers may optionally invoke Close, but the helper
// also registers a cleanup callback with the provided testing.TB.
func NewSQLiteHarness(tb testing.TB) *SQLiteHarness {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "tracker.db")
	pool, err := sqlite.Open("file:" + path + "?_pragma=foreign_keys(1)")
	if err != nil {
		tb.Fatalf("failed to open storage: %v", err)
	}

	if err := pool.Migrate(); err != nil {
		_ = pool.Close()
		tb.Fatalf("failed to migrate storage: %v", err)
	}

	harness := &SQLiteHarness{
		Pool:      pool,
		Personnel: sqlite.NewPersonnelRepository(pool),
		WorkDays:  sqlite.NewWorkDayRepository(pool),
		Teams:     sqlite.NewTeamRepository(pool),
		History:   sqlite.NewConfigHistoryRepository(pool),
		Absences:  sqlite.NewAbsenceRepository(pool),
		Accounts:  sqlite.NewAccountRepository(pool),
		Sessions:  sqlite.NewSessionRepository(pool),
		cleanup: func() {
			_ = pool.Close()
		},
	}

	tb.Cleanup(harness.Close)
	return harness
}
