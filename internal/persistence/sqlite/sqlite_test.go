package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

// newTestPool opens a migrated database under a per-test temp directory.
func newTestPool(t *testing.T) *ConnectionPool {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	pool, err := Open(dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})

	if err := pool.Migrate(); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return pool
}

func TestMigrateIsIdempotent(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	if err := pool.Migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed after migrate: %v", err)
	}
}
