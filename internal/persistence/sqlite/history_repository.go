package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

// ConfigHistoryRepository implements persistence.ConfigHistoryRepository
// using SQLite. It returns every physical row; collapsing duplicate dates
// is the read path's concern.
type ConfigHistoryRepository struct {
	pool *ConnectionPool
}

// NewConfigHistoryRepository creates a new SQLite config history repository.
func NewConfigHistoryRepository(pool *ConnectionPool) *ConfigHistoryRepository {
	return &ConfigHistoryRepository{pool: pool}
}

// ListConfigHistory returns all snapshot rows in write order.
func (r *ConfigHistoryRepository) ListConfigHistory(ctx context.Context) ([]persistence.ConfigHistoryEntry, error) {
	rows, err := r.pool.db.QueryContext(ctx, `
		SELECT id, date, data, created_at, updated_at
		FROM config_history
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var entries []persistence.ConfigHistoryEntry
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return entries, nil
}

// AddConfigHistory inserts a snapshot row and returns it with the assigned
// write-order id.
func (r *ConfigHistoryRepository) AddConfigHistory(ctx context.Context, entry persistence.ConfigHistoryEntry) (persistence.ConfigHistoryEntry, error) {
	if entry.Date == "" {
		return persistence.ConfigHistoryEntry{}, persistence.ErrConstraintViolation
	}

	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	result, err := r.pool.db.ExecContext(ctx, `
		INSERT INTO config_history (date, data, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`,
		entry.Date,
		entry.Data,
		entry.CreatedAt.Format(time.RFC3339),
		entry.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return persistence.ConfigHistoryEntry{}, mapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.ConfigHistoryEntry{}, fmt.Errorf("sqlite: failed to read inserted id: %w", err)
	}
	entry.ID = id

	return entry, nil
}

// UpdateConfigHistory rewrites the payload of an existing snapshot row.
func (r *ConfigHistoryRepository) UpdateConfigHistory(ctx context.Context, entry persistence.ConfigHistoryEntry) (persistence.ConfigHistoryEntry, error) {
	if entry.ID <= 0 || entry.Date == "" {
		return persistence.ConfigHistoryEntry{}, persistence.ErrConstraintViolation
	}

	entry.UpdatedAt = time.Now().UTC()

	result, err := r.pool.db.ExecContext(ctx, `
		UPDATE config_history
		SET date = ?, data = ?, updated_at = ?
		WHERE id = ?
	`,
		entry.Date,
		entry.Data,
		entry.UpdatedAt.Format(time.RFC3339),
		entry.ID,
	)
	if err != nil {
		return persistence.ConfigHistoryEntry{}, mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return persistence.ConfigHistoryEntry{}, fmt.Errorf("sqlite: failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return persistence.ConfigHistoryEntry{}, persistence.ErrNotFound
	}

	return entry, nil
}

// DeleteConfigHistoryByDate removes every snapshot row for a date,
// including any duplicates the read path would have collapsed.
func (r *ConfigHistoryRepository) DeleteConfigHistoryByDate(ctx context.Context, date string) error {
	result, err := r.pool.db.ExecContext(ctx, "DELETE FROM config_history WHERE date = ?", date)
	if err != nil {
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}

	return nil
}

func scanHistoryEntry(row rowScanner) (persistence.ConfigHistoryEntry, error) {
	var entry persistence.ConfigHistoryEntry
	var createdAtStr, updatedAtStr string

	if err := row.Scan(&entry.ID, &entry.Date, &entry.Data, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return persistence.ConfigHistoryEntry{}, persistence.ErrNotFound
		}
		return persistence.ConfigHistoryEntry{}, mapError(err)
	}

	var err error
	if entry.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.ConfigHistoryEntry{}, fmt.Errorf("sqlite: failed to parse created_at: %w", err)
	}
	if entry.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.ConfigHistoryEntry{}, fmt.Errorf("sqlite: failed to parse updated_at: %w", err)
	}

	return entry, nil
}
