package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

// WorkDayRepository implements persistence.WorkDayRepository using SQLite.
type WorkDayRepository struct {
	pool *ConnectionPool
}

// NewWorkDayRepository creates a new SQLite work-day repository.
func NewWorkDayRepository(pool *ConnectionPool) *WorkDayRepository {
	return &WorkDayRepository{pool: pool}
}

// UpsertWorkDay inserts or replaces the single pattern row for a person.
func (r *WorkDayRepository) UpsertWorkDay(ctx context.Context, workDay persistence.WorkDay) error {
	workDay.UpdatedAt = time.Now().UTC()

	_, err := r.pool.db.ExecContext(ctx, `
		INSERT INTO work_days (personnel_id, work_days, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(personnel_id) DO UPDATE SET
			work_days = excluded.work_days,
			updated_at = excluded.updated_at
	`,
		workDay.PersonnelID,
		workDay.WorkDays,
		workDay.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return mapError(err)
	}

	return nil
}

// GetWorkDay retrieves the pattern row for a person.
func (r *WorkDayRepository) GetWorkDay(ctx context.Context, personnelID int64) (persistence.WorkDay, error) {
	var workDay persistence.WorkDay
	var updatedAtStr string

	err := r.pool.db.QueryRowContext(ctx, `
		SELECT personnel_id, work_days, updated_at
		FROM work_days
		WHERE personnel_id = ?
	`, personnelID).Scan(&workDay.PersonnelID, &workDay.WorkDays, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return persistence.WorkDay{}, persistence.ErrNotFound
		}
		return persistence.WorkDay{}, mapError(err)
	}

	if workDay.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.WorkDay{}, fmt.Errorf("sqlite: failed to parse updated_at: %w", err)
	}

	return workDay, nil
}

// ListWorkDays returns every pattern row.
func (r *WorkDayRepository) ListWorkDays(ctx context.Context) ([]persistence.WorkDay, error) {
	rows, err := r.pool.db.QueryContext(ctx, `
		SELECT personnel_id, work_days, updated_at
		FROM work_days
		ORDER BY personnel_id ASC
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var workDays []persistence.WorkDay
	for rows.Next() {
		var workDay persistence.WorkDay
		var updatedAtStr string
		if err := rows.Scan(&workDay.PersonnelID, &workDay.WorkDays, &updatedAtStr); err != nil {
			return nil, mapError(err)
		}
		if workDay.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("sqlite: failed to parse updated_at: %w", err)
		}
		workDays = append(workDays, workDay)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return workDays, nil
}
