package sqlite

import (
	"context"
	"database/sql"
)

// AbsenceRepository implements persistence.AbsenceRepository using SQLite.
type AbsenceRepository struct {
	pool *ConnectionPool
}

// NewAbsenceRepository creates a new SQLite absence repository.
func NewAbsenceRepository(pool *ConnectionPool) *AbsenceRepository {
	return &AbsenceRepository{pool: pool}
}

// ListAbsences returns the personnel ids marked absent on a date.
func (r *AbsenceRepository) ListAbsences(ctx context.Context, date string) ([]int64, error) {
	rows, err := r.pool.db.QueryContext(ctx, `
		SELECT personnel_id
		FROM absences
		WHERE date = ?
		ORDER BY personnel_id ASC
	`, date)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, mapError(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return ids, nil
}

// ReplaceAbsences overwrites the absence list for a date. The delete and
// inserts run inside one transaction so readers never observe a partial list.
func (r *AbsenceRepository) ReplaceAbsences(ctx context.Context, date string, personnelIDs []int64) error {
	return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM absences WHERE date = ?", date); err != nil {
			return mapError(err)
		}

		for _, id := range personnelIDs {
			if _, err := tx.Exec(`
				INSERT INTO absences (date, personnel_id)
				VALUES (?, ?)
			`, date, id); err != nil {
				return mapError(err)
			}
		}

		return nil
	})
}
