package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

// PersonnelRepository implements persistence.PersonnelRepository using SQLite.
type PersonnelRepository struct {
	pool *ConnectionPool
}

// NewPersonnelRepository creates a new SQLite personnel repository.
func NewPersonnelRepository(pool *ConnectionPool) *PersonnelRepository {
	return &PersonnelRepository{pool: pool}
}

// CreatePersonnel inserts a new person and returns the row with its
// store-assigned id.
func (r *PersonnelRepository) CreatePersonnel(ctx context.Context, person persistence.Personnel) (persistence.Personnel, error) {
	if strings.TrimSpace(person.Name) == "" {
		return persistence.Personnel{}, persistence.ErrConstraintViolation
	}

	now := time.Now().UTC()
	person.CreatedAt = now
	person.UpdatedAt = now

	result, err := r.pool.db.ExecContext(ctx, `
		INSERT INTO personnel (name, role, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`,
		person.Name,
		person.Role,
		person.CreatedAt.Format(time.RFC3339),
		person.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return persistence.Personnel{}, mapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.Personnel{}, fmt.Errorf("sqlite: failed to read inserted id: %w", err)
	}
	person.ID = id

	return person, nil
}

// UpdatePersonnel updates an existing person.
func (r *PersonnelRepository) UpdatePersonnel(ctx context.Context, person persistence.Personnel) error {
	if strings.TrimSpace(person.Name) == "" {
		return persistence.ErrConstraintViolation
	}

	person.UpdatedAt = time.Now().UTC()

	result, err := r.pool.db.ExecContext(ctx, `
		UPDATE personnel
		SET name = ?, role = ?, updated_at = ?
		WHERE id = ?
	`,
		person.Name,
		person.Role,
		person.UpdatedAt.Format(time.RFC3339),
		person.ID,
	)
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

// GetPersonnel retrieves a person by id.
func (r *PersonnelRepository) GetPersonnel(ctx context.Context, id int64) (persistence.Personnel, error) {
	row := r.pool.db.QueryRowContext(ctx, `
		SELECT id, name, role, created_at, updated_at
		FROM personnel
		WHERE id = ?
	`, id)

	return scanPersonnel(row)
}

// ListPersonnel returns all personnel ordered by creation then id.
func (r *PersonnelRepository) ListPersonnel(ctx context.Context) ([]persistence.Personnel, error) {
	rows, err := r.pool.db.QueryContext(ctx, `
		SELECT id, name, role, created_at, updated_at
		FROM personnel
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var people []persistence.Personnel
	for rows.Next() {
		person, err := scanPersonnel(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return people, nil
}

// DeletePersonnel removes a person. Work-day and absence rows cascade.
func (r *PersonnelRepository) DeletePersonnel(ctx context.Context, id int64) error {
	result, err := r.pool.db.ExecContext(ctx, "DELETE FROM personnel WHERE id = ?", id)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPersonnel(row rowScanner) (persistence.Personnel, error) {
	var person persistence.Personnel
	var createdAtStr, updatedAtStr string

	if err := row.Scan(&person.ID, &person.Name, &person.Role, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return persistence.Personnel{}, persistence.ErrNotFound
		}
		return persistence.Personnel{}, mapError(err)
	}

	var err error
	if person.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.Personnel{}, fmt.Errorf("sqlite: failed to parse created_at: %w", err)
	}
	if person.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.Personnel{}, fmt.Errorf("sqlite: failed to parse updated_at: %w", err)
	}

	return person, nil
}
