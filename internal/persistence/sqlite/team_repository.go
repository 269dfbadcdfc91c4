package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

// TeamRepository implements persistence.TeamRepository using SQLite.
type TeamRepository struct {
	pool *ConnectionPool
}

// NewTeamRepository creates a new SQLite team repository.
func NewTeamRepository(pool *ConnectionPool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// CreateTeam inserts a new team and returns the row with its assigned id.
func (r *TeamRepository) CreateTeam(ctx context.Context, team persistence.Team) (persistence.Team, error) {
	if strings.TrimSpace(team.Name) == "" {
		return persistence.Team{}, persistence.ErrConstraintViolation
	}

	now := time.Now().UTC()
	team.CreatedAt = now
	team.UpdatedAt = now

	result, err := r.pool.db.ExecContext(ctx, `
		INSERT INTO teams (name, category, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`,
		team.Name,
		team.Category,
		team.CreatedAt.Format(time.RFC3339),
		team.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return persistence.Team{}, mapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.Team{}, fmt.Errorf("sqlite: failed to read inserted id: %w", err)
	}
	team.ID = id

	return team, nil
}

// UpdateTeam updates an existing team.
func (r *TeamRepository) UpdateTeam(ctx context.Context, team persistence.Team) error {
	if strings.TrimSpace(team.Name) == "" {
		return persistence.ErrConstraintViolation
	}

	team.UpdatedAt = time.Now().UTC()

	result, err := r.pool.db.ExecContext(ctx, `
		UPDATE teams
		SET name = ?, category = ?, updated_at = ?
		WHERE id = ?
	`,
		team.Name,
		team.Category,
		team.UpdatedAt.Format(time.RFC3339),
		team.ID,
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

// GetTeam retrieves a team by id.
func (r *TeamRepository) GetTeam(ctx context.Context, id int64) (persistence.Team, error) {
	row := r.pool.db.QueryRowContext(ctx, `
		SELECT id, name, category, created_at, updated_at
		FROM teams
		WHERE id = ?
	`, id)

	return scanTeam(row)
}

// ListTeams returns all teams ordered by id, matching snapshot order.
func (r *TeamRepository) ListTeams(ctx context.Context) ([]persistence.Team, error) {
	rows, err := r.pool.db.QueryContext(ctx, `
		SELECT id, name, category, created_at, updated_at
		FROM teams
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var teams []persistence.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return teams, nil
}

// DeleteTeam removes a team by id.
func (r *TeamRepository) DeleteTeam(ctx context.Context, id int64) error {
	result, err := r.pool.db.ExecContext(ctx, "DELETE FROM teams WHERE id = ?", id)
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

// SeedTeams inserts the default rows inside one transaction when the table
// is empty. Reports whether seeding happened so callers can log it.
func (r *TeamRepository) SeedTeams(ctx context.Context, teams []persistence.Team) (bool, error) {
	seeded := false
	err := r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow("SELECT COUNT(*) FROM teams").Scan(&count); err != nil {
			return mapError(err)
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC().Format(time.RFC3339)
		for _, team := range teams {
			if _, err := tx.Exec(`
				INSERT INTO teams (name, category, created_at, updated_at)
				VALUES (?, ?, ?, ?)
			`, team.Name, team.Category, now, now); err != nil {
				return mapError(err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}

func scanTeam(row rowScanner) (persistence.Team, error) {
	var team persistence.Team
	var createdAtStr, updatedAtStr string

	if err := row.Scan(&team.ID, &team.Name, &team.Category, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return persistence.Team{}, persistence.ErrNotFound
		}
		return persistence.Team{}, mapError(err)
	}

	var err error
	if team.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.Team{}, fmt.Errorf("sqlite: failed to parse created_at: %w", err)
	}
	if team.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.Team{}, fmt.Errorf("sqlite: failed to parse updated_at: %w", err)
	}

	return team, nil
}
