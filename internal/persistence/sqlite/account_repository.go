package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

// AccountRepository implements persistence.AccountRepository using SQLite.
type AccountRepository struct {
	pool *ConnectionPool
}

// NewAccountRepository creates a new SQLite account repository.
func NewAccountRepository(pool *ConnectionPool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// CreateAccount inserts a new operator account.
func (r *AccountRepository) CreateAccount(ctx context.Context, account persistence.Account) error {
	if account.ID == "" || strings.TrimSpace(account.Email) == "" {
		return persistence.ErrConstraintViolation
	}

	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := r.pool.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, display_name, password_hash, is_admin, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		account.ID,
		account.Email,
		account.DisplayName,
		account.PasswordHash,
		boolToInt(account.IsAdmin),
		account.CreatedAt.Format(time.RFC3339),
		account.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return mapError(err)
	}

	return nil
}

// UpdateAccount updates an existing account.
func (r *AccountRepository) UpdateAccount(ctx context.Context, account persistence.Account) error {
	account.UpdatedAt = time.Now().UTC()

	result, err := r.pool.db.ExecContext(ctx, `
		UPDATE accounts
		SET email = ?, display_name = ?, password_hash = ?, is_admin = ?, updated_at = ?
		WHERE id = ?
	`,
		account.Email,
		account.DisplayName,
		account.PasswordHash,
		boolToInt(account.IsAdmin),
		account.UpdatedAt.Format(time.RFC3339),
		account.ID,
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

// GetAccount retrieves an account by id.
func (r *AccountRepository) GetAccount(ctx context.Context, id string) (persistence.Account, error) {
	row := r.pool.db.QueryRowContext(ctx, `
		SELECT id, email, display_name, password_hash, is_admin, created_at, updated_at
		FROM accounts
		WHERE id = ?
	`, id)

	return scanAccount(row)
}

// GetAccountByEmail retrieves an account by its unique email.
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (persistence.Account, error) {
	row := r.pool.db.QueryRowContext(ctx, `
		SELECT id, email, display_name, password_hash, is_admin, created_at, updated_at
		FROM accounts
		WHERE email = ?
	`, email)

	return scanAccount(row)
}

// ListAccounts returns all accounts ordered by creation time.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]persistence.Account, error) {
	rows, err := r.pool.db.QueryContext(ctx, `
		SELECT id, email, display_name, password_hash, is_admin, created_at, updated_at
		FROM accounts
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var accounts []persistence.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return accounts, nil
}

// DeleteAccount removes an account. Session rows cascade.
func (r *AccountRepository) DeleteAccount(ctx context.Context, id string) error {
	result, err := r.pool.db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", id)
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

func scanAccount(row rowScanner) (persistence.Account, error) {
	var account persistence.Account
	var isAdmin int
	var createdAtStr, updatedAtStr string

	if err := row.Scan(
		&account.ID,
		&account.Email,
		&account.DisplayName,
		&account.PasswordHash,
		&isAdmin,
		&createdAtStr,
		&updatedAtStr,
	); err != nil {
		if err == sql.ErrNoRows {
			return persistence.Account{}, persistence.ErrNotFound
		}
		return persistence.Account{}, mapError(err)
	}

	account.IsAdmin = isAdmin != 0

	var err error
	if account.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.Account{}, fmt.Errorf("sqlite: failed to parse created_at: %w", err)
	}
	if account.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.Account{}, fmt.Errorf("sqlite: failed to parse updated_at: %w", err)
	}

	return account, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
