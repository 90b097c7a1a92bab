package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"OneSlot/internal/core/accounts"
)

type postgresAccountRepo struct {
	db *sql.DB
}

// NewAccountRepository creates a new PostgreSQL calendar account repository
func NewAccountRepository(db *sql.DB) accounts.AccountRepository {
	return &postgresAccountRepo{db: db}
}

// Upsert inserts the account or overwrites the stored tokens when the
// (user_id, provider, email) triple already exists. The unique constraint
// serializes concurrent reconnects for the same triple.
func (r *postgresAccountRepo) Upsert(ctx context.Context, account *accounts.CalendarAccount) error {
	query := `
		INSERT INTO calendar_accounts (
			user_id, provider, email, access_token, refresh_token, expires_at
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		ON CONFLICT (user_id, provider, email) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = COALESCE(EXCLUDED.refresh_token, calendar_accounts.refresh_token),
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		account.UserID,
		account.Provider,
		account.Email,
		account.AccessToken,
		account.RefreshToken,
		account.ExpiresAt,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		return &accounts.StoreError{Op: "upsert", Err: err}
	}

	return nil
}

// ListByUser retrieves all calendar accounts connected by a user
func (r *postgresAccountRepo) ListByUser(ctx context.Context, userID string) ([]*accounts.CalendarAccount, error) {
	query := `
		SELECT id, user_id, provider, email, access_token,
			COALESCE(refresh_token, ''), expires_at, created_at, updated_at
		FROM calendar_accounts
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, &accounts.StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	var result []*accounts.CalendarAccount
	for rows.Next() {
		account := &accounts.CalendarAccount{}
		if err := rows.Scan(
			&account.ID,
			&account.UserID,
			&account.Provider,
			&account.Email,
			&account.AccessToken,
			&account.RefreshToken,
			&account.ExpiresAt,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, &accounts.StoreError{Op: "list", Err: err}
		}
		result = append(result, account)
	}
	if err := rows.Err(); err != nil {
		return nil, &accounts.StoreError{Op: "list", Err: err}
	}

	return result, nil
}

// GetByID retrieves one calendar account
func (r *postgresAccountRepo) GetByID(ctx context.Context, id string) (*accounts.CalendarAccount, error) {
	query := `
		SELECT id, user_id, provider, email, access_token,
			COALESCE(refresh_token, ''), expires_at, created_at, updated_at
		FROM calendar_accounts
		WHERE id = $1`

	account := &accounts.CalendarAccount{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.UserID,
		&account.Provider,
		&account.Email,
		&account.AccessToken,
		&account.RefreshToken,
		&account.ExpiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, accounts.ErrAccountNotFound
	}
	if err != nil {
		return nil, &accounts.StoreError{Op: "get", Err: err}
	}

	return account, nil
}

// Delete removes a calendar account and its stored tokens
func (r *postgresAccountRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM calendar_accounts WHERE id = $1`, id)
	if err != nil {
		return &accounts.StoreError{Op: "delete", Err: err}
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return &accounts.StoreError{Op: "delete", Err: fmt.Errorf("failed to check rows affected: %w", err)}
	}
	if rows == 0 {
		return accounts.ErrAccountNotFound
	}

	return nil
}
