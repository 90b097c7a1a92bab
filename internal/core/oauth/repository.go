package oauth

import (
	"database/sql"
	"fmt"
)

// PostgresFlowStore implements FlowStore using PostgreSQL
type PostgresFlowStore struct {
	db *sql.DB
}

// NewPostgresFlowStore creates a new PostgreSQL-backed flow request store
func NewPostgresFlowStore(db *sql.DB) FlowStore {
	return &PostgresFlowStore{db: db}
}

// SaveRequest stores a transient authorization flow request
func (s *PostgresFlowStore) SaveRequest(req *FlowRequest) error {
	query := `
		INSERT INTO oauth_requests (
			state, pkce_verifier, mode, user_id, return_url, created_at
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
	`

	_, err := s.db.Exec(
		query,
		req.State,
		req.PKCEVerifier,
		string(req.Mode),
		req.UserID,
		req.ReturnURL,
		req.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save flow request: %w", err)
	}

	return nil
}

// GetAndDeleteRequest atomically retrieves and deletes a flow request to
// prevent replay: the state parameter can only be redeemed once
func (s *PostgresFlowStore) GetAndDeleteRequest(state string) (*FlowRequest, error) {
	query := `
		DELETE FROM oauth_requests
		WHERE state = $1
		RETURNING
			state, pkce_verifier, mode,
			COALESCE(user_id::text, ''), COALESCE(return_url, ''), created_at
	`

	var req FlowRequest
	var mode string
	err := s.db.QueryRow(query, state).Scan(
		&req.State,
		&req.PKCEVerifier,
		&mode,
		&req.UserID,
		&req.ReturnURL,
		&req.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("flow request not found or already used")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get and delete flow request: %w", err)
	}

	req.Mode = Mode(mode)
	return &req, nil
}

// DeleteExpiredRequests clears abandoned flow requests older than the TTL.
// Called periodically from the server loop.
func (s *PostgresFlowStore) DeleteExpiredRequests() (int64, error) {
	result, err := s.db.Exec(
		`DELETE FROM oauth_requests WHERE created_at < NOW() - $1::interval`,
		fmt.Sprintf("%d seconds", int(RequestTTL.Seconds())),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired flow requests: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
