package accounts

import (
	"context"
	"fmt"
	"strings"
)

type accountService struct {
	repo AccountRepository
}

// NewAccountService creates a new calendar account service
func NewAccountService(repo AccountRepository) AccountService {
	return &accountService{repo: repo}
}

// Connect persists a freshly authorized provider account. Repeat connects for
// the same (user, provider, email) triple update tokens in place.
func (s *accountService) Connect(ctx context.Context, account *CalendarAccount) error {
	if err := validateAccount(account); err != nil {
		return err
	}

	account.Email = strings.TrimSpace(strings.ToLower(account.Email))

	return s.repo.Upsert(ctx, account)
}

// ListForUser returns the user's connected calendar accounts
func (s *accountService) ListForUser(ctx context.Context, userID string) ([]*CalendarAccount, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	return s.repo.ListByUser(ctx, userID)
}

// Disconnect removes an account after verifying the requester owns it.
// Ownership mismatches look identical to a missing account.
func (s *accountService) Disconnect(ctx context.Context, userID, accountID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(accountID) == "" {
		return ErrAccountNotFound
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.UserID != userID {
		return ErrAccountNotFound
	}

	return s.repo.Delete(ctx, accountID)
}

func validateAccount(account *CalendarAccount) error {
	if account == nil {
		return fmt.Errorf("account is required")
	}
	if strings.TrimSpace(account.UserID) == "" {
		return fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(account.Provider) == "" {
		return fmt.Errorf("provider is required")
	}
	if strings.TrimSpace(account.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if account.AccessToken == "" {
		return fmt.Errorf("access token is required")
	}
	return nil
}
