package accounts

import "context"

// AccountRepository defines the interface for calendar account persistence
type AccountRepository interface {
	// Upsert inserts the account or, on conflict over
	// (user_id, provider, email), overwrites the stored tokens. This is the
	// only write path used by the OAuth callback, so concurrent reconnects
	// for the same triple serialize at the store.
	Upsert(ctx context.Context, account *CalendarAccount) error

	ListByUser(ctx context.Context, userID string) ([]*CalendarAccount, error)
	GetByID(ctx context.Context, id string) (*CalendarAccount, error)
	Delete(ctx context.Context, id string) error
}

// AccountService defines the interface for calendar account business logic
type AccountService interface {
	// Connect persists tokens for a freshly authorized provider account
	Connect(ctx context.Context, account *CalendarAccount) error

	// ListForUser returns the user's connected accounts, tokens omitted by
	// the JSON encoding
	ListForUser(ctx context.Context, userID string) ([]*CalendarAccount, error)

	// Disconnect deletes an account the user owns; drops the stored tokens
	Disconnect(ctx context.Context, userID, accountID string) error
}
