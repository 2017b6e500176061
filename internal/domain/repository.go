package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailTaken if the email
	// already has an account.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email (case-sensitive)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// TradeRepository defines the interface for trade data operations.
// Every lookup and mutation is scoped to the owning user; access to
// another user's trade behaves exactly like access to a missing one.
type TradeRepository interface {
	// Create persists a new trade with its pre-assigned identity and timestamps
	Create(ctx context.Context, trade *Trade) error

	// ListByUserID retrieves the user's trades ordered by trade date
	// descending, insertion order within a day, capped at 1000 rows
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*Trade, error)

	// GetByIDForUser retrieves a trade by ID. Returns ErrNotFound if it
	// does not exist or belongs to another user.
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*Trade, error)

	// Update applies the supplied patch fields, refreshes updated_at and
	// returns the persisted post-update record. ErrNotFound under the
	// same ownership rule as GetByIDForUser.
	Update(ctx context.Context, id, userID uuid.UUID, patch TradePatch) (*Trade, error)

	// Delete removes a trade. ErrNotFound under the ownership rule.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ListChartImageRefs returns every chart image reference currently
	// attached to any trade, for upload garbage collection.
	ListChartImageRefs(ctx context.Context) (map[string]struct{}, error)
}
