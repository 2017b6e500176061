package domain

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	// Register creates a new user. Returns ErrEmailTaken on duplicate email.
	Register(ctx context.Context, email, password, fullName string) (*User, error)

	// Login verifies credentials. Returns ErrInvalidCredentials for an
	// unknown email or a wrong password alike.
	Login(ctx context.Context, email, password string) (*User, error)
}

// TradeService defines the interface for owner-scoped trade operations
type TradeService interface {
	Create(ctx context.Context, userID uuid.UUID, trade *Trade) (*Trade, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Trade, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*Trade, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch TradePatch) (*Trade, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// StatsService defines the interface for dashboard aggregation
type StatsService interface {
	Summarize(ctx context.Context, userID uuid.UUID) (*Stats, error)
}

// Uploader defines the interface for storing uploaded chart images
type Uploader interface {
	// Save stores the content under the upload root, keeping the
	// original filename's extension, and returns the serving path.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
