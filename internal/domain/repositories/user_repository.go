package repositories

import (
	"context"

	"btc-yield.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	// Upsert inserts the user or refreshes the email, keyed by the
	// provider user id. Non-destructive and idempotent.
	Upsert(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
}

// SessionRepository defines session data operations. Sessions are insert-only.
type SessionRepository interface {
	Create(ctx context.Context, session *entities.Session) error
	GetByID(ctx context.Context, id string) (*entities.Session, error)
}
