package repositories

import (
	"context"

	"btc-yield.backend/internal/domain/entities"
)

// SigningKeyRepository defines custodial key storage. The user id is the
// primary key, so Create fails with ErrAlreadyExists when a concurrent
// caller won the insert race; the vault then re-reads.
type SigningKeyRepository interface {
	Create(ctx context.Context, key *entities.SigningKey) error
	GetByUserID(ctx context.Context, userID string) (*entities.SigningKey, error)
}
