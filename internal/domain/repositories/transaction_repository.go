package repositories

import (
	"context"

	"btc-yield.backend/internal/domain/entities"
)

// TransactionRepository defines transaction status caching. Records are
// append-or-update only, keyed by hash.
type TransactionRepository interface {
	Upsert(ctx context.Context, record *entities.TransactionRecord) error
	GetByHash(ctx context.Context, hash string) (*entities.TransactionRecord, error)
}
