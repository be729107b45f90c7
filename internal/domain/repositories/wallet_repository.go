package repositories

import (
	"context"

	"btc-yield.backend/internal/domain/entities"
)

// WalletRepository defines wallet address persistence
type WalletRepository interface {
	Upsert(ctx context.Context, wallet *entities.Wallet) error
	GetByUserID(ctx context.Context, userID string) (*entities.Wallet, error)
}
