package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/infrastructure/models"
)

// WalletRepository implements wallet address persistence
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Upsert records the onboarded address for a user
func (r *WalletRepository) Upsert(ctx context.Context, wallet *entities.Wallet) error {
	m := &models.Wallet{
		UserID:    wallet.UserID,
		Address:   wallet.Address,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"address"}),
	}).Create(m).Error
}

// GetByUserID gets the wallet bound to a user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID string) (*entities.Wallet, error) {
	var m models.Wallet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Wallet{
		UserID:    m.UserID,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
	}, nil
}
