package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/infrastructure/models"
)

// YieldPositionRepository implements yield position storage
type YieldPositionRepository struct {
	db *gorm.DB
}

// NewYieldPositionRepository creates a new yield position repository
func NewYieldPositionRepository(db *gorm.DB) *YieldPositionRepository {
	return &YieldPositionRepository{db: db}
}

// Upsert records the user's position after a stake submission
func (r *YieldPositionRepository) Upsert(ctx context.Context, position *entities.YieldPosition) error {
	m := &models.YieldPosition{
		UserID:     position.UserID,
		Status:     string(position.Status),
		APY:        position.APY,
		AccruedUSD: position.AccruedUSD,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "apy", "accrued_usd"}),
	}).Create(m).Error
}

// GetByUserID gets the position for a user
func (r *YieldPositionRepository) GetByUserID(ctx context.Context, userID string) (*entities.YieldPosition, error) {
	var m models.YieldPosition
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.YieldPosition{
		UserID:     m.UserID,
		Status:     entities.YieldStatus(m.Status),
		APY:        m.APY,
		AccruedUSD: m.AccruedUSD,
	}, nil
}
