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

// SigningKeyRepository implements custodial key storage
type SigningKeyRepository struct {
	db *gorm.DB
}

// NewSigningKeyRepository creates a new signing key repository
func NewSigningKeyRepository(db *gorm.DB) *SigningKeyRepository {
	return &SigningKeyRepository{db: db}
}

// Create inserts a key for a user. The user id primary key makes the insert
// race-safe: a concurrent insert for the same user yields ErrAlreadyExists
// instead of a second key.
func (r *SigningKeyRepository) Create(ctx context.Context, key *entities.SigningKey) error {
	m := &models.SigningKey{
		UserID:        key.UserID,
		PublicKey:     key.PublicKey,
		SealedPrivate: key.SealedPrivate,
		CreatedAt:     key.CreatedAt,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadyExists
	}
	return nil
}

// GetByUserID gets the key bound to a user
func (r *SigningKeyRepository) GetByUserID(ctx context.Context, userID string) (*entities.SigningKey, error) {
	var m models.SigningKey
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.SigningKey{
		UserID:        m.UserID,
		PublicKey:     m.PublicKey,
		SealedPrivate: m.SealedPrivate,
		CreatedAt:     m.CreatedAt,
	}, nil
}
