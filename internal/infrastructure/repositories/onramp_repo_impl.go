package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/infrastructure/models"
)

// OnrampSessionRepository implements funding session storage
type OnrampSessionRepository struct {
	db *gorm.DB
}

// NewOnrampSessionRepository creates a new onramp session repository
func NewOnrampSessionRepository(db *gorm.DB) *OnrampSessionRepository {
	return &OnrampSessionRepository{db: db}
}

// Create persists a new funding session
func (r *OnrampSessionRepository) Create(ctx context.Context, session *entities.OnrampSession) error {
	m := &models.OnrampSession{
		ID:         session.ID,
		UserID:     session.UserID,
		Status:     string(session.Status),
		AmountUSDC: session.AmountUSDC,
		CreatedAt:  session.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetLatestByUserID returns the most recently created session for a user
func (r *OnrampSessionRepository) GetLatestByUserID(ctx context.Context, userID string) (*entities.OnrampSession, error) {
	var m models.OnrampSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.OnrampSession{
		ID:         m.ID,
		UserID:     m.UserID,
		Status:     entities.OnrampStatus(m.Status),
		AmountUSDC: m.AmountUSDC,
		CreatedAt:  m.CreatedAt,
	}, nil
}

// UpdateStatus moves a session through created -> completed
func (r *OnrampSessionRepository) UpdateStatus(ctx context.Context, id string, status entities.OnrampStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.OnrampSession{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
