package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/infrastructure/models"
)

// SessionRepository implements session data operations
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a session. Sessions are insert-only and never mutated.
func (r *SessionRepository) Create(ctx context.Context, session *entities.Session) error {
	m := &models.Session{
		ID:        session.ID,
		UserID:    session.UserID,
		Assertion: session.Assertion,
		CreatedAt: session.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID resolves a session by its opaque id
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*entities.Session, error) {
	var m models.Session
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}
		return nil, err
	}
	return &entities.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		Assertion: m.Assertion,
		CreatedAt: m.CreatedAt,
	}, nil
}
