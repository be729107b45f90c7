package repositories

import (
	"context"

	"btc-yield.backend/internal/domain/entities"
)

// OnrampSessionRepository defines funding session storage
type OnrampSessionRepository interface {
	Create(ctx context.Context, session *entities.OnrampSession) error
	// GetLatestByUserID returns the most recently created session for the
	// user; older sessions are never actionable.
	GetLatestByUserID(ctx context.Context, userID string) (*entities.OnrampSession, error)
	UpdateStatus(ctx context.Context, id string, status entities.OnrampStatus) error
}

// YieldPositionRepository defines yield position storage
type YieldPositionRepository interface {
	Upsert(ctx context.Context, position *entities.YieldPosition) error
	GetByUserID(ctx context.Context, userID string) (*entities.YieldPosition, error)
}
