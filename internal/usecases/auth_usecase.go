package usecases

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/domain/repositories"
	"btc-yield.backend/internal/infrastructure/identity"
	"btc-yield.backend/pkg/logger"
	"btc-yield.backend/pkg/redis"
	"btc-yield.backend/pkg/utils"
)

// AuthUsecase exchanges identity assertions for sessions and resolves
// session handles back to user ids. It is the only component that ever
// touches raw assertions.
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	verifier    identity.Verifier
	cache       *redis.SessionCache
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	verifier identity.Verifier,
	cache *redis.SessionCache,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		verifier:    verifier,
		cache:       cache,
	}
}

// CreateSession verifies the assertion, upserts the user and mints a new
// session. Only the opaque session id is returned; the assertion and any
// key material stay server-side.
func (u *AuthUsecase) CreateSession(ctx context.Context, assertion string) (string, error) {
	info, err := u.verifier.Verify(ctx, assertion)
	if err != nil {
		return "", domainerrors.ErrAuthentication
	}

	user := &entities.User{ID: info.ID}
	if info.Email != "" {
		user.Email = null.StringFrom(info.Email)
	}
	if err := u.userRepo.Upsert(ctx, user); err != nil {
		return "", err
	}

	session := &entities.Session{
		ID:        utils.GenerateUUIDv7().String(),
		UserID:    info.ID,
		Assertion: assertion,
		CreatedAt: time.Now(),
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}

	if err := u.cache.Put(ctx, session.ID, session.UserID); err != nil {
		logger.Warn(ctx, "session cache put failed", zap.Error(err))
	}

	logger.Info(ctx, "session created", zap.String("user_id", info.ID))
	return session.ID, nil
}

// ResolveSession maps a session handle to its user id. Unknown handles fail
// with ErrSessionNotFound; there is no expiry check.
func (u *AuthUsecase) ResolveSession(ctx context.Context, sessionID string) (string, error) {
	if userID, ok := u.cache.Get(ctx, sessionID); ok {
		return userID, nil
	}

	session, err := u.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if err := u.cache.Put(ctx, session.ID, session.UserID); err != nil {
		logger.Warn(ctx, "session cache put failed", zap.Error(err))
	}
	return session.UserID, nil
}
