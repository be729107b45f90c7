package identity

import (
	"context"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/pkg/jwt"
)

// DevAssertion is the literal assertion accepted in development mode. It
// resolves to a fixed local user so the whole flow works without provider
// credentials.
const DevAssertion = "dev"

// DevVerifier accepts the "dev" literal plus locally minted HS256
// assertions. Development mode only.
type DevVerifier struct {
	assertions *jwt.AssertionService
}

// NewDevVerifier creates a new development verifier
func NewDevVerifier(assertions *jwt.AssertionService) *DevVerifier {
	return &DevVerifier{assertions: assertions}
}

// Verify resolves the assertion to a local identity
func (v *DevVerifier) Verify(ctx context.Context, assertion string) (*entities.IdentityInfo, error) {
	if assertion == DevAssertion {
		return &entities.IdentityInfo{
			ID:    "dev-user",
			Email: "dev@local",
		}, nil
	}

	claims, err := v.assertions.Validate(assertion)
	if err != nil {
		return nil, domainerrors.ErrAuthentication
	}
	return &entities.IdentityInfo{
		ID:    claims.Subject,
		Email: claims.Email,
	}, nil
}
