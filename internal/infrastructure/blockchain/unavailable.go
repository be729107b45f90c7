package blockchain

import (
	"context"

	domainerrors "btc-yield.backend/internal/domain/errors"
)

// UnavailableSDK is the production placeholder used when no chain SDK
// binding is configured. Every onboarding attempt fails with
// ErrOnboardingUnavailable so the gap is loud rather than silent.
type UnavailableSDK struct{}

// NewUnavailableSDK creates the placeholder SDK
func NewUnavailableSDK() *UnavailableSDK {
	return &UnavailableSDK{}
}

// Onboard always reports the missing capability
func (s *UnavailableSDK) Onboard(ctx context.Context, strategy SigningStrategy) (WalletHandle, error) {
	return nil, domainerrors.ErrOnboardingUnavailable
}
