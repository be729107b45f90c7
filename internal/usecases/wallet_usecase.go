package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/domain/repositories"
	"btc-yield.backend/internal/infrastructure/blockchain"
	"btc-yield.backend/pkg/logger"
)

// WalletUsecase bridges users to onboarded chain wallets. Onboarding is
// expensive, so handles are cached for the process lifetime; the persisted
// address outlives the process.
type WalletUsecase struct {
	walletRepo repositories.WalletRepository
	vault      *KeyVaultUsecase
	sdk        blockchain.SDK

	mu      sync.RWMutex
	handles map[string]blockchain.WalletHandle
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(
	walletRepo repositories.WalletRepository,
	vault *KeyVaultUsecase,
	sdk blockchain.SDK,
) *WalletUsecase {
	return &WalletUsecase{
		walletRepo: walletRepo,
		vault:      vault,
		sdk:        sdk,
		handles:    make(map[string]blockchain.WalletHandle),
	}
}

// Bind returns the user's wallet handle, onboarding on first use. The
// signing strategy delegates to the key vault so no private key crosses
// into the SDK.
func (u *WalletUsecase) Bind(ctx context.Context, userID string) (blockchain.WalletHandle, error) {
	u.mu.RLock()
	handle, ok := u.handles[userID]
	u.mu.RUnlock()
	if ok {
		return handle, nil
	}

	handle, err := u.sdk.Onboard(ctx, u.vault.Signer(userID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrOnboardingUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrOnboardingFailed, err)
	}

	address := handle.Address()
	if address == "" {
		return nil, fmt.Errorf("%w: wallet address unavailable", domainerrors.ErrOnboardingFailed)
	}

	if err := u.walletRepo.Upsert(ctx, &entities.Wallet{UserID: userID, Address: address}); err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.handles[userID] = handle
	u.mu.Unlock()

	logger.Info(ctx, "wallet onboarded",
		zap.String("user_id", userID),
		zap.String("address", address),
	)
	return handle, nil
}

// GetAddress returns the persisted address, or "" when the user has not
// onboarded yet. Callers use this to decide whether Bind must run.
func (u *WalletUsecase) GetAddress(ctx context.Context, userID string) (string, error) {
	wallet, err := u.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return wallet.Address, nil
}
