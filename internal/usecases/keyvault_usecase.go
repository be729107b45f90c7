package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/domain/repositories"
	"btc-yield.backend/pkg/crypto"
	"btc-yield.backend/pkg/logger"
)

// KeyVaultUsecase owns custodial signing keys. Private scalars are sealed
// before they hit storage and are unsealed only inside Sign; nothing else
// in the process ever holds them.
type KeyVaultUsecase struct {
	keyRepo repositories.SigningKeyRepository
	sealer  *crypto.Sealer

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewKeyVaultUsecase creates a new key vault
func NewKeyVaultUsecase(keyRepo repositories.SigningKeyRepository, sealer *crypto.Sealer) *KeyVaultUsecase {
	return &KeyVaultUsecase{
		keyRepo:   keyRepo,
		sealer:    sealer,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the per-user mutex serializing first-use key creation
func (u *KeyVaultUsecase) lockFor(userID string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		u.userLocks[userID] = l
	}
	return l
}

// GetOrCreateKey returns the user's public key, generating and persisting
// a key pair on first use. Creation is serialized per user and backed by
// the primary-key constraint, so concurrent first-use calls converge on a
// single persisted key.
func (u *KeyVaultUsecase) GetOrCreateKey(ctx context.Context, userID string) (string, error) {
	if key, err := u.keyRepo.GetByUserID(ctx, userID); err == nil {
		return key.PublicKey, nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return "", err
	}

	lock := u.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	// Re-check under the lock: another request may have created the key
	// while we waited.
	if key, err := u.keyRepo.GetByUserID(ctx, userID); err == nil {
		return key.PublicKey, nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return "", err
	}

	priv, err := ethcrypto.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("generate signing key: %w", err)
	}

	sealed, err := u.sealer.Seal(ethcrypto.FromECDSA(priv))
	if err != nil {
		return "", fmt.Errorf("seal signing key: %w", err)
	}

	key := &entities.SigningKey{
		UserID:        userID,
		PublicKey:     hexutil.Encode(ethcrypto.FromECDSAPub(&priv.PublicKey)),
		SealedPrivate: sealed,
		CreatedAt:     time.Now(),
	}

	if err := u.keyRepo.Create(ctx, key); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// Lost the insert race across processes; the persisted key wins.
			existing, rerr := u.keyRepo.GetByUserID(ctx, userID)
			if rerr != nil {
				return "", rerr
			}
			return existing.PublicKey, nil
		}
		return "", err
	}

	logger.Info(ctx, "signing key provisioned", zap.String("user_id", userID))
	return key.PublicKey, nil
}

// Sign produces a recoverable signature over a 32-byte digest with the
// user's persisted key. Callers must provision the key first.
func (u *KeyVaultUsecase) Sign(ctx context.Context, userID string, digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}

	key, err := u.keyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrKeyNotFound
		}
		return nil, err
	}

	raw, err := u.sealer.Open(key.SealedPrivate)
	if err != nil {
		return nil, fmt.Errorf("unseal signing key: %w", err)
	}

	priv, err := ethcrypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("decode signing key: %w", err)
	}

	return ethcrypto.Sign(digest, priv)
}

// Signer returns the capability object handed to chain SDK onboarding. It
// closes over the user id only, never over key material.
func (u *KeyVaultUsecase) Signer(userID string) *Signer {
	return &Signer{userID: userID, vault: u}
}

// Signer implements blockchain.SigningStrategy for one user
type Signer struct {
	userID string
	vault  *KeyVaultUsecase
}

// PublicKey resolves (and lazily provisions) the user's public key
func (s *Signer) PublicKey(ctx context.Context) (string, error) {
	return s.vault.GetOrCreateKey(ctx, s.userID)
}

// Sign signs a digest with the user's custodial key
func (s *Signer) Sign(ctx context.Context, digest []byte) ([]byte, error) {
	return s.vault.Sign(ctx, s.userID, digest)
}
