package identity

import (
	"context"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	jose "github.com/go-jose/go-jose/v3"

	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
)

// Verifier verifies an identity assertion and returns the provider's view
// of the user. Implementations never see any other component.
type Verifier interface {
	Verify(ctx context.Context, assertion string) (*entities.IdentityInfo, error)
}

// providerClaims is the subset of assertion claims this service consumes
type providerClaims struct {
	Subject  string `json:"sub"`
	Audience string `json:"aud"`
	Email    string `json:"email"`
	Expiry   int64  `json:"exp"`
}

// ProviderVerifier verifies ES256-signed provider assertions against the
// provider's published verification key.
type ProviderVerifier struct {
	appID     string
	publicKey *ecdsa.PublicKey
}

// NewProviderVerifier parses the PEM verification key and builds a verifier
func NewProviderVerifier(appID, verificationKeyPEM string) (*ProviderVerifier, error) {
	if appID == "" || verificationKeyPEM == "" {
		return nil, errors.New("identity provider not configured")
	}

	block, _ := pem.Decode([]byte(verificationKeyPEM))
	if block == nil {
		return nil, errors.New("invalid verification key PEM")
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse verification key: %w", err)
	}
	ecKey, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("verification key is not an EC public key")
	}

	return &ProviderVerifier{appID: appID, publicKey: ecKey}, nil
}

// Verify checks the assertion signature, audience and expiry
func (v *ProviderVerifier) Verify(ctx context.Context, assertion string) (*entities.IdentityInfo, error) {
	object, err := jose.ParseSigned(assertion)
	if err != nil {
		return nil, domainerrors.ErrAuthentication
	}

	payload, err := object.Verify(v.publicKey)
	if err != nil {
		return nil, domainerrors.ErrAuthentication
	}

	var claims providerClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, domainerrors.ErrAuthentication
	}
	if claims.Subject == "" || claims.Audience != v.appID {
		return nil, domainerrors.ErrAuthentication
	}
	if claims.Expiry != 0 && time.Now().Unix() > claims.Expiry {
		return nil, domainerrors.ErrAuthentication
	}

	return &entities.IdentityInfo{
		ID:    claims.Subject,
		Email: claims.Email,
	}, nil
}
