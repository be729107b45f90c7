package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/pkg/jwt"
)

func newDevVerifier() *DevVerifier {
	return NewDevVerifier(jwt.NewAssertionService("test-secret", time.Hour))
}

func TestDevVerifier_DevLiteral(t *testing.T) {
	v := newDevVerifier()

	info, err := v.Verify(context.Background(), DevAssertion)
	require.NoError(t, err)
	require.Equal(t, "dev-user", info.ID)
	require.Equal(t, "dev@local", info.Email)
}

func TestDevVerifier_MintedAssertion(t *testing.T) {
	assertions := jwt.NewAssertionService("test-secret", time.Hour)
	v := NewDevVerifier(assertions)

	token, err := assertions.Mint("user-42", "u42@example.com")
	require.NoError(t, err)

	info, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-42", info.ID)
	require.Equal(t, "u42@example.com", info.Email)
}

func TestDevVerifier_RejectsGarbage(t *testing.T) {
	v := newDevVerifier()

	_, err := v.Verify(context.Background(), "not-a-token")
	require.ErrorIs(t, err, domainerrors.ErrAuthentication)
}

func TestDevVerifier_RejectsWrongSecret(t *testing.T) {
	other := jwt.NewAssertionService("other-secret", time.Hour)
	token, err := other.Mint("user-42", "")
	require.NoError(t, err)

	v := newDevVerifier()
	_, err = v.Verify(context.Background(), token)
	require.ErrorIs(t, err, domainerrors.ErrAuthentication)
}
