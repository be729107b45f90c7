package blockchain

import (
	"context"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"

	"btc-yield.backend/internal/domain/entities"
)

// MockHashPrefix marks transaction hashes synthesized by the development
// short-circuit. Responses carrying such a hash always report status
// "mocked", never "submitted".
const MockHashPrefix = "0xmock"

// MockTxHash derives a deterministic mock transaction hash from a seed.
// The same seed always yields the same hash so demo flows are replayable.
func MockTxHash(seed string) string {
	digest := crypto.Keccak256([]byte(seed))
	return MockHashPrefix + hex.EncodeToString(digest[:12])
}

// MockSDK onboards mock wallets for development mode. No network access,
// no funded accounts.
type MockSDK struct{}

// NewMockSDK creates a new mock SDK
func NewMockSDK() *MockSDK {
	return &MockSDK{}
}

// Onboard returns a mock wallet. The strategy's public key is still
// resolved so the custodial key is provisioned exactly as in production.
func (s *MockSDK) Onboard(ctx context.Context, strategy SigningStrategy) (WalletHandle, error) {
	if _, err := strategy.PublicKey(ctx); err != nil {
		return nil, err
	}
	return &mockWallet{address: "0xdev"}, nil
}

type mockWallet struct {
	address string
}

func (w *mockWallet) Address() string {
	return w.address
}

func (w *mockWallet) Execute(ctx context.Context, calls []entities.Call, opts ExecuteOptions) (*Receipt, error) {
	seed := w.address
	for _, c := range calls {
		seed += "|" + c.ContractAddress + ":" + c.Entrypoint
		for _, f := range c.Calldata {
			seed += ":" + string(f)
		}
	}
	return &Receipt{TransactionHash: MockTxHash(seed)}, nil
}

func (w *mockWallet) BalanceOf(ctx context.Context, tokenAddress string) (string, error) {
	return "0", nil
}
