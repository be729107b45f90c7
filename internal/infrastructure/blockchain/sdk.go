package blockchain

import (
	"context"

	"btc-yield.backend/internal/domain/entities"
)

// SigningStrategy is the capability object handed to onboarding. It exposes
// signing and public-key resolution without ever surfacing private key
// material.
type SigningStrategy interface {
	PublicKey(ctx context.Context) (string, error)
	Sign(ctx context.Context, digest []byte) ([]byte, error)
}

// ExecuteOptions controls how a call batch is submitted
type ExecuteOptions struct {
	// Sponsored requests paymaster fee sponsorship; the submitting account
	// pays nothing.
	Sponsored bool
}

// Receipt is the accepted response shape of a submission. Exactly these two
// fields are recognized; anything else fails normalization loudly.
type Receipt struct {
	TransactionHash string `json:"transaction_hash,omitempty"`
	Hash            string `json:"hash,omitempty"`
}

// WalletHandle is an onboarded account able to submit call batches and read
// token balances
type WalletHandle interface {
	Address() string
	Execute(ctx context.Context, calls []entities.Call, opts ExecuteOptions) (*Receipt, error)
	BalanceOf(ctx context.Context, tokenAddress string) (string, error)
}

// SDK is the chain SDK's onboarding entry point
type SDK interface {
	Onboard(ctx context.Context, strategy SigningStrategy) (WalletHandle, error)
}

// ChainReader reads transaction finality status from the chain
type ChainReader interface {
	TransactionStatus(ctx context.Context, hash string) (string, error)
}
