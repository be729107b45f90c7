package blockchain

import (
	domainerrors "btc-yield.backend/internal/domain/errors"
)

// NormalizeReceiptHash extracts the transaction hash from a submission
// receipt. Providers disagree on the field name, so exactly two shapes are
// accepted; an empty or unrecognized receipt fails with ErrSubmission
// instead of silently falling through.
func NormalizeReceiptHash(r *Receipt) (string, error) {
	if r == nil {
		return "", domainerrors.ErrSubmission
	}
	if r.TransactionHash != "" {
		return r.TransactionHash, nil
	}
	if r.Hash != "" {
		return r.Hash, nil
	}
	return "", domainerrors.ErrSubmission
}
