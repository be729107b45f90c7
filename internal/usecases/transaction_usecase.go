package usecases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"btc-yield.backend/internal/config"
	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/domain/repositories"
	"btc-yield.backend/internal/infrastructure/blockchain"
	"btc-yield.backend/pkg/logger"
)

// TransactionUsecase submits sponsored call batches and serves transaction
// status, caching the last-known status per hash. It is the only place
// besides the yield orchestrator that consults the run mode.
type TransactionUsecase struct {
	txRepo repositories.TransactionRepository
	chain  blockchain.ChainReader
	mode   config.Mode
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(
	txRepo repositories.TransactionRepository,
	chain blockchain.ChainReader,
	mode config.Mode,
) *TransactionUsecase {
	return &TransactionUsecase{
		txRepo: txRepo,
		chain:  chain,
		mode:   mode,
	}
}

// SubmitSponsored submits the batch with paymaster sponsorship and records
// the hash before returning it. Exactly one submission attempt per call;
// duplicates are unsafe because funds move on success.
func (u *TransactionUsecase) SubmitSponsored(ctx context.Context, wallet blockchain.WalletHandle, calls []entities.Call) (string, error) {
	if len(calls) == 0 {
		return "", fmt.Errorf("%w: empty call batch", domainerrors.ErrSubmission)
	}

	receipt, err := wallet.Execute(ctx, calls, blockchain.ExecuteOptions{Sponsored: true})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrSubmission, err)
	}

	hash, err := blockchain.NormalizeReceiptHash(receipt)
	if err != nil {
		return "", err
	}

	// The record must exist before the hash is handed to the caller.
	if err := u.txRepo.Upsert(ctx, &entities.TransactionRecord{
		Hash:   hash,
		Status: entities.TxStatusSubmitted,
	}); err != nil {
		return "", err
	}

	logger.Info(ctx, "sponsored transaction submitted",
		zap.String("tx_hash", hash),
		zap.Int("calls", len(calls)),
	)
	return hash, nil
}

// RecordMocked persists a development-mode hash so status queries work
// offline for mocked flows too.
func (u *TransactionUsecase) RecordMocked(ctx context.Context, hash string) error {
	return u.txRepo.Upsert(ctx, &entities.TransactionRecord{
		Hash:   hash,
		Status: entities.TxStatusMocked,
	})
}

// GetStatus returns the transaction's status. Development mode serves a
// cache hit without any network call; otherwise the chain is queried and
// the record refreshed.
func (u *TransactionUsecase) GetStatus(ctx context.Context, hash string) (string, error) {
	if u.mode == config.ModeDevelopment {
		if record, err := u.txRepo.GetByHash(ctx, hash); err == nil {
			return record.Status, nil
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return "", err
		}
	}

	if u.chain == nil {
		return "", fmt.Errorf("%w: no chain endpoint configured", domainerrors.ErrStatusLookup)
	}

	status, err := u.chain.TransactionStatus(ctx, hash)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrStatusLookup, err)
	}
	if status == "" {
		status = entities.TxStatusUnknown
	}

	if err := u.txRepo.Upsert(ctx, &entities.TransactionRecord{Hash: hash, Status: status}); err != nil {
		return "", err
	}
	return status, nil
}
