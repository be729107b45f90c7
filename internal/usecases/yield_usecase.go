package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"btc-yield.backend/internal/config"
	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/domain/repositories"
	"btc-yield.backend/internal/infrastructure/blockchain"
	"btc-yield.backend/internal/infrastructure/swap"
	"btc-yield.backend/pkg/logger"
	"btc-yield.backend/pkg/utils"
)

// YieldUsecase drives the fund -> swap -> stake -> earn workflow. Steps for
// one user run in program order because each step's calldata depends on the
// previous step; there is no cross-user ordering. A failed step leaves the
// workflow in failed and is never retried automatically.
type YieldUsecase struct {
	walletUC   *WalletUsecase
	txUC       *TransactionUsecase
	quotes     swap.QuoteBuilder
	onrampRepo repositories.OnrampSessionRepository
	yieldRepo  repositories.YieldPositionRepository
	starknet   config.StarknetConfig
	mode       config.Mode

	mu     sync.Mutex
	states map[string]entities.WorkflowState
}

// NewYieldUsecase creates a new yield orchestrator
func NewYieldUsecase(
	walletUC *WalletUsecase,
	txUC *TransactionUsecase,
	quotes swap.QuoteBuilder,
	onrampRepo repositories.OnrampSessionRepository,
	yieldRepo repositories.YieldPositionRepository,
	starknet config.StarknetConfig,
	mode config.Mode,
) *YieldUsecase {
	return &YieldUsecase{
		walletUC:   walletUC,
		txUC:       txUC,
		quotes:     quotes,
		onrampRepo: onrampRepo,
		yieldRepo:  yieldRepo,
		starknet:   starknet,
		mode:       mode,
		states:     make(map[string]entities.WorkflowState),
	}
}

// State returns the user's current workflow state, idle when unseen
func (u *YieldUsecase) State(userID string) entities.WorkflowState {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.states[userID]; ok {
		return s
	}
	return entities.WorkflowIdle
}

func (u *YieldUsecase) setState(userID string, state entities.WorkflowState) {
	u.mu.Lock()
	u.states[userID] = state
	u.mu.Unlock()
}

// RequestFunding opens a funding session and returns the user-facing onramp
// URL. No chain interaction happens here.
func (u *YieldUsecase) RequestFunding(ctx context.Context, userID string) (string, error) {
	address, err := u.walletUC.GetAddress(ctx, userID)
	if err != nil {
		return "", err
	}
	if address == "" {
		address = "pending"
	}

	session := &entities.OnrampSession{
		ID:         utils.GenerateUUIDv7().String(),
		UserID:     userID,
		Status:     entities.OnrampCreated,
		AmountUSDC: DefaultOnrampAmountUSDC,
		CreatedAt:  time.Now(),
	}
	if err := u.onrampRepo.Create(ctx, session); err != nil {
		return "", err
	}

	u.setState(userID, entities.WorkflowFundingRequested)
	return fmt.Sprintf("%s?session=%s&to=%s", u.starknet.OnrampBaseURL, session.ID, address), nil
}

// ConfirmFunding completes the most recent funding session and reports the
// detected amount. Missing session fails with ErrNotFound.
func (u *YieldUsecase) ConfirmFunding(ctx context.Context, userID string) (string, error) {
	latest, err := u.onrampRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := u.onrampRepo.UpdateStatus(ctx, latest.ID, entities.OnrampCompleted); err != nil {
		return "", err
	}

	u.setState(userID, entities.WorkflowConverting)
	return latest.AmountUSDC, nil
}

// Convert swaps the funded stable asset into the yield asset through a
// sponsored transaction. Development mode short-circuits the whole chain
// path with a deterministic mock hash unless the caller forces on-chain;
// the mock is always visible as status "mocked".
func (u *YieldUsecase) Convert(ctx context.Context, userID string, input *entities.ConvertInput) (*entities.SubmissionResult, error) {
	amount := input.AmountUSDC
	if amount == "" {
		amount = DefaultOnrampAmountUSDC
	}

	if u.mode == config.ModeDevelopment && !input.ForceOnchain {
		return u.mockResult(ctx, userID, "convert|"+userID+"|"+amount, entities.WorkflowStaking)
	}

	result, err := u.convertOnchain(ctx, userID, amount)
	if err != nil {
		u.setState(userID, entities.WorkflowFailed)
		return nil, err
	}
	u.setState(userID, entities.WorkflowStaking)
	return result, nil
}

func (u *YieldUsecase) convertOnchain(ctx context.Context, userID, amount string) (*entities.SubmissionResult, error) {
	if u.starknet.USDCTokenAddress == "" || u.starknet.LBTCTokenAddress == "" {
		return nil, fmt.Errorf("%w: missing token address configuration", domainerrors.ErrSubmission)
	}

	wallet, err := u.walletUC.Bind(ctx, userID)
	if err != nil {
		return nil, err
	}

	calls, err := u.quotes.BuildSwapCalls(ctx, swap.SwapParams{
		SellTokenAddress: u.starknet.USDCTokenAddress,
		BuyTokenAddress:  u.starknet.LBTCTokenAddress,
		SellAmount:       amount,
		TakerAddress:     wallet.Address(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrSubmission, err)
	}

	hash, err := u.txUC.SubmitSponsored(ctx, wallet, calls)
	if err != nil {
		return nil, err
	}

	return &entities.SubmissionResult{
		TxHash:      hash,
		ExplorerURL: u.starknet.ExplorerURL(hash),
		Status:      entities.TxStatusSubmitted,
	}, nil
}

// Stake moves the converted asset into the staking contract. A missing
// staking contract address means "not yet deployed" and takes the mock
// path rather than failing.
func (u *YieldUsecase) Stake(ctx context.Context, userID string, input *entities.StakeInput) (*entities.SubmissionResult, error) {
	amount := input.AmountLBTC
	if amount == "" {
		amount = DefaultStakeAmountLBTC
	}

	var result *entities.SubmissionResult
	if u.starknet.StakingContractAddress == "" {
		mocked, err := u.mockResult(ctx, userID, "stake|"+userID+"|"+amount, entities.WorkflowStaking)
		if err != nil {
			return nil, err
		}
		result = mocked
	} else {
		submitted, err := u.stakeOnchain(ctx, userID, amount)
		if err != nil {
			u.setState(userID, entities.WorkflowFailed)
			return nil, err
		}
		result = submitted
	}

	if err := u.yieldRepo.Upsert(ctx, &entities.YieldPosition{
		UserID:     userID,
		Status:     entities.YieldEarning,
		APY:        PlaceholderAPY,
		AccruedUSD: PlaceholderAccruedUSD,
	}); err != nil {
		u.setState(userID, entities.WorkflowFailed)
		return nil, err
	}

	u.setState(userID, entities.WorkflowEarning)
	logger.Info(ctx, "yield position active",
		zap.String("user_id", userID),
		zap.String("tx_hash", result.TxHash),
		zap.String("status", result.Status),
	)
	return result, nil
}

func (u *YieldUsecase) stakeOnchain(ctx context.Context, userID, amount string) (*entities.SubmissionResult, error) {
	wallet, err := u.walletUC.Bind(ctx, userID)
	if err != nil {
		return nil, err
	}

	token := u.starknet.StakingTokenAddress
	if token == "" {
		token = u.starknet.LBTCTokenAddress
	}

	calls := []entities.Call{{
		ContractAddress: u.starknet.StakingContractAddress,
		Entrypoint:      u.starknet.StakingEntrypoint,
		Calldata:        []entities.Felt{entities.Felt(token), entities.Felt(amount)},
	}}

	hash, err := u.txUC.SubmitSponsored(ctx, wallet, calls)
	if err != nil {
		return nil, err
	}

	return &entities.SubmissionResult{
		TxHash:      hash,
		ExplorerURL: u.starknet.ExplorerURL(hash),
		Status:      entities.TxStatusSubmitted,
	}, nil
}

// mockResult synthesizes a deterministic mock submission, records it so
// status queries work offline, and advances the workflow state.
func (u *YieldUsecase) mockResult(ctx context.Context, userID, seed string, next entities.WorkflowState) (*entities.SubmissionResult, error) {
	hash := blockchain.MockTxHash(seed)
	if err := u.txUC.RecordMocked(ctx, hash); err != nil {
		return nil, err
	}
	u.setState(userID, next)
	return &entities.SubmissionResult{
		TxHash:      hash,
		ExplorerURL: u.starknet.ExplorerURL(hash),
		Status:      entities.TxStatusMocked,
	}, nil
}
