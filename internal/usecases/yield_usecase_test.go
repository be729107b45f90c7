package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"btc-yield.backend/internal/config"
	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/infrastructure/blockchain"
	"btc-yield.backend/internal/infrastructure/swap"
	"btc-yield.backend/pkg/crypto"
)

type yieldFixture struct {
	uc         *YieldUsecase
	txRepo     *memTxRepo
	onrampRepo *memOnrampRepo
	yieldRepo  *memYieldRepo
	walletRepo *memWalletRepo
	quotes     *stubQuoteBuilder
	sdk        *stubSDK
}

func newYieldFixture(t *testing.T, mode config.Mode, starknet config.StarknetConfig) *yieldFixture {
	t.Helper()
	sealer, err := crypto.NewSealer("yield-test-secret")
	require.NoError(t, err)

	sdk := &stubSDK{}
	walletRepo := newMemWalletRepo()
	vault := NewKeyVaultUsecase(newMemKeyRepo(), sealer)
	walletUC := NewWalletUsecase(walletRepo, vault, sdk)

	txRepo := newMemTxRepo()
	txUC := NewTransactionUsecase(txRepo, &stubChainReader{}, mode)

	quotes := &stubQuoteBuilder{}
	onrampRepo := newMemOnrampRepo()
	yieldRepo := newMemYieldRepo()

	return &yieldFixture{
		uc:         NewYieldUsecase(walletUC, txUC, quotes, onrampRepo, yieldRepo, starknet, mode),
		txRepo:     txRepo,
		onrampRepo: onrampRepo,
		yieldRepo:  yieldRepo,
		walletRepo: walletRepo,
		quotes:     quotes,
		sdk:        sdk,
	}
}

func onchainConfig() config.StarknetConfig {
	return config.StarknetConfig{
		USDCTokenAddress:       "0xusdc",
		LBTCTokenAddress:       "0xlbtc",
		StakingContractAddress: "0xstaking",
		StakingEntrypoint:      "stake",
		OnrampBaseURL:          "https://onramp.example",
	}
}

func TestYieldUsecase_RequestFundingWithoutWallet(t *testing.T) {
	f := newYieldFixture(t, config.ModeDevelopment, onchainConfig())
	ctx := context.Background()

	url, err := f.uc.RequestFunding(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "https://onramp.example?session="))
	require.True(t, strings.HasSuffix(url, "&to=pending"))

	require.Equal(t, entities.WorkflowFundingRequested, f.uc.State("user-1"))

	session, err := f.onrampRepo.GetLatestByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, entities.OnrampCreated, session.Status)
	require.Equal(t, DefaultOnrampAmountUSDC, session.AmountUSDC)
}

func TestYieldUsecase_RequestFundingWithWalletAddress(t *testing.T) {
	f := newYieldFixture(t, config.ModeDevelopment, onchainConfig())
	ctx := context.Background()

	require.NoError(t, f.walletRepo.Upsert(ctx, &entities.Wallet{UserID: "user-1", Address: "0xwallet"}))

	url, err := f.uc.RequestFunding(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(url, "&to=0xwallet"))
}

func TestYieldUsecase_ConfirmFunding(t *testing.T) {
	f := newYieldFixture(t, config.ModeDevelopment, onchainConfig())
	ctx := context.Background()

	_, err := f.uc.RequestFunding(ctx, "user-1")
	require.NoError(t, err)

	amount, err := f.uc.ConfirmFunding(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, DefaultOnrampAmountUSDC, amount)
	require.Equal(t, entities.WorkflowConverting, f.uc.State("user-1"))

	session, err := f.onrampRepo.GetLatestByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, entities.OnrampCompleted, session.Status)
}

func TestYieldUsecase_ConfirmFundingWithoutSession(t *testing.T) {
	f := newYieldFixture(t, config.ModeDevelopment, onchainConfig())

	_, err := f.uc.ConfirmFunding(context.Background(), "user-1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestYieldUsecase_ConvertMockedInDevelopment(t *testing.T) {
	f := newYieldFixture(t, config.ModeDevelopment, onchainConfig())
	ctx := context.Background()

	result, err := f.uc.Convert(ctx, "user-1", &entities.ConvertInput{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(result.TxHash, blockchain.MockHashPrefix))
	require.Equal(t, entities.TxStatusMocked, result.Status)
	require.Contains(t, result.ExplorerURL, result.TxHash)

	// No chain or aggregator contact on the mock path
	require.False(t, f.quotes.called)
	require.Zero(t, f.sdk.onboards)

	// The mock hash is queryable offline
	record, err := f.txRepo.GetByHash(ctx, result.TxHash)
	require.NoError(t, err)
	require.Equal(t, entities.TxStatusMocked, record.Status)

	require.Equal(t, entities.WorkflowStaking, f.uc.State("user-1"))
}

func TestYieldUsecase_ConvertMockIsDeterministic(t *testing.T) {
	f := newYieldFixture(t, config.ModeDevelopment, onchainConfig())
	ctx := context.Background()

	first, err := f.uc.Convert(ctx, "user-1", &entities.ConvertInput{})
	require.NoError(t, err)
	second, err := f.uc.Convert(ctx, "user-1", &entities.ConvertInput{})
	require.NoError(t, err)
	require.Equal(t, first.TxHash, second.TxHash)
}

func TestYieldUsecase_ConvertForceOnchain(t *testing.T) {
	f := newYieldFixture(t, config.ModeDevelopment, onchainConfig())
	ctx := context.Background()

	result, err := f.uc.Convert(ctx, "user-1", &entities.ConvertInput{ForceOnchain: true})
	require.NoError(t, err)
	require.Equal(t, entities.TxStatusSubmitted, result.Status)
	require.True(t, f.quotes.called)
	require.Equal(t, 1, f.sdk.onboards)

	record, err := f.txRepo.GetByHash(ctx, result.TxHash)
	require.NoError(t, err)
	require.Equal(t, entities.TxStatusSubmitted, record.Status)
}

func TestYieldUsecase_ConvertOnchainNeedsTokenConfig(t *testing.T) {
	cfg := onchainConfig()
	cfg.LBTCTokenAddress = ""
	f := newYieldFixture(t, config.ModeProduction, cfg)

	_, err := f.uc.Convert(context.Background(), "user-1", &entities.ConvertInput{})
	require.ErrorIs(t, err, domainerrors.ErrSubmission)
	require.Equal(t, entities.WorkflowFailed, f.uc.State("user-1"))
}

func TestYieldUsecase_ConvertQuoteFailureFailsWorkflow(t *testing.T) {
	f := newYieldFixture(t, config.ModeProduction, onchainConfig())
	f.quotes.build = func(params swap.SwapParams) ([]entities.Call, error) {
		return nil, domainerrors.ErrSubmission
	}

	_, err := f.uc.Convert(context.Background(), "user-1", &entities.ConvertInput{})
	require.ErrorIs(t, err, domainerrors.ErrSubmission)
	require.Equal(t, entities.WorkflowFailed, f.uc.State("user-1"))
}

func TestYieldUsecase_StakeMockedWithoutContract(t *testing.T) {
	cfg := onchainConfig()
	cfg.StakingContractAddress = ""
	f := newYieldFixture(t, config.ModeDevelopment, cfg)
	ctx := context.Background()

	result, err := f.uc.Stake(ctx, "user-1", &entities.StakeInput{})
	require.NoError(t, err)
	require.Equal(t, entities.TxStatusMocked, result.Status)
	require.True(t, strings.HasPrefix(result.TxHash, blockchain.MockHashPrefix))

	position, err := f.yieldRepo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, entities.YieldEarning, position.Status)
	require.InDelta(t, PlaceholderAPY, position.APY, 1e-9)
	require.InDelta(t, PlaceholderAccruedUSD, position.AccruedUSD, 1e-9)

	require.Equal(t, entities.WorkflowEarning, f.uc.State("user-1"))
}

func TestYieldUsecase_StakeOnchainCalldata(t *testing.T) {
	f := newYieldFixture(t, config.ModeProduction, onchainConfig())
	ctx := context.Background()

	var executed []entities.Call
	f.sdk.onboard = func(strategy blockchain.SigningStrategy) (blockchain.WalletHandle, error) {
		return &stubWallet{
			address: "0xwallet",
			executeFn: func(calls []entities.Call) (*blockchain.Receipt, error) {
				executed = calls
				return &blockchain.Receipt{TransactionHash: "0xstake"}, nil
			},
		}, nil
	}

	result, err := f.uc.Stake(ctx, "user-1", &entities.StakeInput{AmountLBTC: "42"})
	require.NoError(t, err)
	require.Equal(t, "0xstake", result.TxHash)
	require.Equal(t, entities.TxStatusSubmitted, result.Status)

	require.Len(t, executed, 1)
	require.Equal(t, "0xstaking", executed[0].ContractAddress)
	require.Equal(t, "stake", executed[0].Entrypoint)
	// Staking token falls back to the yield token when unset
	require.Equal(t, []entities.Felt{"0xlbtc", "42"}, executed[0].Calldata)

	position, err := f.yieldRepo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, entities.YieldEarning, position.Status)
}

func TestYieldUsecase_StakeFailureFailsWorkflow(t *testing.T) {
	f := newYieldFixture(t, config.ModeProduction, onchainConfig())
	f.sdk.onboard = func(strategy blockchain.SigningStrategy) (blockchain.WalletHandle, error) {
		return &stubWallet{
			address: "0xwallet",
			executeFn: func(calls []entities.Call) (*blockchain.Receipt, error) {
				return nil, domainerrors.ErrSubmission
			},
		}, nil
	}

	_, err := f.uc.Stake(context.Background(), "user-1", &entities.StakeInput{})
	require.ErrorIs(t, err, domainerrors.ErrSubmission)
	require.Equal(t, entities.WorkflowFailed, f.uc.State("user-1"))

	_, err = f.yieldRepo.GetByUserID(context.Background(), "user-1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestYieldUsecase_StateStartsIdle(t *testing.T) {
	f := newYieldFixture(t, config.ModeDevelopment, onchainConfig())
	require.Equal(t, entities.WorkflowIdle, f.uc.State("unseen-user"))
}
