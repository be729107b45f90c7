package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"btc-yield.backend/internal/config"
	"btc-yield.backend/internal/domain/entities"
	domainerrors "btc-yield.backend/internal/domain/errors"
	"btc-yield.backend/internal/domain/repositories"
	"btc-yield.backend/pkg/logger"
)

// PortfolioUsecase aggregates the portfolio view. Live balance retrieval is
// the one place partial failure is tolerated silently: display must not
// block on chain availability, so lookups fall back to zero values.
type PortfolioUsecase struct {
	walletRepo repositories.WalletRepository
	yieldRepo  repositories.YieldPositionRepository
	walletUC   *WalletUsecase
	starknet   config.StarknetConfig
}

// NewPortfolioUsecase creates a new portfolio usecase
func NewPortfolioUsecase(
	walletRepo repositories.WalletRepository,
	yieldRepo repositories.YieldPositionRepository,
	walletUC *WalletUsecase,
	starknet config.StarknetConfig,
) *PortfolioUsecase {
	return &PortfolioUsecase{
		walletRepo: walletRepo,
		yieldRepo:  yieldRepo,
		walletUC:   walletUC,
		starknet:   starknet,
	}
}

// GetPortfolio returns tradfi holdings, cash and the user's crypto slice
func (u *PortfolioUsecase) GetPortfolio(ctx context.Context, userID string) (*entities.Portfolio, error) {
	usdcBalance, lbtcBalance := "0", "0"

	if _, err := u.walletRepo.GetByUserID(ctx, userID); err == nil {
		if usdc, lbtc, err := u.liveBalances(ctx, userID); err == nil {
			usdcBalance, lbtcBalance = usdc, lbtc
		} else {
			logger.Warn(ctx, "balance lookup failed, serving defaults",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	position := &entities.YieldPosition{UserID: userID, Status: entities.YieldNone}
	if p, err := u.yieldRepo.GetByUserID(ctx, userID); err == nil {
		position = p
	}

	return &entities.Portfolio{
		TradfiHoldings: TradfiHoldings,
		CashUSD:        CashUSD,
		TotalValueUSD:  TotalValueUSD(),
		Crypto: entities.CryptoHoldings{
			USDCBalance:      usdcBalance,
			LBTCBalance:      lbtcBalance,
			BTCYieldPosition: *position,
		},
	}, nil
}

func (u *PortfolioUsecase) liveBalances(ctx context.Context, userID string) (string, string, error) {
	wallet, err := u.walletUC.Bind(ctx, userID)
	if err != nil {
		return "", "", err
	}

	usdc, err := wallet.BalanceOf(ctx, u.starknet.USDCTokenAddress)
	if err != nil {
		return "", "", err
	}
	lbtc, err := wallet.BalanceOf(ctx, u.starknet.LBTCTokenAddress)
	if err != nil {
		return "", "", err
	}
	return usdc, lbtc, nil
}
