package usecases

import "btc-yield.backend/internal/domain/entities"

// Workflow defaults. Amounts are base-unit strings (6 decimals for USDC,
// 8 for LBTC) passed through untouched.
const (
	DefaultOnrampAmountUSDC = "1000000"
	DefaultStakeAmountLBTC  = "1000000"
)

// Placeholder yield economics until live accrual is wired
const (
	PlaceholderAPY        = 4.8
	PlaceholderAccruedUSD = 3.12
)

// Static traditional-finance portfolio served alongside live crypto
// balances. Market data integration is a separate system.
var TradfiHoldings = []entities.Holding{
	{Ticker: "AAPL", Name: "Apple Inc.", Shares: 12, PriceUSD: 185.21, ChangePct: 1.2},
	{Ticker: "MSFT", Name: "Microsoft", Shares: 8, PriceUSD: 402.15, ChangePct: -0.6},
	{Ticker: "TSLA", Name: "Tesla", Shares: 5, PriceUSD: 203.55, ChangePct: 2.4},
	{Ticker: "NVDA", Name: "NVIDIA", Shares: 3, PriceUSD: 882.4, ChangePct: 3.1},
	{Ticker: "SPY", Name: "SPDR S&P 500 ETF", Shares: 6, PriceUSD: 512.3, ChangePct: 0.4},
}

const CashUSD = 12500.42

// TotalValueUSD sums holdings at their quoted price plus cash
func TotalValueUSD() float64 {
	total := CashUSD
	for _, h := range TradfiHoldings {
		total += h.Shares * h.PriceUSD
	}
	return total
}
