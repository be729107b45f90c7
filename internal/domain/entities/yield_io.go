package entities

// ConvertInput represents input for the USDC -> LBTC conversion step
type ConvertInput struct {
	AmountUSDC   string `json:"amountUsdc"`
	ForceOnchain bool   `json:"forceOnchain"`
}

// StakeInput represents input for the staking step
type StakeInput struct {
	AmountLBTC string `json:"amountLbtc"`
}

// SubmissionResult is the user-facing outcome of a yield workflow step that
// produced a transaction. Status is "submitted" for a real on-chain
// submission and "mocked" when the development short-circuit ran; the two
// are never indistinguishable.
type SubmissionResult struct {
	TxHash      string `json:"txHash"`
	ExplorerURL string `json:"explorerUrl"`
	Status      string `json:"status"`
}

// Holding is a single traditional-finance position shown in the portfolio
type Holding struct {
	Ticker    string  `json:"ticker"`
	Name      string  `json:"name"`
	Shares    float64 `json:"shares"`
	PriceUSD  float64 `json:"priceUsd"`
	ChangePct float64 `json:"changePct"`
}

// CryptoHoldings is the on-chain slice of the portfolio
type CryptoHoldings struct {
	USDCBalance      string        `json:"usdcBalance"`
	LBTCBalance      string        `json:"lbtcBalance"`
	BTCYieldPosition YieldPosition `json:"btcYieldPosition"`
}

// Portfolio aggregates tradfi holdings, cash and crypto balances
type Portfolio struct {
	TradfiHoldings []Holding      `json:"tradfiHoldings"`
	CashUSD        float64        `json:"cashUsd"`
	TotalValueUSD  float64        `json:"totalValueUsd"`
	Crypto         CryptoHoldings `json:"crypto"`
}
