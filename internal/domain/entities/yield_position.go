package entities

// YieldStatus represents the staking status of a position
type YieldStatus string

const (
	YieldNone    YieldStatus = "none"
	YieldStaking YieldStatus = "staking"
	YieldEarning YieldStatus = "earning"
)

// YieldPosition is the per-user record of staked-asset status and accrued
// return. Upserted after a successful stake submission.
type YieldPosition struct {
	UserID     string      `json:"userId"`
	Status     YieldStatus `json:"status"`
	APY        float64     `json:"apy"`
	AccruedUSD float64     `json:"accruedUsd"`
}

// WorkflowState tracks the fund -> swap -> stake -> earn progression
type WorkflowState string

const (
	WorkflowIdle             WorkflowState = "idle"
	WorkflowFundingRequested WorkflowState = "fundingRequested"
	WorkflowConverting       WorkflowState = "converting"
	WorkflowStaking          WorkflowState = "staking"
	WorkflowEarning          WorkflowState = "earning"
	WorkflowFailed           WorkflowState = "failed"
)
