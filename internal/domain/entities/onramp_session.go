package entities

import "time"

// OnrampStatus represents the lifecycle of a funding session
type OnrampStatus string

const (
	OnrampCreated   OnrampStatus = "created"
	OnrampCompleted OnrampStatus = "completed"
)

// OnrampSession represents one funding attempt. A user may have many; only
// the most recently created one is actionable.
type OnrampSession struct {
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	Status     OnrampStatus `json:"status"`
	AmountUSDC string       `json:"amountUsdc"`
	CreatedAt  time.Time    `json:"createdAt"`
}
