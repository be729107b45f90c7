package entities

import "time"

// Wallet represents a user's onboarded on-chain account. The address is
// stable for the user's lifetime once observed.
type Wallet struct {
	UserID    string    `json:"userId"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
