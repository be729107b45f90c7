package entities

import "time"

// Transaction statuses. Submitted and mocked are set by this service;
// anything else is whatever the chain reports on refresh.
const (
	TxStatusSubmitted = "submitted"
	TxStatusMocked    = "mocked"
	TxStatusUnknown   = "unknown"
)

// TransactionRecord is the cached last-known status of a submitted
// transaction, keyed by hash. Rows are upserted on submission and on every
// status refresh, never deleted.
type TransactionRecord struct {
	Hash      string    `json:"hash"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
